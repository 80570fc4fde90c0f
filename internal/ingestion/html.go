package ingestion

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// blockTags are elements whose boundaries become line breaks so the visual
// line structure of the résumé survives the conversion.
var blockTags = []string{"p", "div", "li", "br", "h1", "h2", "h3", "h4", "h5", "h6", "tr"}

// HTMLToText extracts visible text from an HTML-exported résumé, one block
// element per line. Scripts and styles are discarded.
func HTMLToText(htmlContent string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	// Force line breaks at block boundaries before flattening to text.
	for _, tag := range blockTags {
		doc.Find(tag).Each(func(_ int, s *goquery.Selection) {
			s.AppendHtml("\n")
		})
	}

	var b strings.Builder
	body := doc.Find("body")
	if body.Length() == 0 {
		b.WriteString(doc.Text())
	} else {
		b.WriteString(body.Text())
	}

	return CleanText(b.String()), nil
}
