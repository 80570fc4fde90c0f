// Package ingestion turns local résumé files into the clean UTF-8 text the
// extraction core consumes. Plain text and HTML exports are supported here;
// PDF/DOCX byte decoding is an external collaborator that must hand over
// text before this boundary.
package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var blankRunRe = regexp.MustCompile(`\n\n\n+`)

// IngestFromFile reads a résumé file, converts HTML when needed, and returns
// cleaned text with metadata.
func IngestFromFile(path string) (string, *Metadata, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, fmt.Errorf("file not found: %w", err)
		}
		return "", nil, fmt.Errorf("failed to read file: %w", err)
	}

	text := string(content)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = HTMLToText(text)
		if err != nil {
			return "", nil, fmt.Errorf("failed to extract text from HTML: %w", err)
		}
	}

	cleaned := CleanText(text)
	return cleaned, NewMetadata(cleaned), nil
}

// CleanText normalizes line endings, trims line-level trailing whitespace
// and collapses runs of blank lines, preserving the line structure the
// section splitter relies on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, strings.TrimRight(line, " \t"))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}
