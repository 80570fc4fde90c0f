package ingestion

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Empty", "", ""},
		{"CRLF normalized", "a\r\nb\rc", "a\nb\nc"},
		{"Trailing whitespace trimmed", "line one  \nline two\t", "line one\nline two"},
		{"Blank runs collapsed", "a\n\n\n\n\nb", "a\n\nb"},
		{"Surrounding whitespace trimmed", "\n\n  hello  \n\n", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanText(tt.input))
		})
	}
}

func TestHTMLToText(t *testing.T) {
	html := `<html><head><style>p { color: red }</style></head><body>
<h1>Jane Doe</h1>
<p>Senior Engineer</p>
<ul><li>Led migrations</li><li>Built tooling</li></ul>
<script>console.log("tracking")</script>
</body></html>`

	text, err := HTMLToText(html)
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Senior Engineer")
	assert.Contains(t, text, "Led migrations")
	assert.NotContains(t, text, "color: red")
	assert.NotContains(t, text, "tracking")
}

func TestIngestFromFile_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.txt")
	require.NoError(t, os.WriteFile(path, []byte("John Smith\r\nEngineer\n\n\n\nAcme"), 0644))

	text, meta, err := IngestFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "John Smith\nEngineer\n\nAcme", text)
	require.NotNil(t, meta)
	assert.Equal(t, len(text), meta.Characters)
	assert.Equal(t, 4, meta.Words)
	assert.Equal(t, 4, meta.Lines)
	assert.Len(t, meta.Hash, 64)
}

func TestIngestFromFile_HTML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "resume.html")
	require.NoError(t, os.WriteFile(path, []byte("<html><body><p>Jane Doe</p><p>Developer</p></body></html>"), 0644))

	text, _, err := IngestFromFile(path)
	require.NoError(t, err)

	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Developer")
	assert.NotContains(t, text, "<p>")
}

func TestIngestFromFile_Missing(t *testing.T) {
	_, _, err := IngestFromFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestNewMetadata_Empty(t *testing.T) {
	meta := NewMetadata("")

	assert.Zero(t, meta.Characters)
	assert.Zero(t, meta.Words)
	assert.Zero(t, meta.Lines)
	assert.Len(t, meta.Hash, 64)
}
