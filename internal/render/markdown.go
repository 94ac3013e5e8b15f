package render

import (
	"bytes"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
)

var tagRe = regexp.MustCompile(`<[^>]+>`)

// IsMarkdown reports whether path looks like a markdown-flavored source.
func IsMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// PlainText renders markdown to HTML and strips every tag, leaving plain
// prose suitable for chunking. If rendering fails the raw source is returned
// unchanged, so an odd document still gets indexed.
func PlainText(markup string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(markup), &buf); err != nil {
		return markup
	}
	return tagRe.ReplaceAllString(buf.String(), "")
}
