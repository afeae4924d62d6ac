// ABOUTME: Markdown to terminal text conversion for description fields
// ABOUTME: Runs goldmark then flattens the HTML to plain indented lines

package render

import (
	"bytes"
	"html"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
)

var (
	htmlTag    = regexp.MustCompile(`<[^>]+>`)
	blockBreak = regexp.MustCompile(`</(p|li|h[1-6]|blockquote|pre)>`)
	manyBlanks = regexp.MustCompile(`\n{3,}`)
)

// Markdown converts a markdown description to plain terminal text.
// Block elements become line breaks, list items get a leading dash,
// and inline markup is dropped. Invalid markdown falls back to the
// raw source.
func Markdown(src string) string {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return strings.TrimSpace(src)
	}

	text := buf.String()
	text = strings.ReplaceAll(text, "<li>", "- ")
	text = blockBreak.ReplaceAllString(text, "\n")
	text = htmlTag.ReplaceAllString(text, "")
	text = html.UnescapeString(text)

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	text = strings.Join(lines, "\n")
	text = manyBlanks.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
