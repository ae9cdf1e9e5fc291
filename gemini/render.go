package gemini

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(
			// the prompt asks for HTML tags, let them through to the sanitizer
			html.WithUnsafe(),
		),
	)

	sanitizer = bluemonday.UGCPolicy()

	// "•" is not a markdown list marker; rewrite it as one.
	bulletLine = regexp.MustCompile(`(?m)^(\s*)•\s+`)
)

// RenderHTML converts model output (markdown, possibly mixed with HTML) to
// sanitized HTML. Headings are shifted down so "##" renders as <h3> and
// "###" as <h4>, matching the canned replies.
func RenderHTML(text string) string {
	text = strings.TrimSpace(cleanFence(text))
	if text == "" {
		return ""
	}
	text = bulletLine.ReplaceAllString(text, "$1- ")
	text = shiftHeadings(text)

	var buf bytes.Buffer
	if err := markdown.Convert([]byte(text), &buf); err != nil {
		return sanitizer.Sanitize(text)
	}
	return strings.TrimSpace(sanitizer.Sanitize(buf.String()))
}

// shiftHeadings turns "## x" into "### x" and "### x" into "#### x".
func shiftHeadings(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if strings.HasPrefix(trimmed, "## ") || strings.HasPrefix(trimmed, "### ") {
			lines[i] = "#" + trimmed
		}
	}
	return strings.Join(lines, "\n")
}

// cleanFence strips a surrounding ```html / ```markdown code fence.
func cleanFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	} else {
		text = strings.TrimPrefix(text, "```")
	}
	return strings.TrimSuffix(strings.TrimSpace(text), "```")
}
