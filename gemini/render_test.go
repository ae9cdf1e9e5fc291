package gemini

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHTML(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		contains []string
		excludes []string
	}{
		{
			name:     "emphasis",
			input:    "**Mentorship** matters, *really*.",
			contains: []string{"<strong>Mentorship</strong>", "<em>really</em>"},
		},
		{
			name:     "headings shift down one level",
			input:    "## Your Path\n\n### Step one\n\ntext",
			contains: []string{"<h3>Your Path</h3>", "<h4>Step one</h4>"},
			excludes: []string{"<h2>"},
		},
		{
			name:     "dash and bullet lists",
			input:    "Options:\n\n- first\n- second\n\nMore:\n\n• third\n• fourth",
			contains: []string{"<ul>", "<li>first</li>", "<li>second</li>", "<li>third</li>", "<li>fourth</li>"},
		},
		{
			name:     "html passes through",
			input:    "<h3>Ready</h3>\n\n<strong>Go</strong> for it",
			contains: []string{"<h3>Ready</h3>", "<strong>Go</strong>"},
		},
		{
			name:     "scripts and handlers are stripped",
			input:    `<p onclick="steal()">hi</p><script>alert(1)</script>`,
			contains: []string{"hi"},
			excludes: []string{"<script", "onclick", "alert(1)"},
		},
		{
			name:     "code fence wrapper removed",
			input:    "```html\n<strong>wrapped</strong>\n```",
			contains: []string{"<strong>wrapped</strong>"},
			excludes: []string{"```", "<code>"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderHTML(tt.input)
			for _, want := range tt.contains {
				assert.Contains(t, out, want)
			}
			for _, unwanted := range tt.excludes {
				assert.NotContains(t, out, unwanted)
			}
		})
	}
}

func TestRenderHTMLEmpty(t *testing.T) {
	assert.Empty(t, RenderHTML(""))
	assert.Empty(t, RenderHTML("  \n\t"))
	assert.Empty(t, RenderHTML("```\n```"))
}
