package utils

import (
	"strings"
	"testing"
)

func TestStripMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "plain text without markdown",
			input:    "This is plain text",
			expected: "This is plain text",
		},
		{
			name:     "bold text",
			input:    "This is **bold** text",
			expected: "This is bold text",
		},
		{
			name:     "italic text",
			input:    "This is *italic* text",
			expected: "This is italic text",
		},
		{
			name:     "escaped asterisk",
			input:    "This is a \\*literal asterisk\\* not emphasis",
			expected: "This is a *literal asterisk* not emphasis",
		},
		{
			name:     "escaped underscore",
			input:    "This is a \\_literal underscore\\_",
			expected: "This is a _literal underscore_",
		},
		{
			name:     "link",
			input:    "Visit [Google](https://google.com) for search",
			expected: "Visit Google for search",
		},
		{
			name:     "heading",
			input:    "# Main Title\n\nSome content",
			expected: "Main Title\n\nSome content",
		},
		{
			name:     "code inline",
			input:    "Use the `StripMarkdown` function",
			expected: "Use the StripMarkdown function",
		},
		{
			name:     "code block",
			input:    "```go\nfunc main() {}\n```",
			expected: "func main() {}",
		},
		{
			name:     "unordered list",
			input:    "- Item 1\n- Item 2\n- Item 3",
			expected: "• Item 1\n\n• Item 2\n\n• Item 3",
		},
		{
			name:     "mixed formatting",
			input:    "This has **bold**, *italic*, and [a link](http://example.com)",
			expected: "This has bold, italic, and a link",
		},
		{
			name:     "blockquote",
			input:    "> This is a quote\n> With multiple lines",
			expected: "This is a quote\nWith multiple lines",
		},
		{
			name:     "complex markdown with escaped chars",
			input:    "# Title\n\nThis is a \\*service\\* with **formatting** and a [link](http://example.com).\n\n- Item 1\n- Item 2",
			expected: "Title\n\nThis is a *service* with formatting and a link.\n\n• Item 1\n\n• Item 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StripMarkdown(tt.input)
			if result != tt.expected {
				t.Errorf("StripMarkdown(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestExcerptFromMarkdown(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty body",
			input:    "",
			expected: "",
		},
		{
			name:     "short body collapses to one line",
			input:    "# How to raise a seed round\n\nStart with **warm intros**.",
			expected: "How to raise a seed round Start with warm intros.",
		},
		{
			name:     "link stripped",
			input:    "Read the [full guide](https://example.com/guide) first",
			expected: "Read the full guide first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ExcerptFromMarkdown(tt.input)
			if result != tt.expected {
				t.Errorf("ExcerptFromMarkdown(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestExcerptFromMarkdownTruncates(t *testing.T) {
	input := strings.Repeat("venture capital funding rounds ", 20)

	result := ExcerptFromMarkdown(input)

	runes := []rune(result)
	if len(runes) > ExcerptMaxLength+1 { // +1 pela reticência
		t.Errorf("excerpt tem %d runes, limite é %d", len(runes), ExcerptMaxLength+1)
	}
	if !strings.HasSuffix(result, "…") {
		t.Errorf("excerpt truncado deveria terminar com reticência: %q", result)
	}
	if strings.HasSuffix(strings.TrimSuffix(result, "…"), " ") {
		t.Errorf("excerpt não deveria terminar em espaço antes da reticência")
	}
}

func BenchmarkStripMarkdown(b *testing.B) {
	input := `# Fundraising Basics

This guide covers **term sheets** and *SAFE notes* for first-time founders.

## What you will learn

- Valuation caps
- Pro-rata rights
- Board [composition](http://example.com)

For templates, see the \*resource library\*.`

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		StripMarkdown(input)
	}
}
