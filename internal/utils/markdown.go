package utils

import (
	"bytes"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
)

// StripMarkdown removes all markdown formatting from text and returns plain text
func StripMarkdown(text string) string {
	if text == "" {
		return ""
	}

	// Parse markdown to AST
	doc := markdown.Parse([]byte(text), nil)

	// Extract plain text from AST
	var buf bytes.Buffer
	extractText(doc, &buf)

	// Clean up extra whitespace
	result := strings.TrimSpace(buf.String())
	result = strings.ReplaceAll(result, "\n\n\n", "\n\n") // Remove triple newlines

	return result
}

// ExcerptMaxLength is the truncation point for resource excerpts.
const ExcerptMaxLength = 240

// ExcerptFromMarkdown strips formatting from a markdown body and truncates it
// to ExcerptMaxLength runes at a word boundary.
func ExcerptFromMarkdown(body string) string {
	plain := StripMarkdown(body)

	// Collapse to a single line for card display
	plain = strings.Join(strings.Fields(plain), " ")

	runes := []rune(plain)
	if len(runes) <= ExcerptMaxLength {
		return plain
	}

	truncated := string(runes[:ExcerptMaxLength])
	if lastSpace := strings.LastIndex(truncated, " "); lastSpace > 0 {
		truncated = truncated[:lastSpace]
	}
	return truncated + "…"
}

// extractText walks the AST and extracts text content
func extractText(node ast.Node, buf *bytes.Buffer) {
	// Handle leaf nodes
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Literal)
		return

	case *ast.Code:
		buf.Write(n.Literal)
		return

	case *ast.CodeBlock:
		buf.Write(n.Literal)
		return

	case *ast.Hardbreak:
		buf.WriteString("\n")
		return

	case *ast.Softbreak:
		buf.WriteString(" ")
		return

	case *ast.HTMLBlock:
		// Skip HTML blocks entirely
		return

	case *ast.HTMLSpan:
		// Skip HTML spans
		return
	}

	// Handle container nodes
	container := node.AsContainer()
	if container == nil {
		return
	}

	// Special handling for specific node types
	switch node.(type) {
	case *ast.ListItem:
		buf.WriteString("• ") // Use bullet point for list items
	}

	// Process children
	for _, child := range container.Children {
		extractText(child, buf)
	}

	// Add trailing formatting based on node type
	switch node.(type) {
	case *ast.Paragraph:
		buf.WriteString("\n\n")
	case *ast.Heading:
		buf.WriteString("\n\n")
	case *ast.List:
		buf.WriteString("\n")
	case *ast.BlockQuote:
		buf.WriteString("\n")
	}
}
