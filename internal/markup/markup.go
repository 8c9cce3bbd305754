// Package markup renders the inline markdown used in profile prose.
package markup

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

var md = goldmark.New()

// HTML converts markdown to HTML. Raw HTML in the source is not passed
// through.
func HTML(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

// Styles applies to emphasis when rendering for a terminal.
type Styles struct {
	Strong   lipgloss.Style
	Emphasis lipgloss.Style
	Code     lipgloss.Style
}

// Terminal renders markdown as plain text with emphasis styled. Soft line
// breaks become spaces and paragraphs are separated by a blank line.
func Terminal(src string, s Styles) string {
	source := []byte(src)
	doc := md.Parser().Parse(text.NewReader(source))

	var paragraphs []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		if p := strings.TrimSpace(inline(n, source, s)); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

func inline(n ast.Node, source []byte, s Styles) string {
	switch node := n.(type) {
	case *ast.Text:
		out := string(node.Segment.Value(source))
		if node.SoftLineBreak() || node.HardLineBreak() {
			out += " "
		}
		return out
	case *ast.String:
		return string(node.Value)
	case *ast.Emphasis:
		inner := children(n, source, s)
		if node.Level >= 2 {
			return s.Strong.Render(inner)
		}
		return s.Emphasis.Render(inner)
	case *ast.CodeSpan:
		return s.Code.Render(children(n, source, s))
	}
	return children(n, source, s)
}

func children(n ast.Node, source []byte, s Styles) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		b.WriteString(inline(c, source, s))
	}
	return b.String()
}
