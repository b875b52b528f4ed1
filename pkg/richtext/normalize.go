package richtext

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// EmptyTemplate is the composer payload of a fresh draft: one empty
// paragraph at the given font size.
func EmptyTemplate(size string) string {
	return fmt.Sprintf(`<p><span style="font-size: %s;"><br></span></p>`, size)
}

// NormalizeDefaultSize pins the default font size on content that has none.
//
// Blank content collapses to EmptyTemplate. A top-level paragraph with text
// and no explicit size anywhere inside it gets its inline content wrapped in
// a span carrying size. Paragraphs where the user picked a size are never
// touched. Content that needs no change is returned verbatim.
func NormalizeDefaultSize(content, size string) string {
	if IsBlank(content) {
		return EmptyTemplate(size)
	}

	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return content
	}

	changed := false
	for _, n := range nodes {
		if n.Type != html.ElementNode || n.DataAtom != atom.P {
			continue
		}
		if hasExplicitSize(n) || !hasText(n) {
			continue
		}
		wrapChildren(n, size)
		changed = true
	}
	if !changed {
		return content
	}

	var buf bytes.Buffer
	for _, n := range nodes {
		if err := html.Render(&buf, n); err != nil {
			return content
		}
	}
	return buf.String()
}

func hasExplicitSize(n *html.Node) bool {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			switch a.Key {
			case "style":
				if _, ok := ParseStyle(a.Val).FontSize(); ok {
					return true
				}
			case "class":
				if strings.Contains(a.Val, "ql-size-") {
					return true
				}
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasExplicitSize(c) {
			return true
		}
	}
	return false
}

func hasText(n *html.Node) bool {
	if n.Type == html.TextNode && strings.TrimSpace(n.Data) != "" {
		return true
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if hasText(c) {
			return true
		}
	}
	return false
}

func wrapChildren(p *html.Node, size string) {
	span := &html.Node{
		Type:     html.ElementNode,
		Data:     "span",
		DataAtom: atom.Span,
		Attr:     []html.Attribute{{Key: "style", Val: fmt.Sprintf("font-size: %s;", size)}},
	}
	for c := p.FirstChild; c != nil; {
		next := c.NextSibling
		p.RemoveChild(c)
		span.AppendChild(c)
		c = next
	}
	p.AppendChild(span)
}
