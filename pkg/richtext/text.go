// Package richtext holds the helpers the board applies to serialized editor
// content: text extraction, emptiness checks, default font size
// normalization, the editor capability set and the render sanitizer.
package richtext

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/cases"
)

var blockElements = map[string]bool{
	"p": true, "div": true, "br": true, "li": true, "ul": true, "ol": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"blockquote": true, "pre": true, "tr": true, "table": true,
}

// PlainText strips all markup from content. Text of block elements ends up
// on separate lines, entities are decoded and blank lines are dropped.
func PlainText(content string) string {
	z := html.NewTokenizer(strings.NewReader(content))
	var sb strings.Builder
	skip := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			return joinLines(sb.String())

		case html.TextToken:
			if skip == 0 {
				sb.Write(z.Text())
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				if tt == html.StartTagToken {
					skip++
				}
				continue
			}
			if blockElements[tag] {
				sb.WriteByte('\n')
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if (tag == "script" || tag == "style") && skip > 0 {
				skip--
				continue
			}
			if blockElements[tag] {
				sb.WriteByte('\n')
			}
		}
	}
}

func joinLines(text string) string {
	text = strings.ReplaceAll(text, "\u00a0", " ")
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}

// IsBlank reports whether content has no visible text once markup is removed.
func IsBlank(content string) bool {
	return PlainText(content) == ""
}

// Fold case-folds s for caseless comparison.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// ContainsFold reports whether the plain text of content contains query,
// ignoring case. An empty query matches everything.
func ContainsFold(content, query string) bool {
	if query == "" {
		return true
	}
	return strings.Contains(Fold(PlainText(content)), Fold(query))
}
