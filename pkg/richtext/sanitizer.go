package richtext

import (
	"regexp"

	"github.com/microcosm-cc/bluemonday"
)

var editorClass = regexp.MustCompile(`^(ql-[a-z0-9-]+\s*)+$`)

// Sanitizer turns stored editor content into markup that is safe to render.
// Stored content is never rewritten by it.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds a policy from the user-generated-content baseline plus
// the inline styles the capabilities allow.
func NewSanitizer(caps Capabilities) *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.AllowElements("span", "u", "s", "strike")
	p.AllowAttrs("class").Matching(editorClass).OnElements("p", "span", "li", "ol", "ul")

	if caps.Allows(FormatColor) {
		p.AllowStyles("color").Globally()
	}
	if caps.Allows(FormatBackground) {
		p.AllowStyles("background-color").Globally()
	}
	if caps.Allows(FormatSize) && len(caps.Sizes) > 0 {
		p.AllowStyles("font-size").MatchingEnum(caps.Sizes...).Globally()
	}
	if caps.Allows(FormatAlign) && len(caps.Alignments) > 0 {
		p.AllowStyles("text-align").MatchingEnum(caps.Alignments...).Globally()
	}

	return &Sanitizer{policy: p}
}

func (s *Sanitizer) Sanitize(content string) string {
	return s.policy.Sanitize(content)
}
