package richtext

import (
	"strings"
)

// StyleMap represents parsed CSS styles
type StyleMap map[string]string

// ParseStyle parses a CSS style string into a map
// Example: "color: #F97316; font-size: 18px;"
func ParseStyle(styleStr string) StyleMap {
	styles := make(StyleMap)
	if styleStr == "" {
		return styles
	}

	parts := strings.Split(styleStr, ";")
	for _, part := range parts {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) == 2 {
			k := strings.ToLower(strings.TrimSpace(kv[0]))
			v := strings.TrimSpace(kv[1])
			if k != "" && v != "" {
				styles[k] = v
			}
		}
	}
	return styles
}

// FontSize returns the explicit font size, if any.
func (s StyleMap) FontSize() (string, bool) {
	v, ok := s["font-size"]
	return v, ok
}
