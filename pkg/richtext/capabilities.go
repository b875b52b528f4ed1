package richtext

// Format is an inline or block attribute the editor may apply.
type Format string

const (
	FormatColor      Format = "color"
	FormatBackground Format = "background"
	FormatBold       Format = "bold"
	FormatItalic     Format = "italic"
	FormatUnderline  Format = "underline"
	FormatStrike     Format = "strike"
	FormatSize       Format = "size"
	FormatAlign      Format = "align"
)

const DefaultFontSize = "16px"

var DefaultSizes = []string{
	"8px", "9px", "10px", "11px", "12px", "13px", "14px", "15px", "16px",
	"18px", "20px", "22px", "24px", "26px", "28px", "32px", "36px", "40px",
	"48px", "56px", "64px", "72px",
}

var DefaultAlignments = []string{"left", "center", "right", "justify"}

// Capabilities is the configuration handed to the editor widget when it is
// constructed. Nothing about formats is registered globally.
type Capabilities struct {
	Formats     []Format `json:"formats"`
	Sizes       []string `json:"sizes"`
	Alignments  []string `json:"alignments"`
	DefaultSize string   `json:"default_size"`
	Placeholder string   `json:"placeholder"`
}

// DefaultCapabilities returns the board's format allow-list. An unknown
// defaultSize falls back to DefaultFontSize.
func DefaultCapabilities(defaultSize string) Capabilities {
	c := Capabilities{
		Formats: []Format{
			FormatColor, FormatBackground, FormatBold, FormatItalic,
			FormatUnderline, FormatStrike, FormatSize, FormatAlign,
		},
		Sizes:       append([]string(nil), DefaultSizes...),
		Alignments:  append([]string(nil), DefaultAlignments...),
		DefaultSize: DefaultFontSize,
		Placeholder: "Write new journal...",
	}
	if c.AllowsSize(defaultSize) {
		c.DefaultSize = defaultSize
	}
	return c
}

func (c Capabilities) Allows(f Format) bool {
	for _, allowed := range c.Formats {
		if allowed == f {
			return true
		}
	}
	return false
}

func (c Capabilities) AllowsSize(size string) bool {
	for _, s := range c.Sizes {
		if s == size {
			return true
		}
	}
	return false
}
