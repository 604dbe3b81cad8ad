package style

import (
	"fmt"
	"strings"
)

// Theme is a named bundle of styling defaults applied as a single unit.
// Nil fields leave the current configuration untouched. Delimiter is the
// name of a column delimiter ("tab") or empty when the theme does not
// change it; the configuration layer owns delimiter parsing.
type Theme struct {
	Name             string
	HeaderAlign      *Alignment
	BodyAlign        *Alignment
	Border           *BorderStyle
	TableColor       *Color
	HeaderColor      *Color
	BodyColor        *Color
	HeaderBackground *Color
	BodyBackground   *Color
	HeaderStyle      *TextStyle
	BodyStyle        *TextStyle
	Delimiter        string
}

func alignOf(a Alignment) *Alignment      { return &a }
func borderOf(b BorderStyle) *BorderStyle { return &b }
func colorOf(c Color) *Color              { return &c }
func textStyleOf(s TextStyle) *TextStyle  { return &s }

var themes = map[string]Theme{
	"matrix": {
		Name:        "matrix",
		HeaderAlign: alignOf(AlignCenter),
		Border:      borderOf(Heavy),
		TableColor:  colorOf(ColorGreen),
		HeaderColor: colorOf(ColorGreen),
		BodyColor:   colorOf(ColorGreen),
		HeaderStyle: textStyleOf(StyleBold),
		BodyStyle:   textStyleOf(StyleBold),
	},
	"mecha": {
		Name:             "mecha",
		HeaderAlign:      alignOf(AlignCenter),
		BodyAlign:        alignOf(AlignCenter),
		Border:           borderOf(Double),
		HeaderBackground: colorOf(ColorCyan),
		BodyBackground:   colorOf(ColorMagenta),
		HeaderStyle:      textStyleOf(StyleBold),
		BodyStyle:        textStyleOf(StyleUnderline),
	},
	"myth": {
		Name:             "myth",
		HeaderAlign:      alignOf(AlignCenter),
		BodyAlign:        alignOf(AlignCenter),
		Border:           borderOf(Double),
		TableColor:       colorOf(ColorRed),
		HeaderColor:      colorOf(ColorWhite),
		BodyColor:        colorOf(ColorMagenta),
		HeaderBackground: colorOf(ColorRed),
		BodyBackground:   colorOf(ColorBlack),
		HeaderStyle:      textStyleOf(StyleBold),
	},
	"retro": {
		Name:             "retro",
		HeaderAlign:      alignOf(AlignCenter),
		BodyAlign:        alignOf(AlignCenter),
		Border:           borderOf(Star),
		HeaderBackground: colorOf(ColorRed),
		BodyBackground:   colorOf(ColorYellow),
		HeaderStyle:      textStyleOf(StyleBold),
		BodyStyle:        textStyleOf(StyleItalic),
	},
	"sticky": {
		Name:             "sticky",
		HeaderAlign:      alignOf(AlignCenter),
		Border:           borderOf(Double),
		HeaderBackground: colorOf(ColorGreen),
		BodyBackground:   colorOf(ColorYellow),
		HeaderStyle:      textStyleOf(StyleBold),
		BodyStyle:        textStyleOf(StyleUnderline),
		Delimiter:        "tab",
	},
}

// ParseTheme looks up a theme preset by name.
func ParseTheme(s string) (Theme, error) {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return Theme{}, fmt.Errorf("invalid theme %q (expected matrix|mecha|myth|retro|sticky)", s)
}
