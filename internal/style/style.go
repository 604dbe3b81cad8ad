// Package style is the declarative styling catalog for tabstijl: the
// alignment, color, and text-style enumerations, the border glyph presets,
// and the theme presets. Configuration carries these values as tags; they
// resolve to concrete ANSI escape sequences only at render time, so a
// non-color profile can turn every sequence into the empty string.
package style

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

// Alignment controls how cell text is padded inside its column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// ParseAlignment maps a flag value to an Alignment.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return AlignLeft, nil
	case "center":
		return AlignCenter, nil
	case "right":
		return AlignRight, nil
	default:
		return AlignLeft, fmt.Errorf("invalid alignment %q (expected left|center|right)", s)
	}
}

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Color is one of the eight named ANSI colors, or unset. An unset color
// resolves to the empty sequence and contributes nothing to a composed line.
type Color int

const (
	ColorNone Color = iota
	ColorBlack
	ColorBlue
	ColorCyan
	ColorGreen
	ColorMagenta
	ColorRed
	ColorWhite
	ColorYellow
)

var colorNames = map[string]Color{
	"black":   ColorBlack,
	"blue":    ColorBlue,
	"cyan":    ColorCyan,
	"green":   ColorGreen,
	"magenta": ColorMagenta,
	"red":     ColorRed,
	"white":   ColorWhite,
	"yellow":  ColorYellow,
}

// ParseColor maps a flag value to a Color.
func ParseColor(s string) (Color, error) {
	if c, ok := colorNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return ColorNone, fmt.Errorf("invalid color %q (expected black|blue|cyan|green|magenta|red|white|yellow)", s)
}

func (c Color) String() string {
	for name, v := range colorNames {
		if v == c {
			return name
		}
	}
	return "none"
}

// ansi returns the termenv color for c. The second return is false for
// ColorNone.
func (c Color) ansi() (termenv.ANSIColor, bool) {
	switch c {
	case ColorBlack:
		return termenv.ANSIBlack, true
	case ColorBlue:
		return termenv.ANSIBlue, true
	case ColorCyan:
		return termenv.ANSICyan, true
	case ColorGreen:
		return termenv.ANSIGreen, true
	case ColorMagenta:
		return termenv.ANSIMagenta, true
	case ColorRed:
		return termenv.ANSIRed, true
	case ColorWhite:
		return termenv.ANSIWhite, true
	case ColorYellow:
		return termenv.ANSIYellow, true
	default:
		return 0, false
	}
}

// Foreground returns the escape sequence selecting c as the text color, or
// "" when c is unset or p carries no color support.
func (c Color) Foreground(p termenv.Profile) string {
	col, ok := c.ansi()
	if !ok || p == termenv.Ascii {
		return ""
	}
	return termenv.CSI + col.Sequence(false) + "m"
}

// Background returns the escape sequence selecting c as the cell background,
// or "" when c is unset or p carries no color support.
func (c Color) Background(p termenv.Profile) string {
	col, ok := c.ansi()
	if !ok || p == termenv.Ascii {
		return ""
	}
	return termenv.CSI + col.Sequence(true) + "m"
}

// TextStyle is a single text attribute applied to header or body cells.
type TextStyle int

const (
	StyleNone TextStyle = iota
	StyleBold
	StyleInverse
	StyleItalic
	StyleStrike
	StyleUnderline
)

var styleNames = map[string]TextStyle{
	"bold":      StyleBold,
	"inverse":   StyleInverse,
	"italic":    StyleItalic,
	"strike":    StyleStrike,
	"underline": StyleUnderline,
}

// ParseTextStyle maps a flag value to a TextStyle.
func ParseTextStyle(s string) (TextStyle, error) {
	if st, ok := styleNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return st, nil
	}
	return StyleNone, fmt.Errorf("invalid text style %q (expected bold|inverse|italic|strike|underline)", s)
}

func (s TextStyle) String() string {
	for name, v := range styleNames {
		if v == s {
			return name
		}
	}
	return "none"
}

// Sequence returns the escape sequence enabling s, or "" when s is unset or
// p carries no color support.
func (s TextStyle) Sequence(p termenv.Profile) string {
	if p == termenv.Ascii {
		return ""
	}
	var seq string
	switch s {
	case StyleBold:
		seq = termenv.BoldSeq
	case StyleInverse:
		seq = termenv.ReverseSeq
	case StyleItalic:
		seq = termenv.ItalicSeq
	case StyleStrike:
		seq = termenv.CrossOutSeq
	case StyleUnderline:
		seq = termenv.UnderlineSeq
	default:
		return ""
	}
	return termenv.CSI + seq + "m"
}

// Reset returns the attribute reset sequence, or "" when p carries no color
// support.
func Reset(p termenv.Profile) string {
	if p == termenv.Ascii {
		return ""
	}
	return termenv.CSI + termenv.ResetSeq + "m"
}
