package style

import (
	"fmt"
	"strings"
)

// BorderLine holds the four glyphs for one horizontal border row: the left
// corner, the junction drawn between adjacent columns, the right corner, and
// the fill repeated across each column.
type BorderLine struct {
	Left, Mid, Right, Fill string
}

// BorderStyle is the full glyph set used to draw a table's borders.
type BorderStyle struct {
	Name      string
	Top       BorderLine
	Separator BorderLine
	Bottom    BorderLine
	Vertical  string
}

var (
	// Single is the default single-line box drawing style.
	Single = BorderStyle{
		Name:      "single",
		Top:       BorderLine{"┌", "┬", "┐", "─"},
		Separator: BorderLine{"├", "┼", "┤", "─"},
		Bottom:    BorderLine{"└", "┴", "┘", "─"},
		Vertical:  "│",
	}

	// Double draws double-line box glyphs.
	Double = BorderStyle{
		Name:      "double",
		Top:       BorderLine{"╔", "╦", "╗", "═"},
		Separator: BorderLine{"╠", "╬", "╣", "═"},
		Bottom:    BorderLine{"╚", "╩", "╝", "═"},
		Vertical:  "║",
	}

	// Heavy draws heavy-line box glyphs.
	Heavy = BorderStyle{
		Name:      "heavy",
		Top:       BorderLine{"┏", "┳", "┓", "━"},
		Separator: BorderLine{"┣", "╋", "┫", "━"},
		Bottom:    BorderLine{"┗", "┻", "┛", "━"},
		Vertical:  "┃",
	}

	// Star uses an asterisk glyph for every horizontal position and a
	// double-line vertical divider.
	Star = BorderStyle{
		Name:      "star",
		Top:       BorderLine{"✲", "✲", "✲", "✲"},
		Separator: BorderLine{"✲", "✲", "✲", "✲"},
		Bottom:    BorderLine{"✲", "✲", "✲", "✲"},
		Vertical:  "║",
	}
)

// ParseBorderStyle maps a flag value to one of the built-in border presets.
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single":
		return Single, nil
	case "double":
		return Double, nil
	case "heavy":
		return Heavy, nil
	case "star":
		return Star, nil
	default:
		return Single, fmt.Errorf("invalid border style %q (expected single|double|heavy|star)", s)
	}
}
