package table

import (
	"github.com/muesli/termenv"

	"github.com/salmonumbrella/tabstijl/internal/style"
)

// RenderConfig is the fully resolved styling and behavior configuration for
// one invocation. It is assembled by folding command-line options onto
// DefaultConfig in argument order and is never mutated once rendering
// starts.
type RenderConfig struct {
	Delimiter  Delimiter
	Padding    int
	HeaderData Row

	// Headerless styles every row as body and skips the first input line.
	Headerless    bool
	ShowBorder    bool
	ShowSeparator bool

	Border      style.BorderStyle
	HeaderAlign style.Alignment
	BodyAlign   style.Alignment

	TableColor       style.Color
	HeaderColor      style.Color
	BodyColor        style.Color
	HeaderBackground style.Color
	BodyBackground   style.Color
	HeaderStyle      style.TextStyle
	BodyStyle        style.TextStyle

	// Profile decides whether colors and styles resolve to escape
	// sequences at all; termenv.Ascii renders a plain table.
	Profile termenv.Profile
}

// DefaultConfig mirrors the tool's zero-flag behavior: space delimiter,
// padding 2, single-line borders with a header separator, left alignment,
// and no colors or styles set.
func DefaultConfig() RenderConfig {
	return RenderConfig{
		Delimiter:     DelimSpace,
		Padding:       2,
		ShowBorder:    true,
		ShowSeparator: true,
		Border:        style.Single,
		Profile:       termenv.Ascii,
	}
}

// ApplyTheme overwrites exactly the fields t defines and leaves the rest at
// their prior values. Later flags can still override theme fields; argument
// order wins.
func (c *RenderConfig) ApplyTheme(t style.Theme) {
	if t.HeaderAlign != nil {
		c.HeaderAlign = *t.HeaderAlign
	}
	if t.BodyAlign != nil {
		c.BodyAlign = *t.BodyAlign
	}
	if t.Border != nil {
		c.Border = *t.Border
	}
	if t.TableColor != nil {
		c.TableColor = *t.TableColor
	}
	if t.HeaderColor != nil {
		c.HeaderColor = *t.HeaderColor
	}
	if t.BodyColor != nil {
		c.BodyColor = *t.BodyColor
	}
	if t.HeaderBackground != nil {
		c.HeaderBackground = *t.HeaderBackground
	}
	if t.BodyBackground != nil {
		c.BodyBackground = *t.BodyBackground
	}
	if t.HeaderStyle != nil {
		c.HeaderStyle = *t.HeaderStyle
	}
	if t.BodyStyle != nil {
		c.BodyStyle = *t.BodyStyle
	}
	if t.Delimiter != "" {
		if d, err := ParseDelimiter(t.Delimiter); err == nil {
			c.Delimiter = d
		}
	}
}
