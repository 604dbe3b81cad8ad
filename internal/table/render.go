package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/salmonumbrella/tabstijl/internal/style"
)

// Renderer composes the final styled lines for a finalized grid. Escape
// sequences are resolved from the config's enums at composition time; with
// a non-color profile every sequence is empty and the output is plain text.
type Renderer struct {
	cfg    RenderConfig
	widths []int
}

// NewRenderer pairs a config with the column widths computed for the grid
// it will render. widths must come from Widths with the same padding the
// config carries.
func NewRenderer(cfg RenderConfig, widths []int) *Renderer {
	return &Renderer{cfg: cfg, widths: widths}
}

// Lines returns the fully composed output, one element per table line.
//
// Sequencing: top border, rows in order, a separator line directly after
// the header row when borders, header rendering, and the separator are all
// enabled, then the bottom border. An empty grid with borders still yields
// the top and bottom border of a zero-column shell.
func (r *Renderer) Lines(g Grid) []string {
	lines := make([]string, 0, len(g)+3)
	if r.cfg.ShowBorder {
		lines = append(lines, r.borderLine(r.cfg.Border.Top))
	}
	for i, row := range g {
		header := i == 0 && !r.cfg.Headerless
		lines = append(lines, r.rowLine(row, header))
		if header && r.cfg.ShowBorder && r.cfg.ShowSeparator {
			lines = append(lines, r.borderLine(r.cfg.Border.Separator))
		}
	}
	if r.cfg.ShowBorder {
		lines = append(lines, r.borderLine(r.cfg.Border.Bottom))
	}
	return lines
}

// Write renders g to w, one table line per output line.
func (r *Renderer) Write(w io.Writer, g Grid) error {
	for _, line := range r.Lines(g) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// borderLine draws one horizontal border: left corner, each column's fill
// run with a junction between adjacent columns, right corner. A grid with
// n columns gets exactly n-1 junctions; zero columns degrade to the two
// corners.
func (r *Renderer) borderLine(bl style.BorderLine) string {
	var b strings.Builder
	b.WriteString(r.cfg.TableColor.Foreground(r.cfg.Profile))
	b.WriteString(bl.Left)
	for i, w := range r.widths {
		b.WriteString(strings.Repeat(bl.Fill, w))
		if i < len(r.widths)-1 {
			b.WriteString(bl.Mid)
		}
	}
	b.WriteString(bl.Right)
	b.WriteString(style.Reset(r.cfg.Profile))
	return b.String()
}

// vertical returns the styled column divider, or "" with borders off.
func (r *Renderer) vertical() string {
	if !r.cfg.ShowBorder {
		return ""
	}
	return r.cfg.TableColor.Foreground(r.cfg.Profile) + r.cfg.Border.Vertical + style.Reset(r.cfg.Profile)
}

// rowLine composes one data row: divider, then per column the style,
// background, and foreground sequences, the aligned cell, a reset, and the
// next divider. Ragged rows render blank trailing cells.
func (r *Renderer) rowLine(row Row, header bool) string {
	p := r.cfg.Profile
	align := r.cfg.BodyAlign
	prefix := r.cfg.BodyStyle.Sequence(p) + r.cfg.BodyBackground.Background(p) + r.cfg.BodyColor.Foreground(p)
	if header {
		align = r.cfg.HeaderAlign
		prefix = r.cfg.HeaderStyle.Sequence(p) + r.cfg.HeaderBackground.Background(p) + r.cfg.HeaderColor.Foreground(p)
	}

	var b strings.Builder
	b.WriteString(r.vertical())
	for i, w := range r.widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		b.WriteString(prefix)
		b.WriteString(AlignCell(cell, w, align))
		b.WriteString(style.Reset(p))
		b.WriteString(r.vertical())
	}
	return b.String()
}
