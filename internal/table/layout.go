package table

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/salmonumbrella/tabstijl/internal/style"
)

// cellWidth measures a cell in terminal display columns rather than bytes,
// so multi-byte and wide glyphs stay aligned.
func cellWidth(s string) int {
	return runewidth.StringWidth(s)
}

// Widths returns one padded width per column: the widest cell in the column
// plus padding. Missing cells in ragged rows count as width zero, and the
// result always has g.Columns() entries.
func Widths(g Grid, padding int) []int {
	widths := make([]int, g.Columns())
	for _, row := range g {
		for i, cell := range row {
			if w := cellWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	for i := range widths {
		widths[i] += padding
	}
	return widths
}

// ApplyHeader substitutes an externally supplied header for row 0. The
// replacement is wholesale: it is neither merged with nor validated against
// the detected header, so a short header simply renders blank trailing
// columns. Header data is ignored in headerless mode because no header row
// will be rendered. An empty grid gains the header as its only row.
func ApplyHeader(g Grid, header Row, headerless bool) Grid {
	if len(header) == 0 || headerless {
		return g
	}
	if len(g) == 0 {
		return Grid{header}
	}
	out := make(Grid, len(g))
	copy(out, g)
	out[0] = header
	return out
}

// AlignCell pads s with spaces to width under the given alignment. Center
// splits the padding and gives any odd leftover space to the right side.
// Cells at or beyond width pass through untouched; nothing is truncated.
func AlignCell(s string, width int, align style.Alignment) string {
	pad := width - cellWidth(s)
	if pad <= 0 {
		return s
	}
	switch align {
	case style.AlignRight:
		return strings.Repeat(" ", pad) + s
	case style.AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
	default:
		return s + strings.Repeat(" ", pad)
	}
}
