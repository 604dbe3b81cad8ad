// Package table implements the tabstijl formatting core: tokenizing raw
// input into a grid of rows and cells, computing column layout, and
// composing the final bordered, styled output lines.
//
// The whole input is buffered into a Grid before any line is rendered;
// per-column widths are only known once every row has been seen, so a
// streaming variant cannot keep columns aligned across the table.
package table

import (
	"fmt"
	"strings"
	"unicode"
)

// Row is an ordered group of cells parsed from one logical input line.
type Row []string

// Grid is the full two-dimensional table. Rows may be ragged; rows shorter
// than the widest render blank trailing cells.
type Grid []Row

// Columns returns the widest row length in the grid.
func (g Grid) Columns() int {
	n := 0
	for _, row := range g {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Delimiter selects which characters split a row into cells. A newline
// always terminates the current cell and the current row, no matter which
// delimiter is configured.
type Delimiter int

const (
	DelimSpace Delimiter = iota
	DelimTab
	DelimNewline
	DelimWhitespace
)

// ParseDelimiter maps a flag value to a Delimiter.
func ParseDelimiter(s string) (Delimiter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "space":
		return DelimSpace, nil
	case "tab":
		return DelimTab, nil
	case "newln":
		return DelimNewline, nil
	case "wspace":
		return DelimWhitespace, nil
	default:
		return DelimSpace, fmt.Errorf("invalid separator %q (expected newln|space|tab|wspace)", s)
	}
}

func (d Delimiter) String() string {
	switch d {
	case DelimTab:
		return "tab"
	case DelimNewline:
		return "newln"
	case DelimWhitespace:
		return "wspace"
	default:
		return "space"
	}
}

// breaks reports whether r ends the pending cell.
func (d Delimiter) breaks(r rune) bool {
	switch d {
	case DelimSpace:
		return r == ' ' || r == '\n'
	case DelimTab:
		return r == '\t' || r == '\n'
	case DelimNewline:
		return r == '\n'
	default:
		return unicode.IsSpace(r)
	}
}
