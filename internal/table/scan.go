package table

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ScanOptions control how raw input is tokenized into a Grid.
type ScanOptions struct {
	Delimiter Delimiter

	// SkipFirstLine discards the entire first physical line, used by
	// headerless mode so column headings from the piped command never
	// reach the grid.
	SkipFirstLine bool
}

// Scan reads r to EOF and splits it into rows and cells under the delimiter
// policy. Consecutive delimiters collapse, so no cell is ever the empty
// string and blank lines produce no rows. A pending cell or row at EOF is
// flushed even without a trailing newline. Empty input yields an empty Grid.
func Scan(r io.Reader, opts ScanOptions) (Grid, error) {
	var (
		grid      Grid
		row       Row
		cell      strings.Builder
		firstLine = true
	)

	flushCell := func() {
		if cell.Len() > 0 {
			row = append(row, cell.String())
			cell.Reset()
		}
	}

	br := bufio.NewReader(r)
	for {
		ch, _, err := br.ReadRune()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}

		if !opts.Delimiter.breaks(ch) {
			cell.WriteRune(ch)
			continue
		}

		flushCell()
		if ch != '\n' {
			continue
		}
		if firstLine && opts.SkipFirstLine {
			firstLine = false
			row = nil
			continue
		}
		firstLine = false
		if len(row) > 0 {
			grid = append(grid, row)
			row = nil
		}
	}

	flushCell()
	if firstLine && opts.SkipFirstLine {
		// The whole input was one unterminated line.
		return grid, nil
	}
	if len(row) > 0 {
		grid = append(grid, row)
	}
	return grid, nil
}
