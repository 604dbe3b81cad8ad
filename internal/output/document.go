// Package output implements the alternative output formats for tabstijl:
// plain tab-aligned text and structured json/yaml dumps of the parsed grid,
// optionally filtered through a jq query. The default bordered table format
// is rendered by internal/table and never passes through this package.
package output

import "github.com/salmonumbrella/tabstijl/internal/table"

// Document is the structured form of a parsed grid.
type Document struct {
	Headers []string   `json:"headers" yaml:"headers"`
	Rows    [][]string `json:"rows" yaml:"rows"`
}

// NewDocument splits a finalized grid into header and body rows. In
// headerless mode every row is a body row and Headers stays empty.
func NewDocument(g table.Grid, headerless bool) Document {
	doc := Document{Rows: [][]string{}}
	rows := g
	if !headerless && len(g) > 0 {
		doc.Headers = g[0]
		rows = g[1:]
	}
	for _, row := range rows {
		doc.Rows = append(doc.Rows, row)
	}
	return doc
}
