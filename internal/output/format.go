package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format string

const (
	// FormatTable is the bordered, styled table (default).
	FormatTable Format = "table"
	// FormatPlain is unstyled tab-aligned text.
	FormatPlain Format = "plain"
	// FormatJSON is pretty-printed JSON.
	FormatJSON Format = "json"
	// FormatYAML is YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat converts a string to a Format type. Empty string defaults to
// FormatTable. Returns an error if the format is invalid.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatTable, "":
		return FormatTable, nil
	case FormatPlain:
		return FormatPlain, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.New("invalid --output format (expected table|plain|json|yaml)")
	}
}

// Printer writes a Document in a fixed format.
type Printer struct {
	w      io.Writer
	format Format
	query  string
}

// NewPrinter creates a Printer that writes to w in the given format.
func NewPrinter(w io.Writer, format Format) *Printer {
	return &Printer{w: w, format: format}
}

// WithQuery returns a copy of p that filters json output through a jq
// query. The query only applies to FormatJSON; callers reject other
// combinations during configuration validation.
func (p *Printer) WithQuery(query string) *Printer {
	out := *p
	out.query = query
	return &out
}

// Print outputs the document in the configured format.
func (p *Printer) Print(doc Document) error {
	switch p.format {
	case FormatPlain:
		return p.printPlain(doc)
	case FormatJSON:
		return p.printJSON(doc)
	case FormatYAML:
		return p.printYAML(doc)
	default:
		return fmt.Errorf("unsupported format: %s", p.format)
	}
}

// printPlain writes the grid through text/tabwriter: no borders, no colors,
// two spaces between columns.
func (p *Printer) printPlain(doc Document) error {
	tw := tabwriter.NewWriter(p.w, 0, 0, 2, ' ', 0)

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i > 0 {
				_, _ = fmt.Fprint(tw, "\t")
			}
			_, _ = fmt.Fprint(tw, cell)
		}
		_, _ = fmt.Fprintln(tw)
	}

	if len(doc.Headers) > 0 {
		writeRow(doc.Headers)
	}
	for _, row := range doc.Rows {
		writeRow(row)
	}
	return tw.Flush()
}

// printJSON outputs the document as pretty-printed JSON, filtered through
// the jq query when one is set.
func (p *Printer) printJSON(doc Document) error {
	if p.query != "" {
		return p.runQuery(doc)
	}
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

func (p *Printer) printYAML(doc Document) error {
	enc := yaml.NewEncoder(p.w)
	enc.SetIndent(2)
	defer func() { _ = enc.Close() }()
	return enc.Encode(doc)
}
