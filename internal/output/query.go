package output

import (
	"encoding/json"
	"fmt"

	"github.com/itchyny/gojq"
)

// CompileQuery parses and compiles a jq query so a bad query is rejected
// during configuration validation, before any input byte is read.
func CompileQuery(query string) (*gojq.Code, error) {
	parsed, err := gojq.Parse(query)
	if err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}
	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("invalid --query: %w", err)
	}
	return code, nil
}

// runQuery runs the jq query over the document's map/slice form and encodes
// each result on its own line.
func (p *Printer) runQuery(doc Document) error {
	code, err := CompileQuery(p.query)
	if err != nil {
		return err
	}

	normalized, err := normalizeToInterface(doc)
	if err != nil {
		return fmt.Errorf("query error: %w", err)
	}

	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)

	iter := code.Run(normalized)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if queryErr, isErr := v.(error); isErr {
			return fmt.Errorf("query error: %v", queryErr)
		}
		if err := enc.Encode(v); err != nil {
			return err
		}
	}
	return nil
}

// normalizeToInterface round-trips v through JSON so gojq sees only maps,
// slices, and primitives.
func normalizeToInterface(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
