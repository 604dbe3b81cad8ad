package table

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestScan(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  ScanOptions
		want  Grid
	}{
		{
			name:  "space delimited rows",
			input: "a b\nccc d\n",
			want:  Grid{{"a", "b"}, {"ccc", "d"}},
		},
		{
			name:  "consecutive delimiters collapse",
			input: "a   b\n",
			want:  Grid{{"a", "b"}},
		},
		{
			name:  "leading and trailing delimiters",
			input: "  a b  \n",
			want:  Grid{{"a", "b"}},
		},
		{
			name:  "blank lines produce no rows",
			input: "a\n\n\nb\n",
			want:  Grid{{"a"}, {"b"}},
		},
		{
			name:  "missing trailing newline still flushes",
			input: "a b\nc d",
			want:  Grid{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "tab delimiter keeps spaces in cells",
			input: "one one\ttwo\n",
			opts:  ScanOptions{Delimiter: DelimTab},
			want:  Grid{{"one one", "two"}},
		},
		{
			name:  "newline delimiter keeps whole lines",
			input: "a b\tc\nd e\n",
			opts:  ScanOptions{Delimiter: DelimNewline},
			want:  Grid{{"a b\tc"}, {"d e"}},
		},
		{
			name:  "whitespace delimiter splits on any space",
			input: "a\tb c\r\nd\n",
			opts:  ScanOptions{Delimiter: DelimWhitespace},
			want:  Grid{{"a", "b", "c"}, {"d"}},
		},
		{
			name:  "skip first line",
			input: "header line\na b\n",
			opts:  ScanOptions{SkipFirstLine: true},
			want:  Grid{{"a", "b"}},
		},
		{
			name:  "skip first line with single unterminated line",
			input: "only line no newline",
			opts:  ScanOptions{SkipFirstLine: true},
			want:  nil,
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
		{
			name:  "only delimiters",
			input: "   \n  \n",
			want:  nil,
		},
		{
			name:  "multibyte cells",
			input: "名前 值\nב ג\n",
			want:  Grid{{"名前", "值"}, {"ב", "ג"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Scan(strings.NewReader(tt.input), tt.opts)
			if err != nil {
				t.Fatalf("Scan returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Scan = %#v, want %#v", got, tt.want)
			}
		})
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}

func TestScanReadError(t *testing.T) {
	_, err := Scan(failingReader{}, ScanOptions{})
	if err == nil {
		t.Fatal("expected error from failing reader")
	}
	if !strings.Contains(err.Error(), "read input") {
		t.Errorf("error = %q, want read input wrap", err.Error())
	}
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		input   string
		want    Delimiter
		wantErr bool
	}{
		{"space", DelimSpace, false},
		{"tab", DelimTab, false},
		{"newln", DelimNewline, false},
		{"wspace", DelimWhitespace, false},
		{"TAB", DelimTab, false},
		{"comma", DelimSpace, true},
		{"", DelimSpace, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDelimiter(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseDelimiter(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseDelimiter(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestGridColumns(t *testing.T) {
	g := Grid{{"a"}, {"b", "c", "d"}, {"e", "f"}}
	if got := g.Columns(); got != 3 {
		t.Errorf("Columns = %d, want 3", got)
	}
	if got := (Grid{}).Columns(); got != 0 {
		t.Errorf("empty Columns = %d, want 0", got)
	}
}
