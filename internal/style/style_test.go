package style

import (
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

func TestParseAlignment(t *testing.T) {
	tests := []struct {
		input   string
		want    Alignment
		wantErr bool
	}{
		{"left", AlignLeft, false},
		{"center", AlignCenter, false},
		{"right", AlignRight, false},
		{"RIGHT", AlignRight, false},
		{" center ", AlignCenter, false},
		{"middle", AlignLeft, true},
		{"", AlignLeft, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAlignment(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAlignment(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseAlignment(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"red", ColorRed, false},
		{"green", ColorGreen, false},
		{"YELLOW", ColorYellow, false},
		{"black", ColorBlack, false},
		{"orange", ColorNone, true},
		{"", ColorNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseColor(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseTextStyle(t *testing.T) {
	tests := []struct {
		input   string
		want    TextStyle
		wantErr bool
	}{
		{"bold", StyleBold, false},
		{"inverse", StyleInverse, false},
		{"italic", StyleItalic, false},
		{"strike", StyleStrike, false},
		{"underline", StyleUnderline, false},
		{"blink", StyleNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTextStyle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTextStyle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseTextStyle(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestColorSequences(t *testing.T) {
	if got := ColorRed.Foreground(termenv.ANSI); got != "\x1b[31m" {
		t.Errorf("red foreground = %q, want %q", got, "\x1b[31m")
	}
	if got := ColorRed.Background(termenv.ANSI); got != "\x1b[41m" {
		t.Errorf("red background = %q, want %q", got, "\x1b[41m")
	}
	if got := ColorGreen.Foreground(termenv.ANSI); got != "\x1b[32m" {
		t.Errorf("green foreground = %q, want %q", got, "\x1b[32m")
	}
	if got := ColorNone.Foreground(termenv.ANSI); got != "" {
		t.Errorf("unset color foreground = %q, want empty", got)
	}
}

func TestSequencesEmptyOnAsciiProfile(t *testing.T) {
	if got := ColorRed.Foreground(termenv.Ascii); got != "" {
		t.Errorf("Foreground on ascii profile = %q, want empty", got)
	}
	if got := ColorRed.Background(termenv.Ascii); got != "" {
		t.Errorf("Background on ascii profile = %q, want empty", got)
	}
	if got := StyleBold.Sequence(termenv.Ascii); got != "" {
		t.Errorf("Sequence on ascii profile = %q, want empty", got)
	}
	if got := Reset(termenv.Ascii); got != "" {
		t.Errorf("Reset on ascii profile = %q, want empty", got)
	}
}

func TestTextStyleSequences(t *testing.T) {
	tests := []struct {
		style TextStyle
		want  string
	}{
		{StyleBold, "\x1b[1m"},
		{StyleItalic, "\x1b[3m"},
		{StyleUnderline, "\x1b[4m"},
		{StyleInverse, "\x1b[7m"},
		{StyleStrike, "\x1b[9m"},
		{StyleNone, ""},
	}

	for _, tt := range tests {
		if got := tt.style.Sequence(termenv.ANSI); got != tt.want {
			t.Errorf("%v.Sequence = %q, want %q", tt.style, got, tt.want)
		}
	}
}

func TestReset(t *testing.T) {
	if got := Reset(termenv.ANSI); got != "\x1b[0m" {
		t.Errorf("Reset = %q, want %q", got, "\x1b[0m")
	}
}

func TestParseBorderStyle(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"single", "single", false},
		{"double", "double", false},
		{"heavy", "heavy", false},
		{"star", "star", false},
		{"Double", "double", false},
		{"dotted", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseBorderStyle(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBorderStyle(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got.Name != tt.want {
				t.Errorf("ParseBorderStyle(%q) = %v, want %v", tt.input, got.Name, tt.want)
			}
		})
	}
}

func TestBorderGlyphs(t *testing.T) {
	if Single.Top.Left != "┌" || Single.Separator.Mid != "┼" || Single.Bottom.Right != "┘" || Single.Vertical != "│" {
		t.Errorf("single glyphs wrong: %+v", Single)
	}
	if Double.Top.Left != "╔" || Double.Vertical != "║" {
		t.Errorf("double glyphs wrong: %+v", Double)
	}
	if Heavy.Separator.Mid != "╋" || Heavy.Top.Fill != "━" {
		t.Errorf("heavy glyphs wrong: %+v", Heavy)
	}
	// Star uses the same glyph for every horizontal position but keeps a
	// double-line vertical divider.
	for _, g := range []string{Star.Top.Left, Star.Top.Mid, Star.Top.Right, Star.Top.Fill, Star.Bottom.Left} {
		if g != "✲" {
			t.Errorf("star glyph = %q, want ✲", g)
		}
	}
	if Star.Vertical != "║" {
		t.Errorf("star vertical = %q, want ║", Star.Vertical)
	}
}

func TestParseTheme(t *testing.T) {
	for _, name := range []string{"matrix", "mecha", "myth", "retro", "sticky"} {
		got, err := ParseTheme(name)
		if err != nil {
			t.Fatalf("ParseTheme(%q) unexpected error: %v", name, err)
		}
		if got.Name != name {
			t.Errorf("ParseTheme(%q).Name = %q", name, got.Name)
		}
	}

	if _, err := ParseTheme("vaporwave"); err == nil {
		t.Error("ParseTheme with unknown name should fail")
	} else if !strings.Contains(err.Error(), "matrix|mecha|myth|retro|sticky") {
		t.Errorf("error should list valid themes, got %q", err.Error())
	}
}

func TestThemeFieldSets(t *testing.T) {
	matrix, _ := ParseTheme("matrix")
	if matrix.Border == nil || matrix.Border.Name != "heavy" {
		t.Error("matrix should set heavy border")
	}
	if matrix.TableColor == nil || *matrix.TableColor != ColorGreen {
		t.Error("matrix should set green table color")
	}
	if matrix.BodyAlign != nil {
		t.Error("matrix should leave body alignment unset")
	}
	if matrix.Delimiter != "" {
		t.Error("matrix should not change the delimiter")
	}

	sticky, _ := ParseTheme("sticky")
	if sticky.Delimiter != "tab" {
		t.Errorf("sticky delimiter = %q, want tab", sticky.Delimiter)
	}
	if sticky.HeaderBackground == nil || *sticky.HeaderBackground != ColorGreen {
		t.Error("sticky should set green header background")
	}

	retro, _ := ParseTheme("retro")
	if retro.Border == nil || retro.Border.Name != "star" {
		t.Error("retro should set star border")
	}
	if retro.BodyStyle == nil || *retro.BodyStyle != StyleItalic {
		t.Error("retro should set italic body style")
	}
}
