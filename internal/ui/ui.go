// Package ui provides terminal color support for tabstijl's own messages.
// All UI output goes to stderr, leaving stdout exclusively for table data.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorMode determines when to emit colored output.
type ColorMode int

const (
	// ColorAuto uses colors only when the stream is a capable terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces colored output regardless of terminal capabilities.
	ColorAlways
	// ColorNever disables all colored output.
	ColorNever
)

// ParseColorMode maps a --color flag value to a ColorMode.
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "auto", "":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q (expected auto|always|never)", s)
	}
}

type contextKey string

const uiContextKey contextKey = "ui"

// UI writes formatted diagnostics to stderr with color support.
type UI struct {
	out *termenv.Output
}

// New creates a UI writing to w with the specified color mode. It respects
// the NO_COLOR environment variable (POSIX standard).
func New(w io.Writer, mode ColorMode) *UI {
	if os.Getenv("NO_COLOR") != "" {
		mode = ColorNever
	}

	profile := termenv.ColorProfile()
	switch mode {
	case ColorNever:
		profile = termenv.Ascii
	case ColorAlways:
		if profile == termenv.Ascii {
			profile = termenv.ANSI
		}
	}

	if w == nil {
		w = os.Stderr
	}
	return &UI{out: termenv.NewOutput(w, termenv.WithProfile(profile))}
}

// WithUI returns a new context with the UI instance attached.
func WithUI(ctx context.Context, ui *UI) context.Context {
	return context.WithValue(ctx, uiContextKey, ui)
}

// FromContext retrieves the UI instance from the context, or a default
// auto-mode UI on stderr if none is attached.
func FromContext(ctx context.Context) *UI {
	if ui, ok := ctx.Value(uiContextKey).(*UI); ok {
		return ui
	}
	return New(os.Stderr, ColorAuto)
}

// Warning prints a warning message in yellow to stderr.
func (u *UI) Warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String("⚠ "+msg).Foreground(termenv.ANSIYellow))
}

// Error prints an error message in red to stderr.
func (u *UI) Error(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String("✗ "+msg).Foreground(termenv.ANSIRed))
}

// Info prints an informational message in blue to stderr.
func (u *UI) Info(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintln(u.out, u.out.String("ℹ "+msg).Foreground(termenv.ANSIBlue))
}

// Writer returns the underlying writer for the UI.
func (u *UI) Writer() io.Writer {
	return u.out
}

// RenderProfile resolves the termenv profile used to style the table on
// stdout. Auto mode emits colors only when stdout is a terminal; always
// forces at least the basic ANSI profile; never (and NO_COLOR) yields
// termenv.Ascii, which renders without any escape sequences.
func RenderProfile(mode ColorMode, stdout io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		mode = ColorNever
	}

	switch mode {
	case ColorNever:
		return termenv.Ascii
	case ColorAlways:
		if p := termenv.ColorProfile(); p != termenv.Ascii {
			return p
		}
		return termenv.ANSI
	default:
		if f, ok := stdout.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return termenv.ColorProfile()
		}
		return termenv.Ascii
	}
}
