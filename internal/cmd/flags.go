package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	clierrors "github.com/salmonumbrella/tabstijl/internal/errors"
	"github.com/salmonumbrella/tabstijl/internal/style"
	"github.com/salmonumbrella/tabstijl/internal/table"
)

const helpHint = "Run 'tabstijl --help' to list options and valid values"

// configOp is one validated configuration mutation, recorded at flag-parse
// time and applied later.
type configOp func(*table.RenderConfig)

// optionFold collects ops in the order pflag encounters them on the command
// line. Folding them left-to-right onto the default config makes the last
// occurrence win, so a theme and a specific flag compose by argument order
// instead of by a fixed precedence.
type optionFold struct {
	ops []configOp
}

func (f *optionFold) record(op configOp) {
	f.ops = append(f.ops, op)
}

func (f *optionFold) apply(cfg *table.RenderConfig) {
	for _, op := range f.ops {
		op(cfg)
	}
}

// foldValue is a pflag.Value whose Set validates the raw value immediately
// and records the resulting mutation in the fold. Validation happens before
// any input is read, so a bad value never wastes a piped stream.
type foldValue struct {
	fold  *optionFold
	parse func(string) (configOp, error)
	value string
}

func (v *foldValue) Type() string   { return "string" }
func (v *foldValue) String() string { return v.value }

func (v *foldValue) Set(raw string) error {
	op, err := v.parse(raw)
	if err != nil {
		return clierrors.NewUserError(err.Error(), helpHint)
	}
	v.value = raw
	v.fold.record(op)
	return nil
}

func foldVar(fs *pflag.FlagSet, fold *optionFold, name, usage string, parse func(string) (configOp, error)) {
	fs.Var(&foldValue{fold: fold, parse: parse}, name, usage)
}

// registerStyleFlags wires every styling option through the ordered fold.
func registerStyleFlags(fs *pflag.FlagSet, fold *optionFold) {
	foldVar(fs, fold, "border-style", "border line style: single|double|heavy|star",
		func(raw string) (configOp, error) {
			b, err := style.ParseBorderStyle(raw)
			if err != nil {
				return nil, err
			}
			return func(c *table.RenderConfig) { c.Border = b }, nil
		})

	foldVar(fs, fold, "separator", "token separator: newln|space|tab|wspace",
		func(raw string) (configOp, error) {
			d, err := table.ParseDelimiter(raw)
			if err != nil {
				return nil, err
			}
			return func(c *table.RenderConfig) { c.Delimiter = d }, nil
		})

	foldVar(fs, fold, "padding", "extra spaces added to every column width", parsePadding)
	foldVar(fs, fold, "hdata", "comma-separated names replacing the header row", parseHeaderData)
	foldVar(fs, fold, "theme", "preset look: matrix|mecha|myth|retro|sticky", parseThemeFlag)

	foldVar(fs, fold, "htext-align", "header text alignment: left|center|right",
		alignmentOp(func(c *table.RenderConfig, a style.Alignment) { c.HeaderAlign = a }))
	foldVar(fs, fold, "btext-align", "body text alignment: left|center|right",
		alignmentOp(func(c *table.RenderConfig, a style.Alignment) { c.BodyAlign = a }))
	foldVar(fs, fold, "text-align", "header and body text alignment: left|center|right",
		alignmentOp(func(c *table.RenderConfig, a style.Alignment) {
			c.HeaderAlign = a
			c.BodyAlign = a
		}))

	foldVar(fs, fold, "tab-color", "border color: "+colorValues,
		colorOp(func(c *table.RenderConfig, col style.Color) { c.TableColor = col }))
	foldVar(fs, fold, "htext-color", "header text color: "+colorValues,
		colorOp(func(c *table.RenderConfig, col style.Color) { c.HeaderColor = col }))
	foldVar(fs, fold, "btext-color", "body text color: "+colorValues,
		colorOp(func(c *table.RenderConfig, col style.Color) { c.BodyColor = col }))
	foldVar(fs, fold, "text-color", "header and body text color: "+colorValues,
		colorOp(func(c *table.RenderConfig, col style.Color) {
			c.HeaderColor = col
			c.BodyColor = col
		}))

	foldVar(fs, fold, "hbg-color", "header background color: "+colorValues,
		colorOp(func(c *table.RenderConfig, col style.Color) { c.HeaderBackground = col }))
	foldVar(fs, fold, "bbg-color", "body background color: "+colorValues,
		colorOp(func(c *table.RenderConfig, col style.Color) { c.BodyBackground = col }))
	foldVar(fs, fold, "bg-color", "header and body background color: "+colorValues,
		colorOp(func(c *table.RenderConfig, col style.Color) {
			c.HeaderBackground = col
			c.BodyBackground = col
		}))

	foldVar(fs, fold, "htext-style", "header text style: "+textStyleValues,
		textStyleOp(func(c *table.RenderConfig, s style.TextStyle) { c.HeaderStyle = s }))
	foldVar(fs, fold, "btext-style", "body text style: "+textStyleValues,
		textStyleOp(func(c *table.RenderConfig, s style.TextStyle) { c.BodyStyle = s }))
	foldVar(fs, fold, "text-style", "header and body text style: "+textStyleValues,
		textStyleOp(func(c *table.RenderConfig, s style.TextStyle) {
			c.HeaderStyle = s
			c.BodyStyle = s
		}))
}

const (
	colorValues     = "black|blue|cyan|green|magenta|red|white|yellow"
	textStyleValues = "bold|inverse|italic|strike|underline"
)

func alignmentOp(assign func(*table.RenderConfig, style.Alignment)) func(string) (configOp, error) {
	return func(raw string) (configOp, error) {
		a, err := style.ParseAlignment(raw)
		if err != nil {
			return nil, err
		}
		return func(c *table.RenderConfig) { assign(c, a) }, nil
	}
}

func colorOp(assign func(*table.RenderConfig, style.Color)) func(string) (configOp, error) {
	return func(raw string) (configOp, error) {
		col, err := style.ParseColor(raw)
		if err != nil {
			return nil, err
		}
		return func(c *table.RenderConfig) { assign(c, col) }, nil
	}
}

func textStyleOp(assign func(*table.RenderConfig, style.TextStyle)) func(string) (configOp, error) {
	return func(raw string) (configOp, error) {
		s, err := style.ParseTextStyle(raw)
		if err != nil {
			return nil, err
		}
		return func(c *table.RenderConfig) { assign(c, s) }, nil
	}
}

func parsePadding(raw string) (configOp, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid padding %q (expected a non-negative integer)", raw)
	}
	if n < 0 {
		return nil, fmt.Errorf("padding cannot be negative, got %d", n)
	}
	return func(c *table.RenderConfig) { c.Padding = n }, nil
}

func parseHeaderData(raw string) (configOp, error) {
	if raw == "" {
		return nil, fmt.Errorf("--hdata needs at least one column name")
	}
	header := table.Row(strings.Split(raw, ","))
	return func(c *table.RenderConfig) { c.HeaderData = header }, nil
}

func parseThemeFlag(raw string) (configOp, error) {
	t, err := style.ParseTheme(raw)
	if err != nil {
		return nil, err
	}
	return func(c *table.RenderConfig) { c.ApplyTheme(t) }, nil
}
