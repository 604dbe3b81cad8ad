package cmd

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	clierrors "github.com/salmonumbrella/tabstijl/internal/errors"
	"github.com/salmonumbrella/tabstijl/internal/iocontext"
	"github.com/salmonumbrella/tabstijl/internal/logging"
	"github.com/salmonumbrella/tabstijl/internal/output"
	"github.com/salmonumbrella/tabstijl/internal/table"
	"github.com/salmonumbrella/tabstijl/internal/ui"
)

//go:embed help.txt
var rootHelpText string

func newRootCmd(app *App) *cobra.Command {
	var (
		fold optionFold

		borderless bool
		fusion     bool
		simplify   bool
		debugMode  bool
		colorFlag  string
		outputFlag string
		queryFlag  string

		colorMode ui.ColorMode
	)

	rootCmd := &cobra.Command{
		Use:   "tabstijl",
		Short: "Format delimited text from stdin as a styled table",
		Long:  rootHelpText,
		Args:  cobra.NoArgs,
		// Errors are reported centrally in Execute.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(debugMode, app.Stderr)

			var err error
			colorMode, err = ui.ParseColorMode(colorFlag)
			if err != nil {
				return clierrors.NewUserError(err.Error(), helpHint)
			}
			cmd.SetContext(ui.WithUI(cmd.Context(), ui.New(app.Stderr, colorMode)))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, app, &fold, runOptions{
				headerless:  simplify,
				borderless:  borderless,
				noSeparator: fusion,
				colorMode:   colorMode,
				format:      outputFlag,
				query:       queryFlag,
			})
		},
	}

	rootCmd.Version = app.Version
	rootCmd.SetVersionTemplate(fmt.Sprintf("tabstijl %s (commit: %s, built: %s)\n",
		app.Version, app.Commit, app.BuildTime))

	flags := rootCmd.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&borderless, "borderless", "b", false, "hide the table border")
	flags.BoolVarP(&fusion, "fusion", "f", false, "hide the line between header and body")
	flags.BoolVarP(&simplify, "simplify", "s", false, "treat every row as body and skip the first input line")
	registerStyleFlags(flags, &fold)
	flags.StringVar(&colorFlag, "color", "auto", "when to emit ANSI colors: auto|always|never")
	flags.StringVarP(&outputFlag, "output", "o", "table", "output format: table|plain|json|yaml")
	flags.StringVar(&queryFlag, "query", "", "jq filter applied to json output")
	flags.BoolVar(&debugMode, "debug", false, "enable debug logging")

	return rootCmd
}

type runOptions struct {
	headerless  bool
	borderless  bool
	noSeparator bool
	colorMode   ui.ColorMode
	format      string
	query       string
}

// runFormat is the whole pipeline: fold the styling options onto the default
// config, validate the remaining flags, scan stdin into a grid, lay out
// column widths, and render. Every flag is validated before the first input
// byte is read.
func runFormat(cmd *cobra.Command, app *App, fold *optionFold, opts runOptions) error {
	ctx := cmd.Context()

	cfg := table.DefaultConfig()
	fold.apply(&cfg)
	cfg.Headerless = opts.headerless
	cfg.ShowBorder = !opts.borderless
	cfg.ShowSeparator = !opts.noSeparator

	format, err := output.ParseFormat(opts.format)
	if err != nil {
		return clierrors.NewUserError(err.Error(), helpHint)
	}
	if opts.query != "" {
		if format != output.FormatJSON {
			return clierrors.NewUserError("--query only applies to --output=json", helpHint)
		}
		if _, err := output.CompileQuery(opts.query); err != nil {
			return clierrors.NewUserError(err.Error(), helpHint)
		}
	}

	stdout := iocontext.StdoutOrDefault(ctx, app.Stdout)
	cfg.Profile = ui.RenderProfile(opts.colorMode, stdout)

	in := iocontext.StdinOrDefault(ctx, app.Stdin)
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		ui.FromContext(ctx).Info("reading from terminal; pipe input or press Ctrl-D to finish")
	}

	grid, err := table.Scan(in, table.ScanOptions{
		Delimiter:     cfg.Delimiter,
		SkipFirstLine: cfg.Headerless,
	})
	if err != nil {
		return err
	}
	grid = table.ApplyHeader(grid, cfg.HeaderData, cfg.Headerless)
	widths := table.Widths(grid, cfg.Padding)
	slog.Debug("parsed input",
		"rows", len(grid),
		"columns", len(widths),
		"delimiter", cfg.Delimiter.String(),
	)

	if format == output.FormatTable {
		return table.NewRenderer(cfg, widths).Write(stdout, grid)
	}

	printer := output.NewPrinter(stdout, format)
	if opts.query != "" {
		printer = printer.WithQuery(opts.query)
	}
	return printer.Print(output.NewDocument(grid, cfg.Headerless))
}
