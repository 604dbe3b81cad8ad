package cmd

import (
	"context"
	"fmt"
	"io"

	clierrors "github.com/salmonumbrella/tabstijl/internal/errors"
	"github.com/salmonumbrella/tabstijl/internal/iocontext"
)

// printCommandError reports a failed invocation on stderr. Configuration
// errors always carry a hint pointing at --help; stdout stays untouched so
// a failed run never produces partial table output.
func printCommandError(ctx context.Context, fallback io.Writer, err error) {
	if err == nil {
		return
	}
	w := fallback
	if ctx != nil {
		w = iocontext.StderrOrDefault(ctx, fallback)
	}

	_, _ = fmt.Fprintf(w, "Error: %v\n", err)

	suggestion := clierrors.UserSuggestion(err)
	if suggestion == "" && ExitCode(err) == ExitUser {
		suggestion = helpHint
	}
	if suggestion != "" {
		_, _ = fmt.Fprintf(w, "Hint: %s\n", suggestion)
	}
}
