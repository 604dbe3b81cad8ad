package cmd

import (
	"context"
	"errors"
	"strings"

	clierrors "github.com/salmonumbrella/tabstijl/internal/errors"
)

const (
	ExitOK       = 0
	ExitSystem   = 1
	ExitUser     = 2
	ExitCanceled = 130
)

// ExitCode maps a command error to a stable process exit code for
// automation: 0 success, 2 configuration/user error, 1 anything else.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	if clierrors.IsUserError(err) || clierrors.IsValidationError(err) {
		return ExitUser
	}
	if isFlagParseError(err) {
		return ExitUser
	}
	return ExitSystem
}

// isFlagParseError recognizes pflag/cobra argument errors, which do not
// carry our error types but are still user mistakes.
func isFlagParseError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{
		"unknown flag",
		"unknown shorthand flag",
		"unknown command",
		"invalid argument",
		"flag needs an argument",
		"bad flag syntax",
	} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
