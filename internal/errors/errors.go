package errors

import (
	"fmt"
	"os"

	"github.com/julianstephens/zoneline/internal/logger"
)

// Format renders err for terminal output with the tool's "Error: " prefix.
// A nil error renders as the empty string.
func Format(err error) string {
	if err == nil {
		return ""
	}
	return "Error: " + err.Error()
}

// Fatal reports a command failure and exits with code 1. The error goes to
// the log file with full detail and to stderr in the terminal format. A nil
// error is a no-op.
func Fatal(err error) {
	if err == nil {
		return
	}
	logger.Error("command failed", "error", err)
	fmt.Fprintln(os.Stderr, Format(err))
	os.Exit(1)
}
