// Package cli provides the command-line interface for passgen.
package cli

import (
	"fmt"
	"io"
	"sync"

	"passgen/internal/errors"
)

// Reporter writes command results to the terminal.
// Passwords go to out; errors and verbose notices go to errOut.
type Reporter struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	verbose bool
}

// NewReporter creates a new CLI reporter.
// If verbose is false, PrintInfo is a no-op.
func NewReporter(out, errOut io.Writer, verbose bool) *Reporter {
	return &Reporter{
		out:     out,
		errOut:  errOut,
		verbose: verbose,
	}
}

// PrintPassword prints one password on its own line.
func (r *Reporter) PrintPassword(password string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, password)
}

// PrintError prints an error message. Validation errors show only their
// human-readable message; random source failures say no password was made.
func (r *Reporter) PrintError(err error) {
	if err == nil {
		return
	}
	msg := err.Error()
	var verr *errors.ValidationError
	switch {
	case errors.As(err, &verr):
		msg = verr.Message
	case errors.IsRandFailure(err):
		msg = "secure random source unavailable, no password generated: " + msg
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.errOut, "Error: %s\n", msg)
}

// PrintInfo prints a notice when verbose output is enabled.
func (r *Reporter) PrintInfo(format string, args ...any) {
	if !r.verbose {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.errOut, format+"\n", args...)
}
