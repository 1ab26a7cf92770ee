package cli

import (
	"io"
	"os"

	"golang.org/x/term"
)

// isTerminal returns true if w is a terminal (not piped/redirected).
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
