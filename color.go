package logify

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// Color returns the ANSI escape sequence used to colorize the level's name
// on the console. It fails with ErrInvalidLevel when l is out of range.
func (l Level) Color() (string, error) {
	if !l.Valid() {
		return "", fmt.Errorf("%w: %d", ErrInvalidLevel, int(l))
	}
	return levelColors[l-Trace], nil
}

// isTerminal reports whether w is an interactive terminal. Color is enabled
// automatically for terminal consoles and disabled for everything else;
// SetColor and WithColor override the detection.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
