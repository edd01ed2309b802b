package diagnostics

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiBold   = "\033[1m"
	ansiReset  = "\033[0m"
)

// Render writes errors and notes to f, one per line, colorized when f is a
// terminal. Output order is the order given, so callers decide sorting.
func Render(f *os.File, errs []*DiagnosticError, notes []Note) {
	useColor := isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())

	for _, err := range errs {
		if useColor {
			fmt.Fprintf(f, "- %s%serror%s %s\n", ansiBold, ansiRed, ansiReset, err.Error())
		} else {
			fmt.Fprintf(f, "- error %s\n", err.Error())
		}
	}
	for _, n := range notes {
		if useColor {
			fmt.Fprintf(f, "- %swarning%s %s\n", ansiYellow, ansiReset, n.String())
		} else {
			fmt.Fprintf(f, "- warning %s\n", n.String())
		}
	}
}
