// Package printer renders fatal diagnostics on a terminal stream.
package printer

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed, color.Bold)

// Error prints title in red, then the explanation and any suggestions, to w.
// It returns a plain error carrying the title.
func Error(w io.Writer, title, explanation string, suggestions ...string) error {
	_, _ = red.Fprintf(w, "%s\n", title)
	if explanation != "" {
		_, _ = fmt.Fprintf(w, "%s\n", explanation)
	}
	switch len(suggestions) {
	case 0:
	case 1:
		_, _ = fmt.Fprintf(w, "\n%s\n", suggestions[0])
	default:
		_, _ = fmt.Fprintf(w, "\nEither:\n")
		for i, s := range suggestions {
			_, _ = fmt.Fprintf(w, "  %d. %s\n", i+1, s)
		}
	}
	return fmt.Errorf("%s", title)
}
