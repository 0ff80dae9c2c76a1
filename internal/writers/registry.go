// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"radmarkers/internal/output"
)

// ReportWriters maps a format name to its handler. Handlers register in init().
var ReportWriters = map[string]func(w io.Writer, r output.Report) error{}

// Register adds or replaces (last wins) the handler for format.
func Register(format string, fn func(io.Writer, output.Report) error) { ReportWriters[format] = fn }

// Formats returns the registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(ReportWriters))
	for f := range ReportWriters {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Known reports whether format has a handler.
func Known(format string) bool {
	_, ok := ReportWriters[format]
	return ok
}

// Write dispatches r to the handler registered for format.
func Write(format string, w io.Writer, r output.Report) error {
	fn, ok := ReportWriters[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, r)
}
