package cmdutil

import (
	"bufio"
	"fmt"
	"io"

	"radmarkers/internal/writers"
)

// Exit codes shared by every command.
const (
	ExitOK       = 0
	ExitUsage    = 2 // bad flags, bad config, unreadable or malformed input
	ExitIO       = 3 // failure while writing results
	ExitCanceled = 130
)

// Finish flushes out and returns code. A broken pipe on flush counts as
// success; any other flush error is reported on stderr as ExitIO.
func Finish(out *bufio.Writer, stderr io.Writer, code int) int {
	err := out.Flush()
	switch {
	case err == nil:
		return code
	case writers.IsBrokenPipe(err):
		return ExitOK
	default:
		_, _ = fmt.Fprintln(stderr, err)
		return ExitIO
	}
}
