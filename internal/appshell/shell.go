// Package appshell adapts a RunContext-style entry point to a process: it
// wires SIGINT/SIGTERM to context cancellation and exits with the run's code.
package appshell

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"

	"radmarkers/internal/cmdutil"
)

// Runner is the shape of app.RunContext.
type Runner func(ctx context.Context, argv []string, stdout, stderr io.Writer) int

// Main runs run with the process arguments and exits.
func Main(run Runner) {
	os.Exit(exec(run, os.Args[1:], os.Stdout, os.Stderr))
}

func exec(run Runner, argv []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	code := run(ctx, argv, stdout, stderr)
	// Normalize cancellation exit code.
	if ctx.Err() != nil && code == cmdutil.ExitOK {
		code = cmdutil.ExitCanceled
	}
	return code
}
