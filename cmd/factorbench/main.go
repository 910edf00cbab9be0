// Command factorbench compares classical integer factorization algorithms
// on a batch of numbers, timing each strategy and verifying its results.
package main

import (
	"context"
	"io"
	"os"

	"github.com/agbru/factorbench/internal/app"
	apperrors "github.com/agbru/factorbench/internal/errors"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run wires the application lifecycle: version flag short-circuit,
// configuration parsing, signal handling, and exit code propagation.
func run(args []string, out, errOut io.Writer) int {
	if len(args) > 1 && app.HasVersionFlag(args[1:]) {
		app.PrintVersion(out)
		return apperrors.ExitSuccess
	}

	application, err := app.New(args, errOut)
	if err != nil {
		if app.IsHelpError(err) {
			return apperrors.ExitSuccess
		}
		return apperrors.ExitErrorConfig
	}

	ctx, stop := app.SetupSignals(context.Background())
	defer stop()

	return application.Run(ctx, out)
}
