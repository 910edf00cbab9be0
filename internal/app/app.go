// Package app wires the factorbench application together: configuration,
// algorithm selection, the comparison run, report output, and exit codes.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/agbru/factorbench/internal/benchmark"
	"github.com/agbru/factorbench/internal/cli"
	"github.com/agbru/factorbench/internal/config"
	apperrors "github.com/agbru/factorbench/internal/errors"
	"github.com/agbru/factorbench/internal/factor"
	"github.com/agbru/factorbench/internal/logging"
	"github.com/agbru/factorbench/internal/orchestration"
	"github.com/agbru/factorbench/internal/quantum"
	"github.com/agbru/factorbench/internal/report"
	"github.com/agbru/factorbench/internal/server"
	"github.com/agbru/factorbench/internal/ui"
)

// Application represents one factorbench invocation. It holds the parsed
// configuration and the algorithm registry the run draws from.
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Registry provides the classical factorization algorithms.
	Registry *factor.Registry
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or
// validation fails.
//
// Parameters:
//   - args: The command-line arguments (typically os.Args).
//   - errWriter: The writer for error output.
//
// Returns:
//   - *Application: A new application instance.
//   - error: An error if configuration parsing or validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	registry := factor.GlobalRegistry()

	// The period-finding strategy can be selected by key even though it
	// only joins the comparison when quantum mode is on.
	availableAlgos := append(registry.List(), quantum.Key)

	programName := "factorbench"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter, availableAlgos)
	if err != nil {
		return nil, err
	}

	return &Application{
		Config:    cfg,
		Registry:  registry,
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application based on the configured mode.
//
// Parameters:
//   - ctx: The context for managing cancellation and timeouts.
//   - out: The writer for standard output.
//
// Returns:
//   - int: An exit code (0 for success, non-zero for errors).
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	if a.Config.ServerMode {
		return a.runServer(ctx)
	}
	return a.runComparison(ctx, out)
}

// runServer starts the HTTP server mode and blocks until ctx is canceled.
func (a *Application) runServer(ctx context.Context) int {
	logger := logging.NewLogger(a.ErrWriter, "server")
	srv := server.New(a.Config.Port, a.Registry, a.Config.ToFactorOptions(),
		server.WithLogger(logger))
	if err := srv.Run(ctx); err != nil {
		fmt.Fprintf(a.ErrWriter, "Server error: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	return apperrors.ExitSuccess
}

// runComparison executes the comparison batch: resolve the inputs, run
// every selected algorithm on each one, render or serialize the results,
// and write the report file.
func (a *Application) runComparison(ctx context.Context, out io.Writer) int {
	ctx, cancel := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancel()

	logger := logging.NewLogger(a.ErrWriter, "factorbench")
	if a.Config.Quiet {
		logger = logging.NewNopLogger()
	}
	runner := benchmark.NewRunner(logger)

	entries := a.selectEntries()
	if len(entries) == 0 {
		fmt.Fprintf(a.ErrWriter, "No algorithm selected.\n")
		return apperrors.ExitErrorConfig
	}
	numbers := a.resolveNumbers()

	showConsole := !a.Config.JSONOutput && !a.Config.Quiet
	if showConsole {
		names := make([]string, len(entries))
		for i, e := range entries {
			names[i] = e.Algo.Name()
		}
		cli.PrintExecutionConfig(a.Config, names, len(numbers), out)
	}

	var progress *cli.BatchProgress
	if showConsole {
		progress = cli.NewBatchProgress(out)
		progress.Start()
	}

	start := time.Now()
	runs := orchestration.RunComparison(ctx, runner, entries, numbers,
		a.Config.ToFactorOptions(), progress.Step)
	elapsed := time.Since(start)
	progress.Stop()

	if showConsole {
		for _, run := range runs {
			cli.PrintComparisonRun(run, out)
		}
	}

	exitCode := a.analyze(runs, out)

	if ctxErr := ctx.Err(); ctxErr != nil && exitCode == apperrors.ExitSuccess {
		exitCode = apperrors.HandleRunError(ctxErr, elapsed, out, cli.CLIColorProvider{})
	}

	if a.Config.JSONOutput {
		if err := report.Build(runs).Write(out); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error writing JSON output: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}

	if a.Config.Output != "" {
		if err := report.Build(runs).WriteFile(a.Config.Output); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving report: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
		if showConsole {
			fmt.Fprintf(out, "\n%s✓ Comparison report saved to: %s%s%s\n",
				cli.ColorGreen(), cli.ColorCyan(), a.Config.Output, cli.ColorReset())
		}
	}

	return exitCode
}

// analyze renders the summary tables and computes the exit code. In JSON
// and quiet modes the tables are suppressed but the exit code logic still
// runs, so verification failures are never silent.
func (a *Application) analyze(runs []orchestration.ComparisonRun, out io.Writer) int {
	tableOut := out
	if a.Config.JSONOutput || a.Config.Quiet {
		tableOut = io.Discard
	}
	return orchestration.AnalyzeComparisonResults(runs, tableOut)
}

// selectEntries determines which algorithms run, in execution order: the
// classical registry order, with the period-finding strategy appended last
// when quantum mode is enabled. Selecting a single algorithm by key
// restricts the run to it.
func (a *Application) selectEntries() []orchestration.Entry {
	shor := &quantum.Shor{}

	if a.Config.Algo != "all" {
		if a.Config.Algo == quantum.Key {
			return []orchestration.Entry{{Key: quantum.Key, Algo: shor}}
		}
		algo, err := a.Registry.Get(a.Config.Algo)
		if err != nil {
			return nil
		}
		return []orchestration.Entry{{Key: a.Config.Algo, Algo: algo}}
	}

	keys := a.Registry.Keys()
	entries := make([]orchestration.Entry, 0, len(keys)+1)
	for _, key := range keys {
		algo, err := a.Registry.Get(key)
		if err != nil {
			continue
		}
		entries = append(entries, orchestration.Entry{Key: key, Algo: algo})
	}
	if a.Config.UseQuantum {
		entries = append(entries, orchestration.Entry{Key: quantum.Key, Algo: shor})
	}
	return entries
}

// resolveNumbers picks the input batch: explicit numbers win, then the
// predefined suite, then the default demonstration set.
func (a *Application) resolveNumbers() []*big.Int {
	switch {
	case len(a.Config.Numbers) > 0:
		return a.Config.Numbers
	case a.Config.TestSuite:
		return orchestration.TestSuiteNumbers()
	default:
		return orchestration.DefaultDemoNumbers()
	}
}

// IsHelpError checks if the error is a help flag error (--help was used),
// so that help text exits with success.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
