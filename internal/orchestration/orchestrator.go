// Package orchestration runs the full algorithm set over a batch of numbers
// and analyzes the collected results. Execution is sequential and ordered:
// algorithms run one after another for each number, numbers one after
// another, so that timings are not distorted by contention.
package orchestration

import (
	"context"
	"fmt"
	"io"
	"math/big"
	"text/tabwriter"

	"github.com/agbru/factorbench/internal/benchmark"
	apperrors "github.com/agbru/factorbench/internal/errors"
	"github.com/agbru/factorbench/internal/factor"
	"github.com/agbru/factorbench/internal/ui"
)

// Entry pairs a registry key with the algorithm it denotes. The key is what
// appears in reports; the order of a []Entry slice is the execution order.
type Entry struct {
	Key  string
	Algo factor.Algorithm
}

// ComparisonRun collects the results of every algorithm for one number. Runs
// are independent of each other: a failure recorded here never affects the
// other numbers of the batch.
type ComparisonRun struct {
	// Number is the input the algorithms were compared on.
	Number *big.Int
	// Keys lists the algorithm keys in execution order.
	Keys []string
	// Results maps each key to its benchmark result.
	Results map[string]benchmark.Result
}

// ProgressFunc is notified before each (algorithm, number) invocation, with
// the count of invocations already completed out of the total. A nil
// ProgressFunc disables progress reporting.
type ProgressFunc func(completed, total int, number *big.Int, algorithm string)

// RunComparison executes every algorithm entry on every number, in order,
// through the benchmark runner. Individual failures are recorded as failed
// results; nothing aborts the batch. Context cancellation is honored inside
// the algorithms themselves, so a canceled context drains the remaining
// invocations quickly, each recording its interruption as a failure.
//
// Parameters:
//   - ctx: The context bounding the whole batch.
//   - runner: The benchmark runner mediating every invocation.
//   - entries: The algorithms to compare, in execution order.
//   - numbers: The batch of inputs.
//   - opts: Iteration budget and randomness source, shared by all runs.
//   - progress: Optional progress callback, may be nil.
//
// Returns:
//   - []ComparisonRun: One run per input number, in input order.
func RunComparison(ctx context.Context, runner *benchmark.Runner, entries []Entry, numbers []*big.Int, opts factor.Options, progress ProgressFunc) []ComparisonRun {
	runs := make([]ComparisonRun, 0, len(numbers))
	total := len(numbers) * len(entries)
	completed := 0

	for _, n := range numbers {
		run := ComparisonRun{
			Number:  new(big.Int).Set(n),
			Keys:    make([]string, 0, len(entries)),
			Results: make(map[string]benchmark.Result, len(entries)),
		}
		for _, e := range entries {
			if progress != nil {
				progress(completed, total, n, e.Algo.Name())
			}
			run.Keys = append(run.Keys, e.Key)
			run.Results[e.Key] = runner.Run(ctx, e.Algo, n, opts)
			completed++
		}
		runs = append(runs, run)
	}
	return runs
}

// AnalyzeComparisonResults renders the per-number summary tables and
// determines the exit code of the comparison.
//
// For each number, every algorithm's success, elapsed time, and speedup
// relative to the trial division baseline are tabulated. The speedup is
// "N/A" when the baseline failed, the result failed, or the measured time
// rounds to zero.
//
// A successful result whose factor product does not reproduce the input is
// a verification failure: it is flagged in the table and escalates the exit
// code to ExitErrorMismatch. A batch with no successful result at all exits
// with the code for its first recorded error.
//
// Parameters:
//   - runs: The comparison runs to analyze.
//   - out: The io.Writer for the summary tables.
//
// Returns:
//   - int: ExitSuccess, ExitErrorMismatch, or the code of the first error.
func AnalyzeComparisonResults(runs []ComparisonRun, out io.Writer) int {
	fmt.Fprintf(out, "\n%s--- Comparison Summary ---%s\n", ui.ColorBold(), ui.ColorReset())

	successCount := 0
	mismatch := false
	var firstErr error

	for _, run := range runs {
		fmt.Fprintf(out, "\nNumber: %s%s%s\n", ui.ColorMagenta(), run.Number, ui.ColorReset())
		tw := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
		fmt.Fprintf(tw, "%sAlgorithm%s\t%sSuccess%s\t%sTime (s)%s\t%sSpeedup%s\n",
			ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset(),
			ui.ColorUnderline(), ui.ColorReset(), ui.ColorUnderline(), ui.ColorReset())

		baseline := baselineSeconds(run)
		for _, key := range run.Keys {
			res := run.Results[key]
			status := fmt.Sprintf("%s✗%s", ui.ColorRed(), ui.ColorReset())
			if res.Success {
				successCount++
				if res.VerifyFactors() {
					status = fmt.Sprintf("%s✓%s", ui.ColorGreen(), ui.ColorReset())
				} else {
					mismatch = true
					status = fmt.Sprintf("%s✗ (bad product)%s", ui.ColorRed(), ui.ColorReset())
				}
			} else if firstErr == nil {
				firstErr = res.Err
			}
			fmt.Fprintf(tw, "%s%s%s\t%s\t%s%.6f%s\t%s\n",
				ui.ColorBlue(), res.Algorithm, ui.ColorReset(),
				status,
				ui.ColorYellow(), res.TimeSeconds(), ui.ColorReset(),
				speedup(baseline, res))
		}
		if err := tw.Flush(); err != nil {
			fmt.Fprintf(out, "Warning: failed to flush tabwriter: %v\n", err)
		}
	}

	switch {
	case mismatch:
		fmt.Fprintf(out, "\nGlobal Status: %sCRITICAL ERROR!%s A claimed factorization does not reproduce its input.\n",
			ui.ColorRed(), ui.ColorReset())
		return apperrors.ExitErrorMismatch
	case successCount == 0 && len(runs) > 0:
		fmt.Fprintf(out, "\nGlobal Status: Failure. No algorithm factored any input.\n")
		return apperrors.HandleRunError(firstErr, 0, out, nil)
	default:
		fmt.Fprintf(out, "\nGlobal Status: %sSuccess.%s All claimed factorizations verified.\n",
			ui.ColorGreen(), ui.ColorReset())
		return apperrors.ExitSuccess
	}
}

// baselineSeconds returns the trial division time for the run, or zero when
// the baseline is absent or failed.
func baselineSeconds(run ComparisonRun) float64 {
	base, ok := run.Results[factor.KeyTrialDivision]
	if !ok || !base.Success {
		return 0
	}
	return base.TimeSeconds()
}

// speedup formats the baseline-relative speedup column.
func speedup(baseline float64, res benchmark.Result) string {
	if baseline <= 0 || !res.Success || res.Duration <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2fx", baseline/res.TimeSeconds())
}
