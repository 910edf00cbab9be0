package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/agbru/factorbench/internal/config"
	"github.com/agbru/factorbench/internal/orchestration"
)

// PrintExecutionConfig displays the execution configuration: batch size,
// selected algorithms, iteration budget, and timeout.
//
// Parameters:
//   - cfg: The application configuration.
//   - algorithms: The display names of the algorithms about to run.
//   - numbers: How many inputs are in the batch.
//   - out: The writer for standard output.
func PrintExecutionConfig(cfg config.AppConfig, algorithms []string, numbers int, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Factoring %s%d%s number(s) with a timeout of %s%s%s.\n",
		ColorMagenta(), numbers, ColorReset(), ColorYellow(), cfg.Timeout, ColorReset())
	fmt.Fprintf(out, "Algorithms: %s%s%s.\n",
		ColorGreen(), strings.Join(algorithms, ", "), ColorReset())
	if cfg.MaxIterations > 0 {
		fmt.Fprintf(out, "Iteration budget: %s%d%s per algorithm.\n",
			ColorCyan(), cfg.MaxIterations, ColorReset())
	}
	if cfg.Seed != 0 {
		fmt.Fprintf(out, "Pseudorandom seed: %s%d%s (reproducible run).\n",
			ColorCyan(), cfg.Seed, ColorReset())
	}
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ColorCyan(), runtime.NumCPU(), ColorReset(), ColorCyan(), runtime.Version(), ColorReset())
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

// PrintComparisonRun prints the detailed outcome of one number's comparison,
// one line per algorithm in execution order.
//
// Parameters:
//   - run: The comparison run to print.
//   - out: The writer for standard output.
func PrintComparisonRun(run orchestration.ComparisonRun, out io.Writer) {
	fmt.Fprintf(out, "\n%sFactorizing: %s%s\n", ColorBold(), run.Number, ColorReset())
	for _, key := range run.Keys {
		res := run.Results[key]
		color := ColorGreen()
		if !res.Success {
			color = ColorRed()
		}
		fmt.Fprintf(out, "  %s%s%s\n", color, res, ColorReset())
	}
}
