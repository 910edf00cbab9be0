// Package config provides the configuration management for the factorbench
// application. It defines the configuration structure, handles command-line
// parsing with environment overrides, and validates the resulting values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/big"
	"math/rand"
	"strings"
	"time"

	apperrors "github.com/agbru/factorbench/internal/errors"
	"github.com/agbru/factorbench/internal/factor"
)

// EnvPrefix is the prefix for all environment variables used by factorbench.
// Environment variables provide an alternative to CLI flags for
// configuration, following the 12-Factor App methodology.
const EnvPrefix = "FACTORBENCH_"

// Default configuration values. These can be overridden via command-line
// flags or environment variables.
const (
	// DefaultTimeout is the default whole-run timeout.
	DefaultTimeout = 5 * time.Minute
	// DefaultPort is the default server port.
	DefaultPort = "8080"
	// DefaultAlgo runs the full comparison.
	DefaultAlgo = "all"
	// DefaultOutput is the default report file path.
	DefaultOutput = "comparison_report.json"
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags and environment variables.
type AppConfig struct {
	// Numbers is the batch of integers to factor, parsed from RawNumbers.
	Numbers []*big.Int
	// RawNumbers is the unparsed comma-separated -numbers value.
	RawNumbers string
	// TestSuite, if true, runs the predefined benchmark suite instead of
	// explicit numbers.
	TestSuite bool
	// UseQuantum, if true, includes the period-finding algorithm in the
	// comparison, after the classical strategies.
	UseQuantum bool
	// Algo restricts the run to a single algorithm key, or "all".
	Algo string
	// Output is the file path the JSON report is written to. Empty
	// disables the report file.
	Output string
	// MaxIterations bounds the iterative algorithms' search loops.
	// Zero keeps each algorithm's default.
	MaxIterations int
	// Seed seeds the shared pseudorandom source used by the randomized
	// algorithms. Zero selects a time-based seed.
	Seed int64
	// Timeout sets the maximum duration for the whole comparison run.
	Timeout time.Duration
	// JSONOutput, if true, prints the machine-readable report to stdout
	// instead of the summary tables.
	JSONOutput bool
	// Quiet suppresses progress display and banners.
	Quiet bool
	// NoColor disables all color output. Also respects NO_COLOR.
	NoColor bool
	// ServerMode, if true, starts the application as an HTTP server.
	ServerMode bool
	// Port specifies the port to listen on in server mode.
	Port string
}

// ToFactorOptions converts the application configuration into factor.Options
// for use by the algorithms. A non-zero Seed produces a reproducible random
// source; otherwise the algorithms fall back to a time-seeded one.
func (c AppConfig) ToFactorOptions() factor.Options {
	opts := factor.Options{MaxIterations: c.MaxIterations}
	if c.Seed != 0 {
		opts.Rand = rand.New(rand.NewSource(c.Seed))
	}
	return opts
}

// Validate checks the semantic consistency of the configuration parameters.
//
// Parameters:
//   - availableAlgos: The valid algorithm keys (e.g. ["fermat",
//     "pollard_rho", "trial_division"]).
//
// Returns:
//   - error: A ConfigError if the configuration is invalid, nil otherwise.
func (c AppConfig) Validate(availableAlgos []string) error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.MaxIterations < 0 {
		return apperrors.NewConfigError("max-iterations cannot be negative: %d", c.MaxIterations)
	}
	isAlgoAvailable := false
	for _, a := range availableAlgos {
		if a == c.Algo {
			isAlgoAvailable = true
			break
		}
	}
	if c.Algo != "all" && !isAlgoAvailable {
		return apperrors.NewConfigError("unrecognized algorithm: '%s'. Valid algorithms are: 'all' or [%s]",
			c.Algo, strings.Join(availableAlgos, ", "))
	}
	for _, n := range c.Numbers {
		if n.Sign() < 0 {
			return apperrors.NewConfigError("numbers to factor must be non-negative, got %s", n)
		}
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig.
// It defines all flags, applies environment overrides for flags not
// explicitly set, parses the number batch, and validates the result.
//
// Parameters:
//   - programName: The name of the program, used in the usage message.
//   - args: The command-line arguments (typically os.Args[1:]).
//   - errorWriter: Where parsing errors and usage information are printed.
//   - availableAlgos: The valid algorithm keys for validation.
//
// Returns:
//   - AppConfig: The populated configuration struct.
//   - error: An error if flag parsing or validation fails.
func ParseConfig(programName string, args []string, errorWriter io.Writer, availableAlgos []string) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)
	algoHelp := fmt.Sprintf("Algorithm to run: 'all' (default) or one of [%s].", strings.Join(availableAlgos, ", "))

	config := AppConfig{}
	fs.StringVar(&config.RawNumbers, "numbers", "", "Comma-separated list of integers to factor (e.g. 15,21,77).")
	fs.BoolVar(&config.TestSuite, "test-suite", false, "Run the predefined benchmark suite of numbers.")
	fs.BoolVar(&config.UseQuantum, "use-quantum", false, "Include the period-finding (Shor-style) algorithm in the comparison.")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, algoHelp)
	fs.StringVar(&config.Output, "output", DefaultOutput, "Output file path for the JSON comparison report (empty to disable).")
	fs.StringVar(&config.Output, "o", DefaultOutput, "Output file path (shorthand).")
	fs.IntVar(&config.MaxIterations, "max-iterations", 0, "Iteration budget for the iterative algorithms (0 = default).")
	fs.Int64Var(&config.Seed, "seed", 0, "Seed for the shared pseudorandom source (0 = time-based).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the comparison run.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Print the report as JSON instead of summary tables.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.ServerMode, "server", false, "Start in HTTP server mode.")
	fs.StringVar(&config.Port, "port", DefaultPort, "Port to listen on in server mode.")

	setCustomUsage(fs)

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set.
	applyEnvOverrides(&config, fs)

	config.Algo = strings.ToLower(config.Algo)

	numbers, err := ParseNumbers(config.RawNumbers)
	if err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	config.Numbers = numbers

	if err := config.Validate(availableAlgos); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}

// ParseNumbers parses a comma-separated list of decimal integers into
// arbitrary-precision values. An empty input yields an empty batch.
func ParseNumbers(raw string) ([]*big.Int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	numbers := make([]*big.Int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, ok := new(big.Int).SetString(part, 10)
		if !ok {
			return nil, apperrors.NewConfigError("not a valid integer: %q", part)
		}
		numbers = append(numbers, n)
	}
	return numbers, nil
}

// setCustomUsage installs a usage message that groups the flags by concern.
func setCustomUsage(fs *flag.FlagSet) {
	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "Usage: %s [options]\n\n", fs.Name())
		fmt.Fprintf(out, "Compare classical integer factorization algorithms on a batch of numbers,\n")
		fmt.Fprintf(out, "timing each strategy and verifying its results.\n\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nEnvironment variables with the %s prefix override unset flags\n", EnvPrefix)
		fmt.Fprintf(out, "(e.g. %sTIMEOUT=1m, %sALGO=pollard_rho).\n", EnvPrefix, EnvPrefix)
	}
}
