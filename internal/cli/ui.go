// The cli package provides the console presentation layer of the comparison
// harness: progress display while a batch is being factored, the execution
// banner, and result formatting.
package cli

import (
	"fmt"
	"io"
	"math/big"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/factorbench/internal/ui"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds
// for durations less than a second, and the default string representation
// otherwise.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// ProgressRefreshRate defines the refresh frequency of the batch spinner.
const ProgressRefreshRate = 200 * time.Millisecond

// Color functions return ANSI escape codes from the current theme. They
// delegate to the ui package to reduce coupling.

// ColorReset returns the reset escape code from the current theme.
func ColorReset() string { return ui.ColorReset() }

// ColorRed returns the error color from the current theme.
func ColorRed() string { return ui.ColorRed() }

// ColorGreen returns the success color from the current theme.
func ColorGreen() string { return ui.ColorGreen() }

// ColorYellow returns the warning color from the current theme.
func ColorYellow() string { return ui.ColorYellow() }

// ColorBlue returns the primary color from the current theme.
func ColorBlue() string { return ui.ColorBlue() }

// ColorMagenta returns the info color from the current theme.
func ColorMagenta() string { return ui.ColorMagenta() }

// ColorCyan returns the secondary color from the current theme.
func ColorCyan() string { return ui.ColorCyan() }

// ColorBold returns the bold escape code from the current theme.
func ColorBold() string { return ui.ColorBold() }

// CLIColorProvider supplies terminal colors to the error handling layer
// without creating an import cycle.
type CLIColorProvider struct{}

// Yellow returns the warning color from the current theme.
func (CLIColorProvider) Yellow() string { return ColorYellow() }

// Reset returns the reset escape code from the current theme.
func (CLIColorProvider) Reset() string { return ColorReset() }

// Spinner abstracts the behavior of a terminal spinner, decoupling the
// progress display from a specific spinner implementation so that tests can
// substitute their own.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts the spinner library to the Spinner interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) { rs.s.Suffix = suffix }

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// BatchProgress displays a spinner tracking a comparison batch, one update
// per (algorithm, number) invocation. A nil *BatchProgress is a valid no-op,
// which is how quiet mode disables progress display.
type BatchProgress struct {
	spinner Spinner
}

// NewBatchProgress creates a progress display writing to out.
func NewBatchProgress(out io.Writer) *BatchProgress {
	return &BatchProgress{spinner: newSpinner(spinner.WithWriter(out))}
}

// Start begins the spinner animation.
func (p *BatchProgress) Start() {
	if p == nil {
		return
	}
	p.spinner.Start()
}

// Step reports that the invocation of algorithm on number is starting, with
// completed out of total invocations already done. Its signature matches the
// orchestrator's progress callback.
func (p *BatchProgress) Step(completed, total int, number *big.Int, algorithm string) {
	if p == nil {
		return
	}
	percent := 0.0
	if total > 0 {
		percent = float64(completed) / float64(total) * 100
	}
	p.spinner.UpdateSuffix(fmt.Sprintf(" [%d/%d %.0f%%] factoring %s with %s",
		completed+1, total, percent, number, algorithm))
}

// Stop halts the spinner and clears its line.
func (p *BatchProgress) Stop() {
	if p == nil {
		return
	}
	p.spinner.Stop()
}
