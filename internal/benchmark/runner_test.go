package benchmark

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/agbru/factorbench/internal/factor"
	"github.com/agbru/factorbench/internal/logging"
)

// stubAlgorithm is a configurable test double for the algorithm contract.
type stubAlgorithm struct {
	name    string
	factors []*big.Int
	err     error
	panics  bool
}

func (s *stubAlgorithm) Name() string { return s.name }

func (s *stubAlgorithm) Factorize(context.Context, *big.Int, factor.Options) ([]*big.Int, error) {
	if s.panics {
		panic("deliberate test panic")
	}
	return s.factors, s.err
}

func TestRunnerSuccess(t *testing.T) {
	t.Parallel()
	runner := NewRunner(logging.NewNopLogger())
	algo := &stubAlgorithm{
		name:    "Stub",
		factors: []*big.Int{big.NewInt(3), big.NewInt(5)},
	}
	res := runner.Run(context.Background(), algo, big.NewInt(15), factor.Options{})

	if !res.Success {
		t.Fatal("expected success")
	}
	if !res.VerifyFactors() {
		t.Error("VerifyFactors should hold for 3 × 5 == 15")
	}
	if res.Duration < 0 {
		t.Errorf("negative duration: %v", res.Duration)
	}
	if res.Algorithm != "Stub" {
		t.Errorf("Algorithm = %q", res.Algorithm)
	}
}

// TestRunnerNeverPropagatesPanic covers the hard boundary requirement: a
// strategy that always panics must yield a failed result with empty factors
// and a non-negative time, never an escaping panic.
func TestRunnerNeverPropagatesPanic(t *testing.T) {
	t.Parallel()
	runner := NewRunner(logging.NewNopLogger())
	algo := &stubAlgorithm{name: "Panicky", panics: true}

	res := runner.Run(context.Background(), algo, big.NewInt(77), factor.Options{})

	if res.Success {
		t.Error("panicking algorithm must not succeed")
	}
	if len(res.Factors) != 0 {
		t.Errorf("factors should be empty, got %v", res.Factors)
	}
	if res.Duration < 0 {
		t.Errorf("negative duration: %v", res.Duration)
	}
	if res.Err == nil || !strings.Contains(res.Err.Error(), "panic") {
		t.Errorf("Err = %v, want panic cause recorded", res.Err)
	}
}

// TestRunnerEmptyFactorsIsFailure verifies that an empty factor list forces
// failure even when the algorithm reported no error.
func TestRunnerEmptyFactorsIsFailure(t *testing.T) {
	t.Parallel()
	runner := NewRunner(logging.NewNopLogger())
	algo := &stubAlgorithm{name: "Empty", factors: nil, err: nil}

	res := runner.Run(context.Background(), algo, big.NewInt(10), factor.Options{})
	if res.Success {
		t.Error("empty factors must mean failure")
	}
	if !errors.Is(res.Err, factor.ErrNoFactorization) {
		t.Errorf("Err = %v, want ErrNoFactorization", res.Err)
	}
}

func TestRunnerNoResult(t *testing.T) {
	t.Parallel()
	runner := NewRunner(logging.NewNopLogger())
	algo := &stubAlgorithm{name: "GivesUp", err: factor.ErrNoFactorization}

	res := runner.Run(context.Background(), algo, big.NewInt(97), factor.Options{})
	if res.Success || res.VerifyFactors() {
		t.Error("no-result outcome must be a failed, unverified result")
	}
}

// TestRunnerLogsUnexpectedFailures checks that internal errors reach the
// diagnostic channel rather than being silently swallowed.
func TestRunnerLogsUnexpectedFailures(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	runner := NewRunner(logger)
	algo := &stubAlgorithm{name: "Broken", err: errors.New("arithmetic exploded")}

	runner.Run(context.Background(), algo, big.NewInt(12), factor.Options{})
	if !strings.Contains(buf.String(), "arithmetic exploded") {
		t.Errorf("failure not logged: %q", buf.String())
	}
}

func TestRunnerDoesNotAliasInput(t *testing.T) {
	t.Parallel()
	runner := NewRunner(logging.NewNopLogger())
	n := big.NewInt(15)
	res := runner.Run(context.Background(), &factor.TrialDivision{}, n, factor.Options{})
	n.SetInt64(999)
	if res.Number.Int64() != 15 {
		t.Errorf("result aliases caller's input: %s", res.Number)
	}
}

func TestResultString(t *testing.T) {
	t.Parallel()
	res := Result{
		Number:    big.NewInt(15),
		Algorithm: "Trial Division",
		Factors:   []*big.Int{big.NewInt(3), big.NewInt(5)},
		Success:   true,
	}
	s := res.String()
	for _, want := range []string{"Trial Division", "3 × 5", "verified: true"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() = %q, missing %q", s, want)
		}
	}
}

func TestVerifyFactorsRejectsWrongProduct(t *testing.T) {
	t.Parallel()
	res := Result{
		Number:  big.NewInt(15),
		Factors: []*big.Int{big.NewInt(3), big.NewInt(7)},
		Success: true,
	}
	if res.VerifyFactors() {
		t.Error("3 × 7 != 15 must not verify")
	}
}
