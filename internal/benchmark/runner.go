package benchmark

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog"

	apperrors "github.com/agbru/factorbench/internal/errors"
	"github.com/agbru/factorbench/internal/factor"
)

// Runner executes factorization algorithms under a uniform measurement
// contract: every invocation produces exactly one Result with a non-negative
// wall-clock duration, and no failure of any kind escapes — panics and
// errors alike are captured, logged for operator visibility, and recorded as
// failed results.
type Runner struct {
	logger zerolog.Logger
}

// NewRunner creates a Runner that reports algorithm failures through the
// given logger.
func NewRunner(logger zerolog.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run invokes one algorithm on one number and returns its Result.
//
// A result with an empty factor list is always a failure, regardless of what
// the algorithm itself signaled. The expected no-result outcome
// (factor.ErrNoFactorization) is recorded as a failure without alarm;
// anything else is logged as an algorithm error.
//
// Parameters:
//   - ctx: The context bounding the invocation.
//   - algo: The algorithm to benchmark.
//   - n: The number to factor.
//   - opts: Iteration budget and randomness source, passed through.
//
// Returns:
//   - Result: The immutable outcome record.
func (r *Runner) Run(ctx context.Context, algo factor.Algorithm, n *big.Int, opts factor.Options) Result {
	start := time.Now()
	factors, err := r.invoke(ctx, algo, n, opts)
	elapsed := time.Since(start)

	res := Result{
		Number:    new(big.Int).Set(n),
		Algorithm: algo.Name(),
		Duration:  elapsed,
	}

	if err == nil && len(factors) == 0 {
		err = factor.ErrNoFactorization
	}
	if err != nil {
		res.Err = apperrors.NewFactorizationError(algo.Name(), err)
		r.logFailure(algo.Name(), n, elapsed, err)
		observeRun(algo.Name(), outcomeFailure, elapsed)
		return res
	}

	res.Factors = factors
	res.Success = true
	observeRun(algo.Name(), outcomeSuccess, elapsed)
	r.logger.Debug().
		Str("algorithm", algo.Name()).
		Str("number", n.String()).
		Dur("elapsed", elapsed).
		Int("factors", len(factors)).
		Msg("factorization succeeded")
	return res
}

// invoke calls the algorithm with panic recovery, so a misbehaving strategy
// is reduced to an ordinary error at this boundary.
func (r *Runner) invoke(ctx context.Context, algo factor.Algorithm, n *big.Int, opts factor.Options) (factors []*big.Int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			factors = nil
			err = fmt.Errorf("algorithm panic: %v", rec)
		}
	}()
	return algo.Factorize(ctx, n, opts)
}

// logFailure routes failures to the diagnostic channel. Budget exhaustion is
// routine and logged at debug; unexpected errors are warnings.
func (r *Runner) logFailure(name string, n *big.Int, elapsed time.Duration, err error) {
	evt := r.logger.Warn()
	if errors.Is(err, factor.ErrNoFactorization) {
		evt = r.logger.Debug()
	}
	evt.
		Str("algorithm", name).
		Str("number", n.String()).
		Dur("elapsed", elapsed).
		Err(err).
		Msg("factorization failed")
}
