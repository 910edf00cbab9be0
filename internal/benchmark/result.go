// Package benchmark wraps factorization algorithms with uniform timing,
// failure capture, and result records. It is the boundary at which every
// algorithm failure is converted into data instead of propagating.
package benchmark

import (
	"fmt"
	"math/big"
	"strings"
	"time"
)

// Result encapsulates the outcome of a single (algorithm, number)
// invocation. It is created once by the Runner and never mutated afterwards.
type Result struct {
	// Number is the input that was factored.
	Number *big.Int
	// Algorithm is the display name of the strategy used.
	Algorithm string
	// Factors is the claimed factor list. Empty when Success is false.
	Factors []*big.Int
	// Duration is the wall-clock time the invocation took.
	Duration time.Duration
	// Success records whether the algorithm claimed a result. It means
	// only that: correctness is established by VerifyFactors, which must
	// be checked independently.
	Success bool
	// Err holds the failure cause when Success is false, for diagnostics.
	Err error
}

// VerifyFactors independently recomputes the product of the factor list and
// compares it to the input. It is the authoritative correctness check; an
// empty factor list never verifies.
func (r Result) VerifyFactors() bool {
	if len(r.Factors) == 0 {
		return false
	}
	p := big.NewInt(1)
	for _, f := range r.Factors {
		p.Mul(p, f)
	}
	return p.Cmp(r.Number) == 0
}

// TimeSeconds returns the elapsed time as seconds, the unit used in reports.
func (r Result) TimeSeconds() float64 {
	return r.Duration.Seconds()
}

// String renders the result for human consumption: the factor decomposition
// with verification status on success, or the failure cause otherwise.
func (r Result) String() string {
	if !r.Success {
		return fmt.Sprintf("%s: %s: failed after %s", r.Algorithm, r.Number, r.Duration)
	}
	parts := make([]string, len(r.Factors))
	for i, f := range r.Factors {
		parts[i] = f.String()
	}
	return fmt.Sprintf("%s: %s = %s (verified: %t, %s)",
		r.Algorithm, r.Number, strings.Join(parts, " × "), r.VerifyFactors(), r.Duration)
}
