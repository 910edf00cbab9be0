package factor

import (
	"context"
	"math/big"
	"math/rand"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestTrialDivisionProperties verifies the fundamental invariants of
// exhaustive factorization with property-based testing: for every n >= 2 the
// product of the returned factors equals n, and every returned factor is
// prime.
func TestTrialDivisionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)
	ctx := context.Background()
	algo := &TrialDivision{}

	properties.Property("product of factors equals n", prop.ForAll(
		func(n int64) bool {
			factors, err := algo.Factorize(ctx, big.NewInt(n), Options{})
			if err != nil {
				return false
			}
			return product(factors).Int64() == n
		},
		gen.Int64Range(2, 5_000_000),
	))

	properties.Property("every factor is prime", prop.ForAll(
		func(n int64) bool {
			factors, err := algo.Factorize(ctx, big.NewInt(n), Options{})
			if err != nil {
				return false
			}
			for _, f := range factors {
				if !IsProbablyPrime(f) {
					return false
				}
			}
			return true
		},
		gen.Int64Range(2, 5_000_000),
	))

	properties.Property("factors are ascending", prop.ForAll(
		func(n int64) bool {
			factors, err := algo.Factorize(ctx, big.NewInt(n), Options{})
			if err != nil {
				return false
			}
			for i := 1; i < len(factors); i++ {
				if factors[i].Cmp(factors[i-1]) < 0 {
					return false
				}
			}
			return true
		},
		gen.Int64Range(2, 5_000_000),
	))

	properties.TestingRun(t)
}

// TestPollardRhoProperties verifies that the complete rho factorizer agrees
// with the product invariant and never emits trivial factors, regardless of
// the random walk it takes.
func TestPollardRhoProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 150
	properties := gopter.NewProperties(parameters)
	ctx := context.Background()
	algo := &PollardRho{}

	properties.Property("product of factors equals n", prop.ForAll(
		func(n int64, seed int64) bool {
			opts := Options{Rand: rand.New(rand.NewSource(seed))}
			factors, err := algo.Factorize(ctx, big.NewInt(n), opts)
			if err != nil {
				return false
			}
			if len(factors) == 0 {
				return false
			}
			for _, f := range factors {
				if f.Cmp(bigOne) <= 0 {
					return false
				}
			}
			return product(factors).Int64() == n
		},
		gen.Int64Range(2, 1_000_000),
		gen.Int64(),
	))

	properties.TestingRun(t)
}

// TestGCDProperties verifies commutativity and the identity element with
// property-based testing.
func TestGCDProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	properties.Property("gcd is commutative", prop.ForAll(
		func(a, b int64) bool {
			x := GCD(big.NewInt(a), big.NewInt(b))
			y := GCD(big.NewInt(b), big.NewInt(a))
			return x.Cmp(y) == 0
		},
		gen.Int64Range(0, 1<<40),
		gen.Int64Range(0, 1<<40),
	))

	properties.Property("gcd(a, 0) == a", prop.ForAll(
		func(a int64) bool {
			return GCD(big.NewInt(a), big.NewInt(0)).Int64() == a
		},
		gen.Int64Range(0, 1<<40),
	))

	properties.Property("gcd divides both operands", prop.ForAll(
		func(a, b int64) bool {
			g := GCD(big.NewInt(a), big.NewInt(b))
			if g.Sign() == 0 {
				return a == 0 && b == 0
			}
			ra := new(big.Int).Mod(big.NewInt(a), g)
			rb := new(big.Int).Mod(big.NewInt(b), g)
			return ra.Sign() == 0 && rb.Sign() == 0
		},
		gen.Int64Range(0, 1<<40),
		gen.Int64Range(0, 1<<40),
	))

	properties.TestingRun(t)
}
