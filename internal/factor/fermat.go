package factor

import (
	"context"
	"math/big"
)

// Fermat factors a number by searching for a difference-of-squares
// representation n = a² - b², which yields the pair (a-b, a+b). The search
// starts at a = ceil(sqrt(n)) and increments a until a² - n is a perfect
// square or the iteration budget runs out. Perfect squares are detected with
// an exact integer square root and a squared-back comparison; floating point
// is never involved.
//
// The method converges quickly only when the two factors are close in
// magnitude. Widely separated factors routinely exhaust the budget, which is
// expected behavior and reported as ErrNoFactorization rather than an error.
type Fermat struct{}

// Name returns the display name of the strategy.
func (f *Fermat) Name() string { return "Fermat's Factorization" }

// Factorize returns the two-element factor list [a-b, a+b], or [2, n/2] for
// even n. A prime input eventually reaches a = (n+1)/2 where the pair
// degenerates to (1, n); such trivial results are rejected and reported as
// ErrNoFactorization so that every success is a non-trivial factorization.
func (f *Fermat) Factorize(ctx context.Context, n *big.Int, opts Options) ([]*big.Int, error) {
	if n.Cmp(bigTwo) < 0 {
		return nil, ErrNoFactorization
	}
	opts = opts.normalized()

	if n.Bit(0) == 0 {
		half := new(big.Int).Rsh(n, 1)
		if half.Cmp(bigTwo) < 0 {
			// n == 2: the only split is 2 × 1, which is trivial.
			return nil, ErrNoFactorization
		}
		return []*big.Int{big.NewInt(2), half}, nil
	}

	a := ceilSqrt(n)
	bSq := new(big.Int).Mul(a, a)
	bSq.Sub(bSq, n)

	b := new(big.Int)
	check := new(big.Int)
	for i := 0; i < opts.MaxIterations; i++ {
		b.Sqrt(bSq)
		check.Mul(b, b)
		if check.Cmp(bSq) == 0 {
			small := new(big.Int).Sub(a, b)
			large := new(big.Int).Add(a, b)
			if small.Cmp(bigOne) <= 0 {
				// a = (n+1)/2 reached: n is prime or the square
				// search walked past every proper split.
				return nil, ErrNoFactorization
			}
			return []*big.Int{small, large}, nil
		}
		a.Add(a, bigOne)
		bSq.Mul(a, a)
		bSq.Sub(bSq, n)

		if i%ctxCheckInterval == 0 {
			if err := checkCtx(ctx, f.Name()); err != nil {
				return nil, err
			}
		}
	}

	return nil, ErrNoFactorization
}
