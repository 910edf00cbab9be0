package factor

import (
	"context"
	"errors"
	"math/big"
	"math/rand"
	"sort"
)

// PollardRho factors a number with Pollard's rho cycle-finding method: Floyd
// tortoise/hare iteration over the pseudorandom map f(x) = (x² + c) mod n,
// with the start point x and offset c drawn from the injected random source.
// A single rho pass either finds a non-trivial divisor or fails when the
// iteration budget runs out or the detected cycle spans all of n (an unlucky
// choice of c). Failed passes are not retried with fresh parameters inside
// the rho step itself; the complete factorizer decides what to do next.
type PollardRho struct{}

// Name returns the display name of the strategy.
func (p *PollardRho) Name() string { return "Pollard's Rho" }

// rho runs one cycle-finding pass and returns a single non-trivial divisor
// of n, or ErrNoFactorization. Even n short-circuit to 2.
func (p *PollardRho) rho(ctx context.Context, n *big.Int, opts Options) (*big.Int, error) {
	if n.Bit(0) == 0 {
		return big.NewInt(2), nil
	}
	// For n <= 3 there is no room for a non-trivial divisor.
	if n.Cmp(bigFour) < 0 {
		return nil, ErrNoFactorization
	}

	x := randBetween(opts.Rand, bigTwo, new(big.Int).Sub(n, bigOne))
	y := new(big.Int).Set(x)
	c := randBetween(opts.Rand, bigOne, new(big.Int).Sub(n, bigOne))

	d := big.NewInt(1)
	diff := new(big.Int)
	for i := 0; i < opts.MaxIterations && d.Cmp(bigOne) == 0; i++ {
		advance(x, c, n)   // tortoise: one step
		advance(y, c, n)   // hare: two steps
		advance(y, c, n)
		diff.Sub(x, y).Abs(diff)
		d = GCD(diff, n)

		if i%ctxCheckInterval == 0 {
			if err := checkCtx(ctx, p.Name()); err != nil {
				return nil, err
			}
		}
	}

	// d == n means the cycle collapsed over the whole group; d == 1 means
	// the budget ran out. Both are failures of this pass.
	if d.Cmp(bigOne) == 0 || d.Cmp(n) == 0 {
		return nil, ErrNoFactorization
	}
	return d, nil
}

// advance applies x = (x² + c) mod n in place.
func advance(x, c, n *big.Int) {
	x.Mul(x, x)
	x.Add(x, c)
	x.Mod(x, n)
}

// randBetween returns a uniform random value in [lo, hi]. The span must be
// positive; callers guarantee lo <= hi.
func randBetween(rng *rand.Rand, lo, hi *big.Int) *big.Int {
	span := new(big.Int).Sub(hi, lo)
	span.Add(span, bigOne)
	r := new(big.Int).Rand(rng, span)
	return r.Add(r, lo)
}

// Factorize completely factors n by repeatedly splitting composites with the
// rho step. Numbers still to decompose are kept on an explicit work list
// rather than in recursive calls, so inputs with many prime factors cannot
// exhaust the call stack.
//
// Primality decisions: IsPrimeSimple serves as a cheap composite filter (a
// false return proves compositeness), and IsProbablyPrime (Miller-Rabin)
// certifies the primes that get emitted as factors. When a rho pass fails to
// split a certified composite, the factorizer falls back to trial division
// below TrialFallbackLimit; above it the cofactor is reported as-is, which
// keeps the product invariant at the cost of a possibly non-prime entry.
// That lossy last resort mirrors the method's practical limits and is
// preferable to looping without bound.
func (p *PollardRho) Factorize(ctx context.Context, n *big.Int, opts Options) ([]*big.Int, error) {
	if n.Cmp(bigTwo) < 0 {
		return nil, ErrNoFactorization
	}
	opts = opts.normalized()

	fallbackLimit := big.NewInt(TrialFallbackLimit)
	trial := &TrialDivision{}

	var factors []*big.Int
	work := []*big.Int{new(big.Int).Set(n)}
	for len(work) > 0 {
		m := work[len(work)-1]
		work = work[:len(work)-1]

		if err := checkCtx(ctx, p.Name()); err != nil {
			return nil, err
		}

		if m.Cmp(bigTwo) == 0 || (IsPrimeSimple(m) && IsProbablyPrime(m)) {
			factors = append(factors, m)
			continue
		}

		d, err := p.rho(ctx, m, opts)
		if err != nil {
			if !errors.Is(err, ErrNoFactorization) {
				return nil, err
			}
			// The rho pass could not split m.
			if m.Cmp(fallbackLimit) < 0 {
				sub, terr := trial.Factorize(ctx, m, opts)
				if terr != nil {
					return nil, terr
				}
				factors = append(factors, sub...)
			} else {
				factors = append(factors, m)
			}
			continue
		}

		q := new(big.Int).Quo(m, d)
		work = append(work, d, q)
	}

	sortFactors(factors)
	return factors, nil
}

// sortFactors orders a factor list ascending in place.
func sortFactors(factors []*big.Int) {
	sort.Slice(factors, func(i, j int) bool {
		return factors[i].Cmp(factors[j]) < 0
	})
}
