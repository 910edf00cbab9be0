package quantum

import (
	"context"
	"math/big"
	"math/rand"
	"time"

	"github.com/agbru/factorbench/internal/factor"
)

// Key is the registry and report key of the period-finding strategy. Like
// the classical keys, it is part of the report's external contract.
const Key = "shors"

// DefaultMaxAttempts is the number of random bases tried before the
// algorithm reports no result.
const DefaultMaxAttempts = 10

// Shor factors integers by reducing factorization to order finding. For a
// random base a coprime to n, an even period r of a^x mod n yields the
// candidate factors gcd(a^(r/2) ± 1, n). The period subroutine is pluggable;
// the default is the bounded classical search.
type Shor struct {
	// Finder supplies the multiplicative order. Nil selects a
	// ClassicalPeriodFinder with default bounds.
	Finder PeriodFinder
	// MaxAttempts bounds the number of random bases tried. Zero selects
	// DefaultMaxAttempts.
	MaxAttempts int
}

// Name returns the display name of the strategy.
func (s *Shor) Name() string { return "Shor's Algorithm" }

// Factorize attempts to split n via period finding.
//
// Even inputs and perfect powers are dispatched without touching the period
// subroutine. Otherwise, random bases are drawn until either gcd(a, n)
// exposes a factor directly, or an even period leads to a non-trivial split.
// Odd periods and the a^(r/2) ≡ -1 (mod n) dead end are retried with a
// fresh base, up to MaxAttempts.
func (s *Shor) Factorize(ctx context.Context, n *big.Int, opts factor.Options) ([]*big.Int, error) {
	two := big.NewInt(2)
	if n.Cmp(two) < 0 {
		return nil, factor.ErrNoFactorization
	}
	if n.Bit(0) == 0 {
		if n.Cmp(two) == 0 {
			return nil, factor.ErrNoFactorization
		}
		half := new(big.Int).Rsh(n, 1)
		return orderedPair(two, half), nil
	}
	if base, exp, ok := factor.IsPower(n); ok {
		factors := make([]*big.Int, exp)
		for i := range factors {
			factors[i] = new(big.Int).Set(base)
		}
		return factors, nil
	}

	finder := s.Finder
	if finder == nil {
		finder = &ClassicalPeriodFinder{}
	}
	attempts := s.MaxAttempts
	if attempts <= 0 {
		attempts = DefaultMaxAttempts
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	one := big.NewInt(1)
	for attempt := 0; attempt < attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		a := randomBase(rng, n)

		// A base sharing a factor with n splits it without any period
		// finding at all.
		g := factor.GCD(a, n)
		if g.Cmp(one) > 0 {
			return orderedPair(g, new(big.Int).Div(n, g)), nil
		}

		r, err := finder.FindPeriod(ctx, a, n)
		if err != nil || r.Bit(0) != 0 {
			continue
		}

		// x = a^(r/2) mod n. x ≡ -1 gives only the trivial split.
		x := new(big.Int).Exp(a, new(big.Int).Rsh(r, 1), n)
		nMinusOne := new(big.Int).Sub(n, one)
		if x.Cmp(nMinusOne) == 0 {
			continue
		}

		for _, candidate := range []*big.Int{
			new(big.Int).Add(x, one),
			new(big.Int).Sub(x, one),
		} {
			f := factor.GCD(candidate, n)
			if f.Cmp(one) > 0 && f.Cmp(n) < 0 {
				return orderedPair(f, new(big.Int).Div(n, f)), nil
			}
		}
	}
	return nil, factor.ErrNoFactorization
}

// randomBase draws a uniformly random base in [2, n-1].
func randomBase(rng *rand.Rand, n *big.Int) *big.Int {
	span := new(big.Int).Sub(n, big.NewInt(2))
	a := new(big.Int).Rand(rng, span)
	return a.Add(a, big.NewInt(2))
}

// orderedPair returns the two factors in ascending order.
func orderedPair(a, b *big.Int) []*big.Int {
	if a.Cmp(b) > 0 {
		a, b = b, a
	}
	return []*big.Int{a, b}
}
