package factor

import (
	"context"
	"math/big"
)

// TrialDivision factors a number by exhaustively probing divisors: the factor
// 2 is extracted first, then odd candidates from 3 upward as long as the
// square of the candidate does not exceed the remaining cofactor. It is
// deterministic, complete, and always correct; its cost scales with the
// smallest prime factor of the input, which makes it the baseline every other
// strategy is compared against.
type TrialDivision struct{}

// Name returns the display name of the strategy.
func (t *TrialDivision) Name() string { return "Trial Division" }

// Factorize returns the prime factors of n in ascending order, with
// multiplicity. Inputs below 2 yield ErrNoFactorization.
func (t *TrialDivision) Factorize(ctx context.Context, n *big.Int, _ Options) ([]*big.Int, error) {
	if n.Cmp(bigTwo) < 0 {
		return nil, ErrNoFactorization
	}

	var factors []*big.Int
	m := new(big.Int).Set(n)
	rem := new(big.Int)

	for m.Bit(0) == 0 {
		factors = append(factors, big.NewInt(2))
		m.Rsh(m, 1)
	}

	d := big.NewInt(3)
	sq := new(big.Int)
	steps := 0
	for {
		sq.Mul(d, d)
		if sq.Cmp(m) > 0 {
			break
		}
		for rem.Mod(m, d).Sign() == 0 {
			factors = append(factors, new(big.Int).Set(d))
			m.Quo(m, d)
		}
		d.Add(d, bigTwo)

		steps++
		if steps%ctxCheckInterval == 0 {
			if err := checkCtx(ctx, t.Name()); err != nil {
				return nil, err
			}
		}
	}

	// Whatever remains above 1 is the final prime cofactor.
	if m.Cmp(bigOne) > 0 {
		factors = append(factors, m)
	}
	return factors, nil
}
