// Package quantum provides the period-finding based factorization strategy.
// The period-finding subroutine itself is abstracted behind the PeriodFinder
// interface so that the factorization logic stays independent of how the
// multiplicative order is obtained (classically here, or by an external
// quantum collaborator).
package quantum

import (
	"context"
	"errors"
	"math/big"

	"github.com/agbru/factorbench/internal/factor"
)

// ErrNoPeriod is returned by a PeriodFinder when no multiplicative order
// could be determined within its search bounds.
var ErrNoPeriod = errors.New("no period found")

// DefaultMaxPeriod bounds the classical period search. Beyond this, the
// classical finder gives up rather than iterating toward n.
const DefaultMaxPeriod = 1000

// PeriodFinder determines the multiplicative order of a modulo n: the
// smallest r > 0 such that a^r ≡ 1 (mod n). Implementations return
// ErrNoPeriod when the order cannot be found within their bounds.
type PeriodFinder interface {
	FindPeriod(ctx context.Context, a, n *big.Int) (*big.Int, error)
}

// ClassicalPeriodFinder finds periods by direct modular iteration. It is
// practical only for small moduli, which is exactly the regime the
// comparison harness targets.
type ClassicalPeriodFinder struct {
	// MaxPeriod bounds the search. Zero selects DefaultMaxPeriod.
	MaxPeriod int
}

// FindPeriod searches for the smallest r with a^r ≡ 1 (mod n) by repeated
// modular multiplication, up to min(MaxPeriod, n). A base that shares a
// factor with n has no multiplicative order, so ErrNoPeriod is returned
// immediately in that case.
func (f *ClassicalPeriodFinder) FindPeriod(ctx context.Context, a, n *big.Int) (*big.Int, error) {
	if factor.GCD(a, n).Cmp(big.NewInt(1)) != 0 {
		return nil, ErrNoPeriod
	}

	limit := big.NewInt(int64(f.MaxPeriod))
	if f.MaxPeriod <= 0 {
		limit.SetInt64(DefaultMaxPeriod)
	}
	if n.Cmp(limit) < 0 {
		limit.Set(n)
	}

	one := big.NewInt(1)
	power := new(big.Int).Mod(a, n)
	for r := big.NewInt(1); r.Cmp(limit) < 0; r.Add(r, one) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if power.Cmp(one) == 0 {
			return new(big.Int).Set(r), nil
		}
		power.Mul(power, a)
		power.Mod(power, n)
	}
	return nil, ErrNoPeriod
}
