// Package factor provides implementations of classical integer factorization
// algorithms and the arithmetic primitives they share.
// This file contains the number-theoretic helpers: greatest common divisor,
// a bounded primality check, and perfect-power detection.
package factor

import (
	"math/big"
)

// SmallPrimeLimit bounds the number of odd divisors probed by IsPrimeSimple.
// Divisors above this limit are never tested, which keeps the check cheap but
// makes it a heuristic rather than a certificate (see IsPrimeSimple).
const SmallPrimeLimit = 1000

// millerRabinRounds is the number of Miller-Rabin rounds used when a prime
// certificate is required. 20 rounds give an error probability below 4^-20,
// which is more than sufficient for a benchmarking harness.
const millerRabinRounds = 20

var (
	bigOne  = big.NewInt(1)
	bigTwo  = big.NewInt(2)
	bigFour = big.NewInt(4)
)

// GCD computes the greatest common divisor of a and b using the Euclidean
// algorithm. The result is always non-negative, and GCD(a, 0) == |a|.
// Neither operand is modified.
//
// Parameters:
//   - a: The first operand.
//   - b: The second operand.
//
// Returns:
//   - *big.Int: The greatest common divisor of a and b.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x.Mod(x, y)
		x, y = y, x
	}
	return x
}

// IsPrimeSimple reports whether n has no divisor among 2 and the odd numbers
// up to min(sqrt(n), SmallPrimeLimit). It returns false for n < 2.
//
// This is a bounded trial-division check, not a complete primality test: for
// n > SmallPrimeLimit² whose smallest prime factor exceeds SmallPrimeLimit it
// reports true even though n is composite. A false return, however, is always
// definitive (a divisor was found, or n < 2). Callers that need a certificate
// must confirm with IsProbablyPrime.
func IsPrimeSimple(n *big.Int) bool {
	if n.Cmp(bigTwo) < 0 {
		return false
	}
	if n.Cmp(bigTwo) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}

	rem := new(big.Int)
	sq := new(big.Int)
	d := big.NewInt(3)
	limit := big.NewInt(SmallPrimeLimit)
	for d.Cmp(limit) < 0 {
		sq.Mul(d, d)
		if sq.Cmp(n) > 0 {
			break
		}
		if rem.Mod(n, d).Sign() == 0 {
			return false
		}
		d.Add(d, bigTwo)
	}
	return true
}

// IsProbablyPrime reports whether n is prime with high confidence, using the
// Miller-Rabin test from math/big. It is the authoritative check the
// factorizers use before emitting a value as a prime factor.
func IsProbablyPrime(n *big.Int) bool {
	if n.Cmp(bigTwo) < 0 {
		return false
	}
	return n.ProbablyPrime(millerRabinRounds)
}

// IsPower detects whether n is a perfect power, i.e. n = base^exp for some
// base > 1 and exp > 1. Exponents are searched in increasing order from 2 up
// to log2(n), so the smallest exponent match is returned first. Candidate
// roots are verified by exact re-exponentiation; no floating point is
// involved, so there are no rounding false positives.
//
// Parameters:
//   - n: The number to test; values below 4 are never perfect powers.
//
// Returns:
//   - *big.Int: The base, or nil if n is not a perfect power.
//   - int: The exponent, or 0 if n is not a perfect power.
//   - bool: Whether a representation was found.
func IsPower(n *big.Int) (*big.Int, int, bool) {
	if n.Cmp(bigFour) < 0 {
		return nil, 0, false
	}
	maxExp := n.BitLen() // exp > bitlen implies base < 2
	for exp := 2; exp <= maxExp; exp++ {
		root := integerRoot(n, exp)
		if root.Cmp(bigOne) <= 0 {
			break
		}
		check := new(big.Int).Exp(root, big.NewInt(int64(exp)), nil)
		if check.Cmp(n) == 0 {
			return root, exp, true
		}
	}
	return nil, 0, false
}

// integerRoot computes floor(n^(1/exp)) by binary search with exact
// re-exponentiation at every probe.
func integerRoot(n *big.Int, exp int) *big.Int {
	if exp == 2 {
		return new(big.Int).Sqrt(n)
	}
	e := big.NewInt(int64(exp))
	lo := big.NewInt(1)
	// 2^(ceil(bitlen/exp) + 1) is a safe upper bound for the root.
	hi := new(big.Int).Lsh(bigOne, uint(n.BitLen()/exp+2))
	mid := new(big.Int)
	pow := new(big.Int)
	for lo.Cmp(hi) < 0 {
		// mid = (lo + hi + 1) / 2, biased up so the loop converges on floor.
		mid.Add(lo, hi)
		mid.Add(mid, bigOne)
		mid.Rsh(mid, 1)
		pow.Exp(mid, e, nil)
		if pow.Cmp(n) <= 0 {
			lo.Set(mid)
		} else {
			hi.Sub(mid, bigOne)
		}
	}
	return lo
}

// ceilSqrt returns the smallest integer s with s*s >= n.
func ceilSqrt(n *big.Int) *big.Int {
	s := new(big.Int).Sqrt(n)
	sq := new(big.Int).Mul(s, s)
	if sq.Cmp(n) < 0 {
		s.Add(s, bigOne)
	}
	return s
}

// product multiplies all elements of factors together. It returns 1 for an
// empty list.
func product(factors []*big.Int) *big.Int {
	p := big.NewInt(1)
	for _, f := range factors {
		p.Mul(p, f)
	}
	return p
}
