package quantum

import "math/big"

// maxExpansionTerms bounds continued fraction expansions. Twenty terms are
// enough to recover any denominator a phase estimator of realistic precision
// can encode.
const maxExpansionTerms = 20

// ContinuedFraction computes the continued fraction expansion of num/den,
// up to maxTerms coefficients. A non-positive maxTerms selects the default
// bound.
func ContinuedFraction(num, den *big.Int, maxTerms int) []*big.Int {
	if maxTerms <= 0 {
		maxTerms = maxExpansionTerms
	}
	n := new(big.Int).Set(num)
	d := new(big.Int).Set(den)
	cf := make([]*big.Int, 0, maxTerms)
	for i := 0; i < maxTerms && d.Sign() != 0; i++ {
		q, r := new(big.Int).QuoRem(n, d, new(big.Int))
		cf = append(cf, q)
		n, d = d, r
	}
	return cf
}

// Convergent is one rational approximation from a continued fraction.
type Convergent struct {
	Num *big.Int
	Den *big.Int
}

// Convergents computes the successive rational approximations of a
// continued fraction expansion, in order of increasing accuracy.
func Convergents(cf []*big.Int) []Convergent {
	out := make([]Convergent, 0, len(cf))
	for i, c := range cf {
		switch i {
		case 0:
			out = append(out, Convergent{Num: new(big.Int).Set(c), Den: big.NewInt(1)})
		case 1:
			num := new(big.Int).Mul(c, cf[0])
			num.Add(num, big.NewInt(1))
			out = append(out, Convergent{Num: num, Den: new(big.Int).Set(c)})
		default:
			num := new(big.Int).Mul(c, out[i-1].Num)
			num.Add(num, out[i-2].Num)
			den := new(big.Int).Mul(c, out[i-1].Den)
			den.Add(den, out[i-2].Den)
			out = append(out, Convergent{Num: num, Den: den})
		}
	}
	return out
}

// PeriodFromPhase recovers the multiplicative order of a modulo n from a
// phase estimate num/den, as produced by a phase estimation subroutine. The
// candidate periods are the denominators of the phase's convergents; each
// one below n is verified by modular exponentiation. Returns ErrNoPeriod
// when no convergent denominator is the order.
func PeriodFromPhase(num, den, a, n *big.Int) (*big.Int, error) {
	if num.Sign() == 0 || den.Sign() == 0 {
		return nil, ErrNoPeriod
	}
	one := big.NewInt(1)
	for _, c := range Convergents(ContinuedFraction(num, den, maxExpansionTerms)) {
		if c.Den.Sign() <= 0 || c.Den.Cmp(n) >= 0 {
			continue
		}
		if new(big.Int).Exp(a, c.Den, n).Cmp(one) == 0 {
			return new(big.Int).Set(c.Den), nil
		}
	}
	return nil, ErrNoPeriod
}
