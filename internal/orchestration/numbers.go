package orchestration

import "math/big"

// testSuiteNumbers is the predefined benchmark suite: small composites,
// two-prime products, larger semiprimes, smooth numbers, and close-prime
// products that stress Fermat's method the least and Pollard's rho the most.
var testSuiteNumbers = []int64{
	15,   // 3 × 5
	21,   // 3 × 7
	35,   // 5 × 7
	77,   // 7 × 11
	143,  // 11 × 13
	221,  // 13 × 17
	1147, // 31 × 37
	2021, // 43 × 47
	4087, // 61 × 67
	256,  // 2^8
	1000, // 2^3 × 5^3
	899,  // 29 × 31
	4757, // 67 × 71
}

// demoNumbers is the default batch used when no numbers are given.
var demoNumbers = []int64{15, 21, 77, 143, 221}

// TestSuiteNumbers returns a fresh copy of the predefined benchmark suite.
func TestSuiteNumbers() []*big.Int {
	return toBig(testSuiteNumbers)
}

// DefaultDemoNumbers returns a fresh copy of the default demonstration
// batch.
func DefaultDemoNumbers() []*big.Int {
	return toBig(demoNumbers)
}

func toBig(values []int64) []*big.Int {
	out := make([]*big.Int, len(values))
	for i, v := range values {
		out[i] = big.NewInt(v)
	}
	return out
}
