// Package pseudoprime implements the cyclotomic Fibonacci pseudoprime
// round: ramification filtering, the order oracle, and the round test
// itself. A single round decides, for a candidate N and a parameter l,
// whether N passes the Fibonacci-recurrence test in Z[zeta_l]/(N); the
// primality engine in package primality chains many rounds into a
// certificate.
package pseudoprime

import (
	"fmt"
	"math/big"
	"os"

	"cycloprime/primetables"
	"cycloprime/qmatrix"
)

// Ramifies reports whether N ramifies in Z[zeta_l], i.e. whether
// gcd(N, disc(Z[zeta_l])) > 1. A true result means l must be skipped by
// the primality engine; it says nothing about whether N is composite.
func Ramifies(tab *primetables.Tables, N *big.Int, l uint) (bool, error) {
	disc, err := tab.Discriminant(l)
	if err != nil {
		return false, fmt.Errorf("pseudoprime.Ramifies: %w", err)
	}
	g := new(big.Int).GCD(nil, nil, N, disc)
	ramifies := g.Cmp(big.NewInt(1)) > 0
	dbg(os.Stderr, "[pseudoprime] Ramifies l=%d gcd=%s ramifies=%v\n", l, g.String(), ramifies)
	return ramifies, nil
}

// OrderOracle returns the smallest positive f <= l-1 such that
// N^f === 1 (mod l). Since the multiplicative group mod l is cyclic of
// order l-1, f always divides l-1; the search consults
// l's entry of tab.PhiDivisors in ascending order and returns the first divisor
// that satisfies the congruence, defaulting to l-1 (always a valid
// witness by Fermat's little theorem, given l does not divide N).
//
// This is the smallest matching divisor, not the largest: the
// reference C implementation keeps iterating past the first match and
// returns the last (hence largest) divisor it sees, which is not the
// order of N mod l and only makes each round more expensive, since
// FiboPseudoprime raises Q to N^(2f). See DESIGN.md.
func OrderOracle(tab *primetables.Tables, N *big.Int, l uint) (uint, error) {
	idx, err := tab.Index(l)
	if err != nil {
		return 0, fmt.Errorf("pseudoprime.OrderOracle: %w", err)
	}
	lBig := new(big.Int).SetUint64(uint64(l))
	for _, d := range tab.PhiDivisors[idx] {
		exp := new(big.Int).SetUint64(uint64(d))
		residue := new(big.Int).Exp(N, exp, lBig)
		if residue.Cmp(big.NewInt(1)) == 0 {
			dbg(os.Stderr, "[pseudoprime] OrderOracle l=%d f=%d\n", l, d)
			return d, nil
		}
	}
	// unreachable when l is prime and l does not divide N, since l-1 is
	// always the last (and a valid) divisor in the ascending list.
	dbg(os.Stderr, "[pseudoprime] OrderOracle l=%d f=%d (fell through to l-1)\n", l, l-1)
	return l - 1, nil
}

// FiboPseudoprime runs one round of the cyclotomic Fibonacci
// pseudoprime test for candidate N and parameter l: it reports true
// ("N passes this round") iff the (2,2) entry of Q^(N^2f) mod N is the
// zero element of the cyclotomic ring, where f = OrderOracle(N, l). It
// also returns f itself, since the primality engine's certificate
// transcript records (l, f, bound) per accepted round.
//
// Precondition: N does not ramify at l (Ramifies(tab, N, l) is false).
// The caller is responsible for checking this, exactly as in the
// reference implementation.
func FiboPseudoprime(tab *primetables.Tables, N *big.Int, l uint) (bool, uint, error) {
	f, err := OrderOracle(tab, N, l)
	if err != nil {
		return false, 0, fmt.Errorf("pseudoprime.FiboPseudoprime: %w", err)
	}
	exp := new(big.Int).SetUint64(2 * uint64(f))
	nExp := new(big.Int).Exp(N, exp, nil)

	gen, err := qmatrix.NewGenerator(int(l))
	if err != nil {
		return false, f, fmt.Errorf("pseudoprime.FiboPseudoprime: %w", err)
	}
	powered, err := qmatrix.Pow(gen, nExp, N)
	if err != nil {
		return false, f, fmt.Errorf("pseudoprime.FiboPseudoprime: %w", err)
	}
	ok := powered.Q22.IsZero()
	dbg(os.Stderr, "[pseudoprime] FiboPseudoprime l=%d f=%d ok=%v\n", l, f, ok)
	return ok, f, nil
}
