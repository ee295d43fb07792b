// Package primetables holds the static data consulted by the
// ramification test and the primality engine: the ascending list of
// odd primes up to a chosen ceiling, each prime's index, the divisors
// of phi(l)=l-1 used by the order oracle, and the discriminant of
// Z[zeta_l] used by the ramification test.
//
// Unlike the original C implementation (which carries these as literal
// arrays generated offline), values here are computed once at
// construction: a sieve for the primes, trial division for the
// phi-divisors, and the closed-form discriminant of a prime cyclotomic
// field. Reproducing the literal tables verbatim was judged out of
// scope for the core (see spec.md's description of Tables as an
// external collaborator); computing the same data is not.
package primetables

import (
	"errors"
	"fmt"
	"math/big"
	"os"
	"sync"
)

// ErrUnknownPrime is returned when a prime l is not present in a
// Tables instance (either because l is even, not prime, or above the
// table's ceiling).
var ErrUnknownPrime = errors.New("primetables: prime not present in table")

// DefaultCeiling is large enough that the running bound in the
// primality engine exceeds any candidate N below 2^512 well before the
// table is exhausted, for the typical run.
const DefaultCeiling = 1009

// Tables is an immutable, read-only-after-construction set of small odd
// primes and the data derived from them. A single Tables value is safe
// for concurrent use by any number of simultaneous callers.
type Tables struct {
	// Primes holds the odd primes in increasing order: Primes[0]=3,
	// Primes[1]=5, and so on.
	Primes []uint

	// PrimeToIndex maps a prime value back to its slot in Primes.
	PrimeToIndex map[uint]int

	// PhiDivisors[i] is the ascending list of divisors of
	// phi(Primes[i]) = Primes[i]-1, excluding 1; its last entry is
	// always Primes[i]-1 itself.
	PhiDivisors [][]uint

	discStrings []string
	discCache   []*big.Int
	discOnce    []sync.Once
}

// New builds a Tables instance covering every odd prime l with
// 3 <= l <= ceiling.
func New(ceiling uint) (*Tables, error) {
	if ceiling < 3 {
		return nil, fmt.Errorf("primetables.New(%d): ceiling must be >= 3", ceiling)
	}
	primes := sieveOddPrimes(ceiling)
	dbg(os.Stderr, "[primetables] New ceiling=%d primes=%d\n", ceiling, len(primes))
	idx := make(map[uint]int, len(primes))
	phi := make([][]uint, len(primes))
	discs := make([]string, len(primes))
	for i, l := range primes {
		idx[l] = i
		phi[i] = divisorsExcludingOne(l - 1)
		discs[i] = cyclotomicDiscriminant(l).String()
	}
	return &Tables{
		Primes:       primes,
		PrimeToIndex: idx,
		PhiDivisors:  phi,
		discStrings:  discs,
		discCache:    make([]*big.Int, len(primes)),
		discOnce:     make([]sync.Once, len(primes)),
	}, nil
}

var (
	defaultOnce  sync.Once
	defaultTab   *Tables
	defaultError error
)

// Default returns the shared, lazily-built Tables covering primes up to
// DefaultCeiling.
func Default() (*Tables, error) {
	defaultOnce.Do(func() {
		defaultTab, defaultError = New(DefaultCeiling)
	})
	return defaultTab, defaultError
}

// Index returns the slot of prime l, or ErrUnknownPrime if l is not in
// the table.
func (t *Tables) Index(l uint) (int, error) {
	i, ok := t.PrimeToIndex[l]
	if !ok {
		return 0, fmt.Errorf("primetables.Index(%d): %w", l, ErrUnknownPrime)
	}
	return i, nil
}

// Discriminant returns the discriminant of Z[zeta_l] as a *big.Int,
// parsing and caching the table's decimal-string representation on
// first use.
func (t *Tables) Discriminant(l uint) (*big.Int, error) {
	i, err := t.Index(l)
	if err != nil {
		return nil, err
	}
	t.discOnce[i].Do(func() {
		v, ok := new(big.Int).SetString(t.discStrings[i], 10)
		if !ok {
			panic(fmt.Sprintf("primetables: malformed discriminant string for l=%d", l))
		}
		t.discCache[i] = v
	})
	return new(big.Int).Set(t.discCache[i]), nil
}

func sieveOddPrimes(ceiling uint) []uint {
	composite := make([]bool, ceiling+1)
	var primes []uint
	for n := uint(2); n <= ceiling; n++ {
		if composite[n] {
			continue
		}
		if n != 2 {
			primes = append(primes, n)
		}
		for m := n * n; m <= ceiling && m >= n; m += n {
			composite[m] = true
		}
	}
	return primes
}

// divisorsExcludingOne returns the ascending list of divisors of n,
// excluding 1 (n itself is always included).
func divisorsExcludingOne(n uint) []uint {
	var divs []uint
	for d := uint(2); d*d <= n; d++ {
		if n%d == 0 {
			divs = append(divs, d)
			if other := n / d; other != d {
				divs = append(divs, other)
			}
		}
	}
	divs = append(divs, n)
	// insertion-sort: the candidate lists here are tiny (a handful of
	// divisors for the primes this table carries).
	for i := 1; i < len(divs); i++ {
		for j := i; j > 0 && divs[j-1] > divs[j]; j-- {
			divs[j-1], divs[j] = divs[j], divs[j-1]
		}
	}
	return divs
}

// cyclotomicDiscriminant returns disc(Z[zeta_l]) = (-1)^((l-1)/2) * l^(l-2)
// for an odd prime l.
func cyclotomicDiscriminant(l uint) *big.Int {
	d := new(big.Int).Exp(big.NewInt(int64(l)), big.NewInt(int64(l-2)), nil)
	if ((l-1)/2)%2 == 1 {
		d.Neg(d)
	}
	return d
}
