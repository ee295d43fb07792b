// Package primality implements the top-level decision loop: it chains
// cyclotomic Fibonacci pseudoprime rounds over small odd primes
// l=3,5,7,... into a Pocklington-style certificate, accepting N as
// prime once the product of successfully-tested l's exceeds N.
package primality

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/big"

	"cycloprime/primetables"
	"cycloprime/pseudoprime"
)

// ErrTableExhausted is returned when the small-prime table runs out
// before the running bound exceeds N. The reference C implementation
// silently returns "prime" in this situation; this package treats it as
// an error instead, per the resolved Open Question in spec.md §9.
var ErrTableExhausted = errors.New("primality: small prime table exhausted before certificate bound exceeded N")

// Verdict is the outcome of a primality decision.
type Verdict int

const (
	// Composite means the engine found a round that N fails, or a
	// trivial small-case check determined N is not prime.
	Composite Verdict = iota
	// Prime means the accumulated certificate bound exceeded N.
	Prime
)

// String implements fmt.Stringer.
func (v Verdict) String() string {
	switch v {
	case Prime:
		return "prime"
	case Composite:
		return "composite"
	default:
		return "unknown"
	}
}

// Options configures a single IsPrime call.
type Options struct {
	// Verbose, when true, logs per-l progress lines: l, whether N
	// ramified, and the updated running bound.
	Verbose bool
	// Log receives verbose output. Defaults to os.Stderr when nil and
	// Verbose is true.
	Log io.Writer
	// Tables supplies the small-prime data the engine consults. A nil
	// value uses primetables.Default().
	Tables *primetables.Tables
	// Certificate, when non-nil, records the accepted-round transcript
	// of a successful run for later fingerprinting. See CertificateLog.
	Certificate *CertificateLog
}

// IsPrime decides whether N is prime.
func IsPrime(N *big.Int, opts Options) (Verdict, error) {
	if v, handled := trivialCase(N); handled {
		return v, nil
	}

	tab := opts.Tables
	if tab == nil {
		var err error
		tab, err = primetables.Default()
		if err != nil {
			return Composite, fmt.Errorf("primality.IsPrime: %w", err)
		}
	}

	var logger *log.Logger
	if opts.Verbose {
		w := opts.Log
		if w == nil {
			w = defaultLogWriter()
		}
		logger = log.New(w, "", 0)
	}

	bound := big.NewInt(1)
	for i := 0; i < len(tab.Primes) && bound.Cmp(N) <= 0; i++ {
		l := tab.Primes[i]
		lBig := new(big.Int).SetUint64(uint64(l))

		if N.Cmp(lBig) == 0 {
			return Prime, nil
		}

		ramified, err := pseudoprime.Ramifies(tab, N, l)
		if err != nil {
			return Composite, fmt.Errorf("primality.IsPrime: %w", err)
		}
		if ramified {
			if logger != nil {
				logger.Printf("l=%d: N ramifies, skipping", l)
			}
			continue
		}

		ok, f, err := pseudoprime.FiboPseudoprime(tab, N, l)
		if err != nil {
			return Composite, fmt.Errorf("primality.IsPrime: %w", err)
		}
		if !ok {
			if logger != nil {
				logger.Printf("l=%d: failed the Fibonacci pseudoprime round", l)
			}
			return Composite, nil
		}

		bound.Mul(bound, lBig)
		if logger != nil {
			logger.Printf("l=%d: passed (f=%d), bound=%s", l, f, bound.String())
		}
		if opts.Certificate != nil {
			opts.Certificate.record(l, f, bound)
		}
	}

	if bound.Cmp(N) > 0 {
		return Prime, nil
	}
	return Composite, fmt.Errorf("primality.IsPrime(N=%s): %w", N.String(), ErrTableExhausted)
}

// trivialCase handles the shortcuts spec.md lists ahead of the main
// loop: 0 and 1 are not prime, 2 and 5 are prime, and any even N > 2 is
// composite without entering the loop.
func trivialCase(N *big.Int) (Verdict, bool) {
	switch {
	case N.Sign() <= 0:
		return Composite, true
	case N.Cmp(big.NewInt(1)) == 0:
		return Composite, true
	case N.Cmp(big.NewInt(2)) == 0:
		return Prime, true
	case N.Cmp(big.NewInt(5)) == 0:
		return Prime, true
	case N.Bit(0) == 0:
		// N is even and > 2 (N=2 was handled above), so composite.
		return Composite, true
	}
	return Composite, false
}
