// Command primelist prints the odd primes in [min, max), using the
// cyclotomic certificate engine. It mirrors original_source/primelist.c,
// which calls the project's own is_prime(N) in its scan loop rather
// than GMP's probable-prime predicate (that predicate is used
// elsewhere, in cyclopseudo.c, only to pre-filter before a pseudoprime
// scan).
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"cycloprime/primality"
)

const (
	defaultMin = 3
	defaultMax = 1000000
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: primelist [min [max]]

Print all odd primes in [min, max). min defaults to 3, max to 1000000.`)
	os.Exit(1)
}

func main() {
	flag.Parse()

	min := int64(defaultMin)
	max := int64(defaultMax)
	switch flag.NArg() {
	case 0:
	case 1:
		var ok bool
		min, ok = parseArg(flag.Arg(0))
		if !ok {
			usage()
		}
	case 2:
		var ok bool
		min, ok = parseArg(flag.Arg(0))
		if !ok {
			usage()
		}
		max, ok = parseArg(flag.Arg(1))
		if !ok {
			usage()
		}
	default:
		usage()
	}

	if min%2 == 0 {
		min++
	}
	for n := min; n < max; n += 2 {
		N := big.NewInt(n)
		verdict, err := primality.IsPrime(N, primality.Options{})
		if err != nil {
			fmt.Fprintf(os.Stderr, "primelist: %d: %v\n", n, err)
			os.Exit(1)
		}
		if verdict == primality.Prime {
			fmt.Println(n)
		}
	}
}

func parseArg(s string) (int64, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return 0, false
	}
	return v.Int64(), true
}
