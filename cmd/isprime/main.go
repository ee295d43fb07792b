// Command isprime checks whether a single decimal integer is prime,
// via the cyclotomic Fibonacci pseudoprime certificate. It mirrors
// original_source/isprimemain.c: one mandatory argument, an optional
// -v for per-round progress.
package main

import (
	"flag"
	"fmt"
	"math/big"
	"os"

	"cycloprime/primality"
)

func usage() {
	fmt.Fprintln(os.Stderr, `usage: isprime [-v] <number>

Check whether <number> (decimal) is prime.`)
	os.Exit(1)
}

func main() {
	verbose := flag.Bool("v", false, "verbose: log per-l progress")
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
	}

	N, ok := new(big.Int).SetString(flag.Arg(0), 10)
	if !ok {
		fmt.Fprintf(os.Stderr, "isprime: %q is not a valid decimal integer\n", flag.Arg(0))
		os.Exit(1)
	}

	cert := primality.NewCertificateLog()
	verdict, err := primality.IsPrime(N, primality.Options{
		Verbose:     *verbose,
		Log:         os.Stderr,
		Certificate: cert,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "isprime: %v\n", err)
		os.Exit(1)
	}

	switch verdict {
	case primality.Prime:
		fmt.Printf("%s is prime (certificate digest %x)\n", N, cert.Digest())
	default:
		fmt.Printf("%s is not prime.\n", N)
	}
}
