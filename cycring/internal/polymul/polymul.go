// Package polymul provides the dense polynomial convolution used as a
// subroutine by cycring.Mult. It stands in for the spec's external
// dense-polynomial-multiplication collaborator: a schoolbook convolution
// is all cycring ever needs (ring sizes are bounded by the small-prime
// ceiling, not by N), so no FFT-backed library from the pack is pulled in
// for it — see DESIGN.md.
package polymul

import "math/big"

// Convolve returns the length len(a)+len(b)-1 convolution of a and b,
// i.e. r[k] = sum_{i+j=k} a[i]*b[j]. Neither a nor b is mutated, and the
// result shares no storage with either input.
func Convolve(a, b []*big.Int) []*big.Int {
	r := make([]*big.Int, len(a)+len(b)-1)
	for k := range r {
		r[k] = new(big.Int)
	}
	term := new(big.Int)
	for i, ai := range a {
		if ai.Sign() == 0 {
			continue
		}
		for j, bj := range b {
			if bj.Sign() == 0 {
				continue
			}
			term.Mul(ai, bj)
			r[i+j].Add(r[i+j], term)
		}
	}
	return r
}
