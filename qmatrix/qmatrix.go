// Package qmatrix implements the symmetric 2x2 "Q-matrix"
//
//	Q = [ zeta  1 ]
//	    [ 1     0 ]
//
// over cycring.CycInt, whose k-th power encodes cyclotomic Fibonacci
// numbers in its entries. Multiplication is specialized to exploit the
// matrix's symmetry (q12 == q21 after every public operation) and the
// recurrence q11 = zeta*q12 + q22, which together save four of the eight
// ring multiplications a naive 2x2 product would need.
package qmatrix

import (
	"errors"
	"math/big"
	"os"

	"cycloprime/cycring"
)

// ErrSizeMismatch is returned by any operation whose operands must
// share a ring size but do not.
var ErrSizeMismatch = errors.New("qmatrix: size mismatch")

// QMatrix is a 2x2 symmetric matrix of cycring.CycInt values, all of
// the same ring size.
type QMatrix struct {
	Size             int
	Q11, Q12, Q21, Q22 *cycring.CycInt
}

// NewGenerator returns the generator Q-matrix of the given ring size:
// q11 = zeta, q12 = q21 = 1, q22 = 0.
func NewGenerator(size int) (*QMatrix, error) {
	m, err := newZeroed(size)
	if err != nil {
		return nil, err
	}
	one := big.NewInt(1)
	if err := m.Q11.SetCoord(1, one); err != nil {
		return nil, err
	}
	if err := m.Q12.SetCoord(0, one); err != nil {
		return nil, err
	}
	if err := m.Q21.SetCoord(0, one); err != nil {
		return nil, err
	}
	return m, nil
}

// NewIdentity returns the identity Q-matrix of the given ring size:
// q11 = q22 = 1, q12 = q21 = 0.
func NewIdentity(size int) (*QMatrix, error) {
	m, err := newZeroed(size)
	if err != nil {
		return nil, err
	}
	if err := m.setIdentityCoords(); err != nil {
		return nil, err
	}
	return m, nil
}

func newZeroed(size int) (*QMatrix, error) {
	entries := make([]*cycring.CycInt, 4)
	for i := range entries {
		c, err := cycring.New(size)
		if err != nil {
			return nil, err
		}
		entries[i] = c
	}
	return &QMatrix{Size: size, Q11: entries[0], Q12: entries[1], Q21: entries[2], Q22: entries[3]}, nil
}

func (m *QMatrix) setIdentityCoords() error {
	m.Q11.Zero()
	m.Q12.Zero()
	m.Q21.Zero()
	m.Q22.Zero()
	one := big.NewInt(1)
	if err := m.Q11.SetCoord(0, one); err != nil {
		return err
	}
	if err := m.Q22.SetCoord(0, one); err != nil {
		return err
	}
	return nil
}

// SetIdentity resets m to the identity matrix in place.
func (m *QMatrix) SetIdentity() error {
	return m.setIdentityCoords()
}

// CopyFrom deep-copies src's four entries into m. Both matrices must
// share the same ring size.
func (m *QMatrix) CopyFrom(src *QMatrix) error {
	if m.Size != src.Size {
		return ErrSizeMismatch
	}
	for _, pair := range [][2]*cycring.CycInt{
		{m.Q11, src.Q11}, {m.Q12, src.Q12}, {m.Q21, src.Q21}, {m.Q22, src.Q22},
	} {
		if err := pair[0].CopyFrom(pair[1]); err != nil {
			return err
		}
	}
	return nil
}

// Mult writes the product m1*m2 (mod N) into m, exploiting the
// symmetric structure of both operands:
//
//	r12 = m1.q11*m2.q12 + m1.q12*m2.q22   (mod N)
//	r22 = m1.q21*m2.q12 + m1.q22*m2.q22   (mod N)
//	r21 = r12
//	r11 = zeta*r12 + r22                  (mod N)
//
// so only the four ring multiplications behind q12 and q22 are performed,
// and q21/q11 are derived without further multiplication. m may alias m1 or
// m2; the product is always built into local scratch first.
func (m *QMatrix) Mult(m1, m2 *QMatrix, N *big.Int) error {
	size := m.Size
	if m1.Size != size || m2.Size != size {
		return ErrSizeMismatch
	}

	r12, err := cycring.New(size)
	if err != nil {
		return err
	}
	r22, err := cycring.New(size)
	if err != nil {
		return err
	}
	tmp, err := cycring.New(size)
	if err != nil {
		return err
	}

	if err := r12.Mult(m1.Q11, m2.Q12, N); err != nil {
		return err
	}
	if err := tmp.Mult(m1.Q12, m2.Q22, N); err != nil {
		return err
	}
	if err := r12.Add(r12, tmp, N); err != nil {
		return err
	}

	if err := r22.Mult(m1.Q21, m2.Q12, N); err != nil {
		return err
	}
	if err := tmp.Mult(m1.Q22, m2.Q22, N); err != nil {
		return err
	}
	if err := r22.Add(r22, tmp, N); err != nil {
		return err
	}

	r11, err := cycring.New(size)
	if err != nil {
		return err
	}
	if err := r11.MultByZeta(r12); err != nil {
		return err
	}
	if err := r11.Add(r11, r22, N); err != nil {
		return err
	}

	if err := m.Q12.CopyFrom(r12); err != nil {
		return err
	}
	if err := m.Q21.CopyFrom(r12); err != nil {
		return err
	}
	if err := m.Q22.CopyFrom(r22); err != nil {
		return err
	}
	if err := m.Q11.CopyFrom(r11); err != nil {
		return err
	}
	return nil
}

// Pow computes base^k (mod N) into a freshly allocated QMatrix via
// binary exponentiation. Pow(base, 0, N) is the identity matrix for any
// valid base, even the generator.
func Pow(base *QMatrix, k *big.Int, N *big.Int) (*QMatrix, error) {
	acc, err := NewIdentity(base.Size)
	if err != nil {
		return nil, err
	}
	if k.Sign() == 0 {
		return acc, nil
	}

	b, err := newZeroed(base.Size)
	if err != nil {
		return nil, err
	}
	if err := b.CopyFrom(base); err != nil {
		return nil, err
	}

	e := new(big.Int).Set(k)
	two := big.NewInt(2)
	rem := new(big.Int)

	dbg(os.Stderr, "[qmatrix] Pow start size=%d bitlen(k)=%d\n", base.Size, k.BitLen())
	for e.Sign() > 0 {
		rem.Mod(e, two)
		if rem.Sign() != 0 {
			if err := acc.Mult(acc, b, N); err != nil {
				return nil, err
			}
		}
		if err := b.Mult(b, b, N); err != nil {
			return nil, err
		}
		e.Rsh(e, 1)
		dbg(os.Stderr, "[qmatrix] Pow bits remaining=%d\n", e.BitLen())
	}

	return acc, nil
}
