package qmatrix

import (
	"math/big"
	"testing"

	"cycloprime/cycring"
)

func checkSymmetric(t *testing.T, m *QMatrix) {
	t.Helper()
	eq, err := m.Q12.Equals(m.Q21)
	if err != nil {
		t.Fatalf("Equals: %v", err)
	}
	if !eq {
		t.Fatalf("q12 != q21: %v vs %v", m.Q12.Coords, m.Q21.Coords)
	}
}

func checkRecurrence(t *testing.T, m *QMatrix, N *big.Int) {
	t.Helper()
	want, err := cycring.New(m.Size)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := want.MultByZeta(m.Q12); err != nil {
		t.Fatalf("MultByZeta: %v", err)
	}
	if err := want.Add(want, m.Q22, N); err != nil {
		t.Fatalf("Add: %v", err)
	}
	eq, err := want.Equals(m.Q11)
	if err != nil {
		t.Fatalf("Equals: %v", err)
	}
	if !eq {
		t.Fatalf("q11 != zeta*q12+q22: got %v want %v", m.Q11.Coords, want.Coords)
	}
}

func TestGeneratorShape(t *testing.T) {
	m, err := NewGenerator(5)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	checkSymmetric(t, m)
	if !m.Q22.IsZero() {
		t.Fatal("generator q22 should be zero")
	}
}

func TestMultSymmetryAndRecurrence(t *testing.T) {
	N := big.NewInt(1009)
	g, err := NewGenerator(7)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	sq, err := newZeroed(7)
	if err != nil {
		t.Fatalf("newZeroed: %v", err)
	}
	if err := sq.Mult(g, g, N); err != nil {
		t.Fatalf("Mult: %v", err)
	}
	checkSymmetric(t, sq)
	checkRecurrence(t, sq, N)
}

func TestPowZeroIsIdentity(t *testing.T) {
	g, err := NewGenerator(5)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	N := big.NewInt(97)
	p, err := Pow(g, big.NewInt(0), N)
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	id, err := NewIdentity(5)
	if err != nil {
		t.Fatalf("NewIdentity: %v", err)
	}
	for _, pair := range [][2]*cycring.CycInt{{p.Q11, id.Q11}, {p.Q12, id.Q12}, {p.Q21, id.Q21}, {p.Q22, id.Q22}} {
		eq, err := pair[0].Equals(pair[1])
		if err != nil || !eq {
			t.Fatalf("Pow(M,0) != identity: %v", p)
		}
	}
}

func TestPowOneIsM(t *testing.T) {
	g, err := NewGenerator(5)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	N := big.NewInt(97)
	p, err := Pow(g, big.NewInt(1), N)
	if err != nil {
		t.Fatalf("Pow: %v", err)
	}
	for _, pair := range [][2]*cycring.CycInt{{p.Q11, g.Q11}, {p.Q12, g.Q12}, {p.Q21, g.Q21}, {p.Q22, g.Q22}} {
		eq, err := pair[0].Equals(pair[1])
		if err != nil || !eq {
			t.Fatalf("Pow(M,1) != M: %v", p)
		}
	}
}

func TestPowSemigroupLaw(t *testing.T) {
	N := big.NewInt(10007)
	g, err := NewGenerator(7)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	a := big.NewInt(13)
	b := big.NewInt(21)
	ab := new(big.Int).Add(a, b)

	pa, err := Pow(g, a, N)
	if err != nil {
		t.Fatal(err)
	}
	pb, err := Pow(g, b, N)
	if err != nil {
		t.Fatal(err)
	}
	pab, err := Pow(g, ab, N)
	if err != nil {
		t.Fatal(err)
	}

	prod, err := newZeroed(7)
	if err != nil {
		t.Fatal(err)
	}
	if err := prod.Mult(pa, pb, N); err != nil {
		t.Fatal(err)
	}

	for _, pair := range [][2]*cycring.CycInt{{prod.Q11, pab.Q11}, {prod.Q12, pab.Q12}, {prod.Q21, pab.Q21}, {prod.Q22, pab.Q22}} {
		eq, err := pair[0].Equals(pair[1])
		if err != nil {
			t.Fatal(err)
		}
		if !eq {
			t.Fatalf("Pow(a)*Pow(b) != Pow(a+b): %v vs %v", prod, pab)
		}
	}
}

func TestSquaringMatchesPowTwo(t *testing.T) {
	N := big.NewInt(541)
	g, err := NewGenerator(5)
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	sq, err := newZeroed(5)
	if err != nil {
		t.Fatal(err)
	}
	if err := sq.Mult(g, g, N); err != nil {
		t.Fatal(err)
	}
	p2, err := Pow(g, big.NewInt(2), N)
	if err != nil {
		t.Fatal(err)
	}
	for _, pair := range [][2]*cycring.CycInt{{sq.Q11, p2.Q11}, {sq.Q12, p2.Q12}, {sq.Q21, p2.Q21}, {sq.Q22, p2.Q22}} {
		eq, err := pair[0].Equals(pair[1])
		if err != nil || !eq {
			t.Fatalf("mult(M,M) != Pow(M,2): %v vs %v", sq, p2)
		}
	}
}

func TestMultSizeMismatch(t *testing.T) {
	a, err := NewGenerator(3)
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewGenerator(5)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Mult(a, b, big.NewInt(7)); err == nil {
		t.Fatal("Mult across mismatched sizes should fail")
	}
}
