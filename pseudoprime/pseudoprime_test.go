package pseudoprime

import (
	"math/big"
	"testing"

	"cycloprime/primetables"
)

func smallTables(t *testing.T) *primetables.Tables {
	t.Helper()
	tab, err := primetables.New(50)
	if err != nil {
		t.Fatalf("primetables.New: %v", err)
	}
	return tab
}

func TestRamifiesNineAtThree(t *testing.T) {
	tab := smallTables(t)
	ramifies, err := Ramifies(tab, big.NewInt(9), 3)
	if err != nil {
		t.Fatalf("Ramifies: %v", err)
	}
	if !ramifies {
		t.Fatal("9 should ramify at l=3 (disc(Z[zeta_3])=-3 shares a factor with 9)")
	}
}

func TestRamifiesElevenAtThree(t *testing.T) {
	tab := smallTables(t)
	ramifies, err := Ramifies(tab, big.NewInt(11), 3)
	if err != nil {
		t.Fatalf("Ramifies: %v", err)
	}
	if ramifies {
		t.Fatal("11 should not ramify at l=3")
	}
}

func TestFiboPseudoprimeElevenAtThree(t *testing.T) {
	tab := smallTables(t)
	ok, f, err := FiboPseudoprime(tab, big.NewInt(11), 3)
	if err != nil {
		t.Fatalf("FiboPseudoprime: %v", err)
	}
	if !ok {
		t.Fatal("FiboPseudoprime(11, 3) should be true: 11 is prime")
	}
	if f == 0 {
		t.Fatal("FiboPseudoprime should return the order-oracle witness f alongside the verdict")
	}
}

func TestOrderOracleDividesPhi(t *testing.T) {
	tab := smallTables(t)
	for _, l := range []uint{3, 5, 7, 11, 13} {
		for _, n := range []int64{11, 13, 17, 19, 23, 29} {
			N := big.NewInt(n)
			if N.Int64()%int64(l) == 0 {
				continue
			}
			f, err := OrderOracle(tab, N, l)
			if err != nil {
				t.Fatalf("OrderOracle(%d, %d): %v", n, l, err)
			}
			if (l-1)%f != 0 {
				t.Fatalf("OrderOracle(%d, %d) = %d does not divide l-1=%d", n, l, f, l-1)
			}
			lBig := big.NewInt(int64(l))
			residue := new(big.Int).Exp(N, new(big.Int).SetUint64(uint64(f)), lBig)
			if residue.Cmp(big.NewInt(1)) != 0 {
				t.Fatalf("OrderOracle(%d, %d) = %d, but N^f mod l = %s, not 1", n, l, f, residue)
			}
		}
	}
}

func TestOrderOracleReturnsSmallestMatch(t *testing.T) {
	tab := smallTables(t)
	// 16 mod 17: 16 = -1, so 16^1 != 1, 16^2 = 1 (mod 17); the smallest
	// matching divisor of phi(17)=16 is 2, not 16.
	f, err := OrderOracle(tab, big.NewInt(16), 17)
	if err != nil {
		t.Fatalf("OrderOracle: %v", err)
	}
	if f != 2 {
		t.Fatalf("OrderOracle(16, 17) = %d, want the smallest matching divisor 2", f)
	}
}

func TestUnknownPrimeErrors(t *testing.T) {
	tab := smallTables(t)
	if _, err := Ramifies(tab, big.NewInt(97), 97); err == nil {
		t.Fatal("Ramifies with l above the table ceiling should fail")
	}
	if _, err := OrderOracle(tab, big.NewInt(97), 97); err == nil {
		t.Fatal("OrderOracle with l above the table ceiling should fail")
	}
}
