package mlkem

import "testing"

func TestNTTRoundTrip(t *testing.T) {
	var f RingElement
	for i := range f {
		f[i] = fieldElement(i % q)
	}
	got := inverseNTT(ntt(f))
	if got != f {
		t.Errorf("inverseNTT(ntt(f)) != f")
	}
}

// TestBitRev7KnownValues checks bitRev7Table against the concrete cases
// of a 7-bit reversal: 1 (0000001) reverses to 64 (1000000), 2
// (0000010) to 32 (0100000), and 64 (1000000) back to 1.
func TestBitRev7KnownValues(t *testing.T) {
	if bitRev7Table[1] != 64 {
		t.Errorf("bitRev7Table[1] = %d, want 64", bitRev7Table[1])
	}
	if bitRev7Table[2] != 32 {
		t.Errorf("bitRev7Table[2] = %d, want 32", bitRev7Table[2])
	}
	if bitRev7Table[64] != 1 {
		t.Errorf("bitRev7Table[64] = %d, want 1", bitRev7Table[64])
	}
}

func TestZetaTableFirstEntryIsOne(t *testing.T) {
	if zetaTable[0] != fieldElement(1) {
		t.Errorf("zetaTable[0] = %d, want 1", zetaTable[0])
	}
}

func TestNTTZeroIsFixedPoint(t *testing.T) {
	var zero RingElement
	got := ntt(zero)
	if got != NTTElement(zero) {
		t.Errorf("ntt(zero) != zero")
	}
}

func TestBaseCaseMultiplyDistributesOverAdd(t *testing.T) {
	var a, b, c NTTElement
	for i := range a {
		a[i] = fieldElement(i % q)
		b[i] = fieldElement((2 * i) % q)
		c[i] = fieldElement((3 * i) % q)
	}

	lhs := nttAdd(baseCaseMultiply(a, b), baseCaseMultiply(a, c))
	rhs := baseCaseMultiply(a, nttAdd(b, c))
	if lhs != rhs {
		t.Errorf("baseCaseMultiply does not distribute over nttAdd")
	}
}

func TestDotProductNTTMatchesManualSum(t *testing.T) {
	a := make([]NTTElement, 3)
	b := make([]NTTElement, 3)
	for k := range a {
		for i := range a[k] {
			a[k][i] = fieldElement((i + k) % q)
			b[k][i] = fieldElement((2*i + k) % q)
		}
	}

	var want NTTElement
	for k := range a {
		want = nttAdd(want, baseCaseMultiply(a[k], b[k]))
	}
	got := dotProductNTT(a, b)
	if got != want {
		t.Errorf("dotProductNTT does not match manual accumulation")
	}
}
