package mlkem

import (
	"errors"
	"testing"
)

func TestSampleNTTCoefficientsAreCanonical(t *testing.T) {
	var rho [32]byte
	for i := range rho {
		rho[i] = byte(i)
	}
	a := sampleNTT(rho, 0, 1)
	for i, c := range a {
		if uint16(c) >= q {
			t.Errorf("coefficient %d out of range: %d", i, c)
		}
	}
}

func TestSampleNTTDeterministic(t *testing.T) {
	var rho [32]byte
	a1 := sampleNTT(rho, 3, 5)
	a2 := sampleNTT(rho, 3, 5)
	if a1 != a2 {
		t.Errorf("sampleNTT is not deterministic for identical inputs")
	}
}

func TestSampleNTTVariesWithIndices(t *testing.T) {
	var rho [32]byte
	a := sampleNTT(rho, 0, 0)
	b := sampleNTT(rho, 0, 1)
	if a == b {
		t.Errorf("sampleNTT(rho, 0, 0) == sampleNTT(rho, 0, 1), want distinct output")
	}
}

func TestSamplePolyCBDRejectsBadEta(t *testing.T) {
	_, err := samplePolyCBD(4, make([]byte, 64*4))
	if !errors.Is(err, ErrConfig) {
		t.Errorf("samplePolyCBD(4, ...) error = %v, want ErrConfig", err)
	}
}

func TestSamplePolyCBDRejectsBadLength(t *testing.T) {
	_, err := samplePolyCBD(2, make([]byte, 10))
	if !errors.Is(err, ErrConfig) {
		t.Errorf("samplePolyCBD(2, short) error = %v, want ErrConfig", err)
	}
}

// TestSamplePolyCBD2AllOnesBytesIsZeroPolynomial is a degenerate edge
// case of the Z6 scenario in spec.md §8: when every input bit is 1, the
// "sum of first half" and "sum of second half" terms are equal for
// every coefficient (both equal eta), so CBD must yield the all-zero
// polynomial, never a data-dependent panic or an out-of-range value.
func TestSamplePolyCBD2AllOnesBytesIsZeroPolynomial(t *testing.T) {
	b := make([]byte, 128)
	for i := range b {
		b[i] = 0xFF
	}
	f, err := samplePolyCBD(2, b)
	if err != nil {
		t.Fatalf("samplePolyCBD failed: %v", err)
	}
	if f != (RingElement{}) {
		t.Errorf("samplePolyCBD(2, all-ones) = %v, want the zero polynomial", f)
	}
}

func TestSamplePolyCBDBounds(t *testing.T) {
	var sigma [32]byte
	b := prf(3, sigma, 0)
	f, err := samplePolyCBD(3, b)
	if err != nil {
		t.Fatalf("samplePolyCBD failed: %v", err)
	}
	for _, c := range f {
		// CBD(eta) coefficients lie in [-eta, eta], represented mod q,
		// i.e. in [0, eta] union [q-eta, q-1].
		v := uint16(c)
		if !(v <= 3 || v >= q-3) {
			t.Errorf("coefficient %d outside CBD(3) range", v)
		}
	}
}
