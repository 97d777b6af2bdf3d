package mlkem

import (
	"errors"
	"testing"
)

func TestByteEncodeDecodeRoundTrip12(t *testing.T) {
	var vals [n]uint32
	for i := range vals {
		vals[i] = uint32(i) % q
	}
	encoded := byteEncode(12, vals)
	if len(encoded) != n*12/8 {
		t.Fatalf("byteEncode(12, ...) length = %d, want %d", len(encoded), n*12/8)
	}

	decoded, err := byteDecode(12, encoded)
	if err != nil {
		t.Fatalf("byteDecode failed: %v", err)
	}
	if decoded != vals {
		t.Errorf("byteDecode(byteEncode(vals)) != vals")
	}
}

func TestByteDecodeRejectsWrongLength(t *testing.T) {
	_, err := byteDecode(12, make([]byte, 10))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("byteDecode(short) error = %v, want ErrEncoding", err)
	}
}

func TestEncodePoly12DecodePoly12RoundTrip(t *testing.T) {
	var f RingElement
	for i := range f {
		f[i] = fieldElement(i % q)
	}
	encoded := encodePoly12(f)
	decoded, err := decodePoly12(encoded)
	if err != nil {
		t.Fatalf("decodePoly12 failed: %v", err)
	}
	if decoded != f {
		t.Errorf("decodePoly12(encodePoly12(f)) != f")
	}
}

func TestDecodePoly12RejectsOutOfRangeCoefficient(t *testing.T) {
	var vals [n]uint32
	vals[0] = q // out of range: must be < q
	encoded := byteEncode(12, vals)
	_, err := decodePoly12(encoded)
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("decodePoly12(out-of-range) error = %v, want ErrEncoding", err)
	}
}

func TestEncodeCompressedPolyRoundTrip(t *testing.T) {
	var f RingElement
	for i := range f {
		f[i] = fieldElement(i % q)
	}
	for _, d := range []int{4, 5, 10, 11} {
		encoded := encodeCompressedPoly(d, f)
		decoded, err := decodeCompressedPoly(d, encoded)
		if err != nil {
			t.Fatalf("decodeCompressedPoly(%d) failed: %v", d, err)
		}
		// Lossy: every coefficient must still land back in range.
		for _, c := range decoded {
			if uint16(c) >= q {
				t.Errorf("d=%d: coefficient %d out of range", d, c)
			}
		}
	}
}

func TestEncodeDecodeMessageRoundTrip(t *testing.T) {
	var m [MessageSize]byte
	for i := range m {
		m[i] = byte(i * 37)
	}
	f := encodeMessage(m)
	back := decodeMessage(f)
	if back != m {
		t.Errorf("decodeMessage(encodeMessage(m)) != m")
	}
}
