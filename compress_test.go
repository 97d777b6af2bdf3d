package mlkem

import "testing"

func TestCompressDecompressZero(t *testing.T) {
	for d := 1; d <= 11; d++ {
		got := compress(d, 0)
		if got != 0 {
			t.Errorf("compress(%d, 0) = %d, want 0", d, got)
		}
	}
}

func TestCompressOutputFitsInDBits(t *testing.T) {
	for d := 1; d <= 11; d++ {
		for x := fieldElement(0); x < q; x += 97 {
			y := compress(d, x)
			if y >= uint32(1)<<uint(d) {
				t.Errorf("compress(%d, %d) = %d, out of range", d, x, y)
			}
		}
	}
}

func TestDecompressOutputIsCanonical(t *testing.T) {
	for d := 1; d <= 11; d++ {
		for y := uint32(0); y < uint32(1)<<uint(d); y++ {
			x := decompress(d, y)
			if uint16(x) >= q {
				t.Errorf("decompress(%d, %d) = %d, out of range", d, y, x)
			}
		}
	}
}

// TestCompressDecompressRoundTripD1 checks the two message anchors at
// d=1: 0 compresses and decompresses back to 0, and round(q/2)
// compresses to 1.
func TestCompressDecompressRoundTripD1(t *testing.T) {
	if got := decompress(1, compress(1, 0)); got != fieldElement(0) {
		t.Errorf("decompress(1, compress(1, 0)) = %d, want 0", got)
	}
	mid := fieldElement((q + 1) / 2)
	if got := compress(1, mid); got != 1 {
		t.Errorf("compress(1, mid) = %d, want 1", got)
	}
}

func TestCompressRingDecompressRingRoundsTripShape(t *testing.T) {
	var f RingElement
	for i := range f {
		f[i] = fieldElement(i % q)
	}
	y := compressRing(4, f)
	g := decompressRing(4, y)
	for i := range g {
		if uint16(g[i]) >= q {
			t.Errorf("coefficient %d out of range: %d", i, g[i])
		}
	}
}
