package mlkem

// bytesToBits expands each byte of b into 8 bits, least-significant bit
// first: bit 0 of byte k becomes output bit 8k, bit 7 becomes 8k+7.
//
// Grounded on original_source/src/auxiliary.rs::bytes_to_bits, which
// shifts by 2 per bit instead of 1 — spec.md §4.4/§9 Open Question #1
// flags that as a defect yielding alternating zeros. This implementation
// shifts by exactly 1, and TestBytesToBitsNoAlternatingZeros regresses
// against reintroducing the bug.
func bytesToBits(b []byte) []byte {
	bits := make([]byte, len(b)*8)
	for i, c := range b {
		for j := 0; j < 8; j++ {
			bits[8*i+j] = (c >> j) & 1
		}
	}
	return bits
}

// bitsToBytes packs a slice of 0/1 bits (LSB-first within each byte, the
// inverse layout of bytesToBits) back into bytes. len(bits) must be a
// multiple of 8.
//
// Grounded on original_source/src/auxiliary.rs::bits_to_bytes, which
// computes `bytes[i/8] + bits[i] << (i%8)` — operator precedence binds
// the shift before the add, so repeated additions into the same output
// byte silently corrupt already-set bits. Spec.md §9 Open Question #2
// mandates `|=` instead, used here.
func bitsToBytes(bits []byte) []byte {
	out := make([]byte, len(bits)/8)
	for i, bit := range bits {
		out[i/8] |= bit << (i % 8)
	}
	return out
}
