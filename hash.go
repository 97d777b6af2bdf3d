package mlkem

import "crypto/sha3"

// H is SHA3-256, used by the outer ML-KEM layer to bind an encapsulation
// key into the decapsulation key and into the encapsulation transcript.
// Per spec.md §4.6.
func H(m []byte) [32]byte {
	h := sha3.New256()
	h.Write(m)
	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

// G is SHA3-512, split into a 32-byte rho and a 32-byte sigma. Used by
// K-PKE key generation and by Encaps/Decaps to derive the shared secret
// and the encryption randomness together. Per spec.md §4.6.
func G(m []byte) (rho, sigma [32]byte) {
	h := sha3.New512()
	h.Write(m)
	sum := h.Sum(nil)
	copy(rho[:], sum[:32])
	copy(sigma[:], sum[32:])
	return rho, sigma
}

// J is SHAKE-256 with a fixed 32-byte output, used by Decaps to derive
// the implicit-rejection pseudorandom secret. Per spec.md §4.6.
func J(m []byte) [32]byte {
	h := sha3.NewSHAKE256()
	h.Write(m)
	var out [32]byte
	h.Read(out[:])
	return out
}

// prf is the pseudorandom function of spec.md §4.5: SHAKE-256 seeded
// with a 32-byte secret sigma and a 1-byte counter, read out to
// 64*eta bytes.
func prf(eta int, sigma [32]byte, b byte) []byte {
	h := sha3.NewSHAKE256()
	h.Write(sigma[:])
	h.Write([]byte{b})
	out := make([]byte, 64*eta)
	h.Read(out)
	return out
}
