package mlkem

import "io"

// EncapsKey is the outer ML-KEM encapsulation (public) key: a parameter
// profile plus the wrapped K-PKE public key.
type EncapsKey struct {
	Profile Profile
	pk      PublicKeyPKE
}

// DecapsKey is the outer ML-KEM decapsulation (private) key: the wrapped
// K-PKE private key, the matching public key (needed to re-encrypt
// during implicit rejection), H(ek) and the 32-byte implicit-rejection
// value z. Per spec.md §6's kpke_keygen contract, wrapped by the FO
// transform described in SPEC_FULL.md §4.12.
type DecapsKey struct {
	Profile Profile
	sk      PrivateKeyPKE
	pk      PublicKeyPKE
	hEK     [32]byte
	z       [32]byte
}

// KeyGen implements ML-KEM.KeyGen (FIPS 203 Algorithm 19): draw the
// 32-byte K-PKE seed d and the 32-byte implicit-rejection value z from
// rand, run K-PKE.KeyGen, and bind ek/dk together with H(ek).
//
// Grounded on KarpelesLab-mldsa's GenerateKey65/NewKey65 split (an
// rng-owning constructor over a pure seed-driven one) — here both seeds
// are drawn in one call since ML-KEM has no seed/private-key duality to
// expose separately the way ML-DSA's Bytes()/NewKey65 round-trip does.
func KeyGen(rand io.Reader, p Profile) (*EncapsKey, *DecapsKey, error) {
	if !p.valid() {
		return nil, nil, ErrConfig
	}

	var d, z [32]byte
	if _, err := io.ReadFull(rand, d[:]); err != nil {
		return nil, nil, err
	}
	if _, err := io.ReadFull(rand, z[:]); err != nil {
		return nil, nil, err
	}

	pk, sk, err := kpkeKeyGen(d, p)
	if err != nil {
		return nil, nil, err
	}

	ek := &EncapsKey{Profile: p, pk: pk}
	hEK := H(ek.Bytes())

	dk := &DecapsKey{Profile: p, sk: sk, pk: pk, hEK: hEK, z: z}
	return ek, dk, nil
}

// Bytes encodes the encapsulation key as rho || ByteEncode_12(t-hat),
// per spec.md §6.
func (ek *EncapsKey) Bytes() []byte {
	out := make([]byte, 0, ek.Profile.EncapsKeySize())
	out = append(out, ek.pk.Rho[:]...)
	for _, t := range ek.pk.THat {
		out = append(out, encodePoly12(RingElement(t))...)
	}
	return out
}

// ParseEncapsKey decodes an encapsulation key previously produced by
// Bytes for the given profile.
func ParseEncapsKey(p Profile, b []byte) (*EncapsKey, error) {
	if !p.valid() {
		return nil, ErrConfig
	}
	if len(b) != p.EncapsKeySize() {
		return nil, ErrEncoding
	}

	var pk PublicKeyPKE
	copy(pk.Rho[:], b[:32])
	polySize := encodedPolySize(12)
	offset := 32
	pk.THat = make([]NTTElement, p.K)
	for i := 0; i < p.K; i++ {
		re, err := decodePoly12(b[offset : offset+polySize])
		if err != nil {
			return nil, err
		}
		pk.THat[i] = NTTElement(re)
		offset += polySize
	}
	return &EncapsKey{Profile: p, pk: pk}, nil
}

// Encapsulate implements ML-KEM.Encaps (FIPS 203 Algorithm 20): draw a
// 32-byte message m, derive (K, r) = G(m || H(ek)), and encrypt m under
// ek with randomness r to produce the ciphertext and shared secret K.
func (ek *EncapsKey) Encapsulate(rand io.Reader) (ciphertext []byte, secret [32]byte, err error) {
	var m [MessageSize]byte
	if _, err := io.ReadFull(rand, m[:]); err != nil {
		return nil, secret, err
	}
	return ek.encapsInternal(m)
}

// encapsInternal is the pure, seed-driven core of Encapsulate, grounded
// on KarpelesLab-mldsa's PrivateKey65.signInternal/Sign split (the
// public method owns the rand.Reader, the internal method is
// deterministic in its inputs so it can be exercised directly in KATs).
func (ek *EncapsKey) encapsInternal(m [MessageSize]byte) (ciphertext []byte, secret [32]byte, err error) {
	ekBytes := ek.Bytes()
	hEK := H(ekBytes)
	k, r := G(append(m[:], hEK[:]...))

	ciphertext, err = kpkeEncrypt(ek.pk, ek.Profile, m, r)
	if err != nil {
		return nil, secret, err
	}
	return ciphertext, k, nil
}

// Decapsulate implements ML-KEM.Decaps (FIPS 203 Algorithm 21): decrypt
// the ciphertext, re-derive the randomness that would have produced it,
// re-encrypt, and compare. On mismatch it returns the implicit-rejection
// secret J(z || c) instead of an error, per SPEC_FULL.md §4.12; the only
// error it returns is ErrEncoding for a ciphertext of the wrong length.
func (dk *DecapsKey) Decapsulate(ciphertext []byte) ([32]byte, error) {
	if len(ciphertext) != dk.Profile.CiphertextSize() {
		return [32]byte{}, ErrEncoding
	}

	mPrime, err := kpkeDecrypt(dk.sk, dk.Profile, ciphertext)
	if err != nil {
		return [32]byte{}, err
	}

	kPrime, rPrime := G(append(mPrime[:], dk.hEK[:]...))
	kBar := J(append(dk.z[:], ciphertext...))

	cPrime, err := kpkeEncrypt(dk.pk, dk.Profile, mPrime, rPrime)
	if err != nil {
		return [32]byte{}, err
	}

	if constantTimeEqual(ciphertext, cPrime) {
		return kPrime, nil
	}
	return kBar, nil
}

// Bytes encodes the decapsulation key as
// dkPKE || ekPKE || H(ekPKE) || z, per SPEC_FULL.md §6.
func (dk *DecapsKey) Bytes() []byte {
	out := make([]byte, 0, dk.Profile.DecapsKeySize())
	for _, s := range dk.sk.SHat {
		out = append(out, encodePoly12(RingElement(s))...)
	}
	ek := &EncapsKey{Profile: dk.Profile, pk: dk.pk}
	out = append(out, ek.Bytes()...)
	out = append(out, dk.hEK[:]...)
	out = append(out, dk.z[:]...)
	return out
}

// ParseDecapsKey decodes a decapsulation key previously produced by
// Bytes for the given profile.
func ParseDecapsKey(p Profile, b []byte) (*DecapsKey, error) {
	if !p.valid() {
		return nil, ErrConfig
	}
	if len(b) != p.DecapsKeySize() {
		return nil, ErrEncoding
	}

	polySize := encodedPolySize(12)
	offset := 0
	sk := PrivateKeyPKE{SHat: make([]NTTElement, p.K)}
	for i := 0; i < p.K; i++ {
		re, err := decodePoly12(b[offset : offset+polySize])
		if err != nil {
			return nil, err
		}
		sk.SHat[i] = NTTElement(re)
		offset += polySize
	}

	ek, err := ParseEncapsKey(p, b[offset:offset+p.EncapsKeySize()])
	if err != nil {
		return nil, err
	}
	offset += p.EncapsKeySize()

	var hEK, z [32]byte
	copy(hEK[:], b[offset:offset+32])
	offset += 32
	copy(z[:], b[offset:offset+32])

	return &DecapsKey{Profile: p, sk: sk, pk: ek.pk, hEK: hEK, z: z}, nil
}

// constantTimeEqual reports whether a and b are equal, in time
// independent of where they first differ. Grounded on
// KarpelesLab-mldsa's PublicKey65.verifyInternal, which compares c-tilde
// the same way (`diff |= ...`) to avoid leaking the mismatch position.
func constantTimeEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	var diff byte
	for i := range a {
		diff |= a[i] ^ b[i]
	}
	return diff == 0
}
