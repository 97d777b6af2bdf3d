package mlkem

// PublicKeyPKE is the K-PKE public key: the 32-byte seed rho (from which
// the matrix A is regenerated on demand) and t-hat, the NTT-domain
// k-vector t = A*s + e. Per spec.md §3's KPKEKeyState/t̂.
type PublicKeyPKE struct {
	Rho  [32]byte
	THat []NTTElement
}

// PrivateKeyPKE is the K-PKE private key: the NTT-domain secret k-vector
// s-hat.
type PrivateKeyPKE struct {
	SHat []NTTElement
}

// matrixElement returns A[row][col], regenerated from rho via the
// rejection sampler. Per spec.md §4.7: "Â[i][j] ← sample_ntt(ρ, j, i)" —
// the (j, i) argument order is a wire-level detail that must match test
// vectors exactly, grounded on original_source/src/kpke.rs's
// `sampleNTT(rho, j as u8, i as u8)`.
func matrixElement(rho [32]byte, row, col int) NTTElement {
	return sampleNTT(rho, byte(col), byte(row))
}

// kpkeKeyGen implements K-PKE.KeyGen (spec.md §4.7, FIPS 203 Algorithm
// 13): derive (rho, sigma) from the seed d, sample the secret and error
// vectors s, e via CBD(eta1), transform both to NTT domain, and compute
// t-hat = A*s-hat + e-hat.
//
// Per spec.md §9 REDESIGN FLAG #3 / Open Question #3, e-hat must be
// NTT(e), not a second NTT(s) — the original Rust source's documented
// defect is not reproduced here.
func kpkeKeyGen(d [32]byte, p Profile) (PublicKeyPKE, PrivateKeyPKE, error) {
	if !p.valid() {
		return PublicKeyPKE{}, PrivateKeyPKE{}, ErrConfig
	}

	rho, sigma := G(d[:])

	nctr := byte(0)
	s := make([]RingElement, p.K)
	e := make([]RingElement, p.K)
	for i := 0; i < p.K; i++ {
		var err error
		s[i], err = samplePolyCBD(p.Eta1, prf(p.Eta1, sigma, nctr))
		if err != nil {
			return PublicKeyPKE{}, PrivateKeyPKE{}, err
		}
		nctr++
	}
	for i := 0; i < p.K; i++ {
		var err error
		e[i], err = samplePolyCBD(p.Eta1, prf(p.Eta1, sigma, nctr))
		if err != nil {
			return PublicKeyPKE{}, PrivateKeyPKE{}, err
		}
		nctr++
	}

	sHat := make([]NTTElement, p.K)
	eHat := make([]NTTElement, p.K)
	for i := 0; i < p.K; i++ {
		sHat[i] = ntt(s[i])
		eHat[i] = ntt(e[i])
	}

	tHat := make([]NTTElement, p.K)
	for i := 0; i < p.K; i++ {
		var acc NTTElement
		for j := 0; j < p.K; j++ {
			acc = nttAdd(acc, baseCaseMultiply(matrixElement(rho, i, j), sHat[j]))
		}
		tHat[i] = nttAdd(acc, eHat[i])
	}

	return PublicKeyPKE{Rho: rho, THat: tHat}, PrivateKeyPKE{SHat: sHat}, nil
}

// kpkeEncrypt implements K-PKE.Encrypt (spec.md §4.11, FIPS 203
// Algorithm 14): sample fresh noise y, e1, e2 from the encryption
// randomness r, form u = A^T*y-hat + e1 (compressed to du bits) and
// v = t-hat . y-hat + e2 + Decompress_1(m) (compressed to dv bits).
func kpkeEncrypt(pk PublicKeyPKE, p Profile, m [MessageSize]byte, r [32]byte) ([]byte, error) {
	if !p.valid() {
		return nil, ErrConfig
	}

	nctr := byte(0)
	y := make([]RingElement, p.K)
	for i := 0; i < p.K; i++ {
		var err error
		y[i], err = samplePolyCBD(p.Eta1, prf(p.Eta1, r, nctr))
		if err != nil {
			return nil, err
		}
		nctr++
	}
	e1 := make([]RingElement, p.K)
	for i := 0; i < p.K; i++ {
		var err error
		e1[i], err = samplePolyCBD(p.Eta2, prf(p.Eta2, r, nctr))
		if err != nil {
			return nil, err
		}
		nctr++
	}
	e2, err := samplePolyCBD(p.Eta2, prf(p.Eta2, r, nctr))
	if err != nil {
		return nil, err
	}

	yHat := make([]NTTElement, p.K)
	for i := range y {
		yHat[i] = ntt(y[i])
	}

	u := make([]RingElement, p.K)
	for i := 0; i < p.K; i++ {
		var acc NTTElement
		for j := 0; j < p.K; j++ {
			acc = nttAdd(acc, baseCaseMultiply(matrixElement(pk.Rho, j, i), yHat[j]))
		}
		u[i] = ringAdd(inverseNTT(acc), e1[i])
	}

	vAcc := dotProductNTT(pk.THat, yHat)
	v := ringAdd(ringAdd(inverseNTT(vAcc), e2), encodeMessage(m))

	out := make([]byte, 0, p.CiphertextSize())
	for i := 0; i < p.K; i++ {
		out = append(out, encodeCompressedPoly(p.Du, u[i])...)
	}
	out = append(out, encodeCompressedPoly(p.Dv, v)...)
	return out, nil
}

// kpkeDecrypt implements K-PKE.Decrypt (spec.md §4.11, FIPS 203
// Algorithm 15): recover w = v' - s-hat . u-hat and decode it back to a
// message.
func kpkeDecrypt(sk PrivateKeyPKE, p Profile, ciphertext []byte) ([MessageSize]byte, error) {
	if !p.valid() {
		return [MessageSize]byte{}, ErrConfig
	}
	if len(ciphertext) != p.CiphertextSize() {
		return [MessageSize]byte{}, ErrEncoding
	}

	uSize := encodedPolySize(p.Du)
	u := make([]RingElement, p.K)
	offset := 0
	for i := 0; i < p.K; i++ {
		poly, err := decodeCompressedPoly(p.Du, ciphertext[offset:offset+uSize])
		if err != nil {
			return [MessageSize]byte{}, err
		}
		u[i] = poly
		offset += uSize
	}
	v, err := decodeCompressedPoly(p.Dv, ciphertext[offset:])
	if err != nil {
		return [MessageSize]byte{}, err
	}

	uHat := make([]NTTElement, p.K)
	for i := range u {
		uHat[i] = ntt(u[i])
	}

	w := ringSub(v, inverseNTT(dotProductNTT(sk.SHat, uHat)))
	return decodeMessage(w), nil
}
