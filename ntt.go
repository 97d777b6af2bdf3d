package mlkem

// bitRev7Table holds bitrev7(i) for i in [0, 128): the 7 low bits of i,
// reversed. Computed once at package init rather than hardcoded, since
// Go (unlike the Rust original's const fn) has no compile-time loop
// evaluation for a table this shape; see DESIGN.md.
var bitRev7Table = buildBitRev7Table()

// zetaTable holds ZetaTable[i] = zeta^bitrev7(i) mod q for i in [0, 128):
// the twiddle factors consumed, in order, by one forward or inverse NTT.
var zetaTable = buildZetaTable()

// gammaTable holds gamma[i] = zeta^(2*bitrev7(i)+1) mod q for i in
// [0, 128): the modulus of the degree-one quotient ring
// Z_q[X]/(X^2 - gamma[i]) that the i-th pair of NTT-domain coefficients
// lives in, per spec.md §4.1's pointwise_mul_ntt definition.
var gammaTable = buildGammaTable()

func buildBitRev7Table() [128]uint8 {
	var t [128]uint8
	for i := range t {
		var r uint8
		v := uint8(i)
		for b := 0; b < 7; b++ {
			r |= ((v >> b) & 1) << (6 - b)
		}
		t[i] = r
	}
	return t
}

// modPow computes base^exp mod q via square-and-multiply.
func modPow(base, exp uint32) uint32 {
	result := uint32(1)
	b := base % q
	for exp > 0 {
		if exp&1 == 1 {
			result = (result * b) % q
		}
		exp >>= 1
		b = (b * b) % q
	}
	return result
}

func buildZetaTable() [128]fieldElement {
	var t [128]fieldElement
	for i := range t {
		t[i] = fieldElement(modPow(zeta, uint32(bitRev7Table[i])))
	}
	return t
}

func buildGammaTable() [128]fieldElement {
	var t [128]fieldElement
	for i := range t {
		exp := 2*uint32(bitRev7Table[i]) + 1
		t[i] = fieldElement(modPow(zeta, exp))
	}
	return t
}

// ntt performs the forward Number-Theoretic Transform (FIPS 203
// Algorithm 9): a 7-stage decimation-in-time Cooley-Tukey structure over
// spans {128, 64, ..., 2}, per spec.md §4.2.
func ntt(f RingElement) NTTElement {
	out := f
	k := 1
	for length := 128; length >= 2; length /= 2 {
		for start := 0; start < n; start += 2 * length {
			z := zetaTable[k]
			k++
			for j := start; j < start+length; j++ {
				t := fieldMul(z, out[j+length])
				out[j+length] = fieldSub(out[j], t)
				out[j] = fieldAdd(out[j], t)
			}
		}
	}
	return NTTElement(out)
}

// inverseNTT performs the inverse Number-Theoretic Transform (FIPS 203
// Algorithm 10): the mirrored Gentleman-Sande structure over spans
// {2, 4, ..., 128}, followed by the 128^-1 mod q rescale, per spec.md
// §4.2.
func inverseNTT(f NTTElement) RingElement {
	out := RingElement(f)
	k := 127
	for length := 2; length <= 128; length *= 2 {
		for start := 0; start < n; start += 2 * length {
			z := zetaTable[k]
			k--
			for j := start; j < start+length; j++ {
				t := out[j]
				out[j] = fieldAdd(t, out[j+length])
				out[j+length] = fieldMul(z, fieldSub(out[j+length], t))
			}
		}
	}
	const invN128 = 3303 // 128^-1 mod 3329, per spec.md §4.2
	return ringMulScalar(out, invN128)
}

// nttAddVec adds two k-vectors of NTT-domain elements coefficient-wise.
func nttAddVec(a, b []NTTElement) []NTTElement {
	c := make([]NTTElement, len(a))
	for i := range c {
		c[i] = nttAdd(a[i], b[i])
	}
	return c
}

// baseCaseMultiply performs the pointwise NTT-domain multiplication of
// spec.md §4.1: not a plain componentwise product, but the 128
// independent degree-one-quotient-ring multiplications of FIPS 203
// Algorithm 12, since q=3329 only supports a 7-layer (not 8-layer,
// complete) NTT.
func baseCaseMultiply(a, b NTTElement) NTTElement {
	var c NTTElement
	for i := 0; i < n/2; i++ {
		a0, a1 := a[2*i], a[2*i+1]
		b0, b1 := b[2*i], b[2*i+1]
		gamma := gammaTable[i]
		c[2*i] = fieldAdd(fieldMul(a0, b0), fieldMul(fieldMul(a1, b1), gamma))
		c[2*i+1] = fieldAdd(fieldMul(a0, b1), fieldMul(a1, b0))
	}
	return c
}

// dotProductNTT computes the NTT-domain dot product of two equal-length
// vectors of NTT elements, i.e. sum_i a[i]*b[i], using baseCaseMultiply
// for the pointwise product at each index.
func dotProductNTT(a, b []NTTElement) NTTElement {
	var acc NTTElement
	for i := range a {
		acc = nttAdd(acc, baseCaseMultiply(a[i], b[i]))
	}
	return acc
}
