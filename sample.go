package mlkem

import "crypto/sha3"

// sampleNTT is the rejection sampler of spec.md §4.3 (FIPS 203 Algorithm
// 7, SampleNTT): it absorbs a 32-byte seed rho and two index bytes into
// SHAKE-128 and reads 3-byte blocks, each yielding two 12-bit candidates,
// accepting a candidate as the next coefficient iff it is < q.
//
// Grounded on KarpelesLab-mldsa/sample.go's sampleNTTPoly (same
// "read-a-block, scan 3 bytes at a time" shape) reworked against
// spec.md §4.3's exact bit layout, which differs from ML-DSA's: ML-KEM's
// candidates are 12-bit (d1 = c0 + 256*(c1 mod 16), d2 = c1/16 + 16*c2),
// not a single 23-bit candidate per 3 bytes.
func sampleNTT(rho [32]byte, b1, b2 byte) NTTElement {
	h := sha3.NewSHAKE128()
	h.Write(rho[:])
	h.Write([]byte{b1, b2})

	var a NTTElement
	var buf [168]byte // SHAKE-128 rate
	j := 0

	for j < n {
		h.Read(buf[:])
		for i := 0; i+3 <= len(buf) && j < n; i += 3 {
			c0, c1, c2 := uint16(buf[i]), uint16(buf[i+1]), uint16(buf[i+2])
			d1 := c0 + 256*(c1%16)
			d2 := c1/16 + 16*c2
			if d1 < q {
				a[j] = fieldElement(d1)
				j++
			}
			if j < n && d2 < q {
				a[j] = fieldElement(d2)
				j++
			}
		}
	}
	return a
}

// samplePolyCBD is the centered binomial sampler of spec.md §4.4 (FIPS
// 203 Algorithm 8, SamplePolyCBD_eta): it expands a 64*eta-byte PRF
// output into bits via bytesToBits and, for each output coefficient,
// subtracts the sum of the second eta-bit group from the sum of the
// first.
//
// eta must be 2 or 3; any other value is a configuration error
// (spec.md §4.4, §7).
func samplePolyCBD(eta int, b []byte) (RingElement, error) {
	if eta != 2 && eta != 3 {
		return RingElement{}, ErrConfig
	}
	if len(b) != 64*eta {
		return RingElement{}, ErrConfig
	}

	bits := bytesToBits(b)
	var f RingElement
	for i := 0; i < n; i++ {
		var x, y int32
		for j := 0; j < eta; j++ {
			x += int32(bits[2*i*eta+j])
			y += int32(bits[2*i*eta+eta+j])
		}
		f[i] = fieldReduceOnce(x - y + q)
	}
	return f, nil
}
