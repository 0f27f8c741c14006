package mlkem

import "crypto/sha3"

// sampleNTT generates a uniformly random NTT-domain polynomial by rejection
// sampling SHAKE128 output three bytes at a time into two 12-bit candidates.
// Implements FIPS 203 Algorithm 7 (SampleNTT).
func sampleNTT(rho []byte, i, j byte) nttElement {
	h := sha3.NewSHAKE128()
	h.Write(rho)
	h.Write([]byte{j, i})

	var buf [168]byte // SHAKE128 rate
	var a nttElement
	c := 0

	for {
		h.Read(buf[:])
		for off := 0; off+3 <= len(buf) && c < n; off += 3 {
			d1 := uint32(buf[off]) | (uint32(buf[off+1]&0x0f) << 8)
			d2 := uint32(buf[off+1]>>4) | (uint32(buf[off+2]) << 4)
			if d1 < q {
				a[c] = fieldElement(d1)
				c++
			}
			if d2 < q && c < n {
				a[c] = fieldElement(d2)
				c++
			}
		}
		if c >= n {
			return a
		}
	}
}

// samplePolyCBD draws a polynomial whose coefficients follow the centered
// binomial distribution with parameter eta, from PRF_eta(seed, nonce).
// Implements FIPS 203 Algorithm 8 (SamplePolyCBD).
func samplePolyCBD(seed []byte, eta int, nonce byte) ringElement {
	h := sha3.NewSHAKE256()
	h.Write(seed)
	h.Write([]byte{nonce})

	buf := make([]byte, 64*eta)
	h.Read(buf)

	var f ringElement
	bitPos := 0
	bit := func() uint32 {
		v := uint32(buf[bitPos/8]>>(bitPos%8)) & 1
		bitPos++
		return v
	}
	for i := 0; i < n; i++ {
		var x, y uint32
		for j := 0; j < eta; j++ {
			x += bit()
		}
		for j := 0; j < eta; j++ {
			y += bit()
		}
		f[i] = fieldSub(fieldElement(x), fieldElement(y))
	}
	return f
}
