package mlkem

import "crypto/sha3"

// hashH is H: B* -> B^32, SHA3-256.
func hashH(s []byte) [32]byte {
	return sha3.Sum256(s)
}

// hashJ is J: B* x B* -> B^32, SHAKE256 used as a PRF over z||c.
func hashJ(in1, in2 []byte) [32]byte {
	h := sha3.NewSHAKE256()
	h.Write(in1)
	h.Write(in2)
	var out [32]byte
	h.Read(out[:])
	return out
}

// hashG is G: B* -> B^32 x B^32, SHA3-512 split into two halves.
func hashG(in1, in2 []byte) (a, b [32]byte) {
	h := sha3.New512()
	h.Write(in1)
	h.Write(in2)
	sum := h.Sum(nil)
	copy(a[:], sum[:32])
	copy(b[:], sum[32:])
	return a, b
}

// sampleMatrix fills a k*k matrix of NTT-domain polynomials from rho.
// a[i][j] = SampleNTT(rho, j, i), matching pke.go's use of a[i][j] as the
// (i,j) entry of A in "u = A^T y + e1" (summed over i for fixed column j).
func sampleMatrix(rho []byte, k int) [][]nttElement {
	a := make([][]nttElement, k)
	for i := range a {
		a[i] = make([]nttElement, k)
		for j := range a[i] {
			a[i][j] = sampleNTT(rho, byte(i), byte(j))
		}
	}
	return a
}
