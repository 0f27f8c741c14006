package dsaring

// FieldElement is an integer modulo Q, always in reduced form [0, Q).
type FieldElement uint32

// RingElement is a polynomial with N coefficients in Z_q.
type RingElement [N]FieldElement

// NTTElement is the NTT representation of a polynomial.
type NTTElement [N]FieldElement

// Montgomery form constants.
const (
	// qInv = Q^(-1) mod 2^32
	qInv = 58728449
	// qNegInv = -Q^(-1) mod 2^32 = 2^32 - qInv
	qNegInv = 4236238847
	// montR = 2^32 mod Q (Montgomery R)
	montR = 4193792
	// montR2 = 2^64 mod Q (Montgomery R^2)
	montR2 = 2365951
	// invN = N^(-1) * R^2 mod Q (for inverse NTT scaling)
	invN = 41978
)

// FieldReduceOnce reduces a value < 2q to [0, Q).
func FieldReduceOnce(a uint32) FieldElement {
	// If a >= Q, subtract Q
	x := a - Q
	// If underflow (a < Q), x has high bit set
	x += (x >> 31) * Q
	return FieldElement(x)
}

// FieldAdd returns (a + b) mod Q.
func FieldAdd(a, b FieldElement) FieldElement {
	return FieldReduceOnce(uint32(a) + uint32(b))
}

// FieldSub returns (a - b) mod Q.
func FieldSub(a, b FieldElement) FieldElement {
	return FieldReduceOnce(uint32(a) - uint32(b) + Q)
}

// FieldReduce performs Montgomery reduction: returns a * R^(-1) mod Q
// where a < Q * 2^32.
func FieldReduce(a uint64) FieldElement {
	// Montgomery reduction: t = ((a mod 2^32) * qNegInv) mod 2^32
	t := uint32(a) * qNegInv
	// result = (a + t*Q) / 2^32
	return FieldReduceOnce(uint32((a + uint64(t)*Q) >> 32))
}

// FieldMul returns (a * b) mod Q using Montgomery multiplication.
// Both inputs and output are in Montgomery form.
func FieldMul(a, b FieldElement) FieldElement {
	return FieldReduce(uint64(a) * uint64(b))
}

// PolyAdd adds two polynomials coefficient-wise.
func PolyAdd[T ~[N]FieldElement](a, b T) (c T) {
	for i := range c {
		c[i] = FieldAdd(a[i], b[i])
	}
	return c
}

// PolySub subtracts two polynomials coefficient-wise.
func PolySub[T ~[N]FieldElement](a, b T) (c T) {
	for i := range c {
		c[i] = FieldSub(a[i], b[i])
	}
	return c
}
