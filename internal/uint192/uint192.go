// Package uint192 implements fixed-width 192-bit unsigned integer
// arithmetic (add/sub/shift/division-by-uint64), used to derive and check
// the scheme's auxiliary constants (e.g. confirming a modulus is prime)
// without needing a general-purpose bignum library for what is otherwise
// a handful of build-time values.
package uint192

import "math/bits"

// Uint192 holds a 192-bit unsigned integer as three little-endian uint64 limbs.
type Uint192 struct {
	v [3]uint64
}

// FromUint64 returns the Uint192 value of a.
func FromUint64(a uint64) Uint192 {
	return Uint192{v: [3]uint64{a, 0, 0}}
}

// FromUint64Pair returns the Uint192 value hi<<64 | lo.
func FromUint64Pair(hi, lo uint64) Uint192 {
	return Uint192{v: [3]uint64{lo, hi, 0}}
}

// Add returns a+b and whether the result overflowed 192 bits.
func (a Uint192) Add(b Uint192) (Uint192, bool) {
	var r Uint192
	var carry uint64
	r.v[0], carry = bits.Add64(a.v[0], b.v[0], 0)
	r.v[1], carry = bits.Add64(a.v[1], b.v[1], carry)
	r.v[2], carry = bits.Add64(a.v[2], b.v[2], carry)
	return r, carry != 0
}

// Sub returns a-b and whether the subtraction borrowed.
func (a Uint192) Sub(b Uint192) (Uint192, bool) {
	var r Uint192
	var borrow uint64
	r.v[0], borrow = bits.Sub64(a.v[0], b.v[0], 0)
	r.v[1], borrow = bits.Sub64(a.v[1], b.v[1], borrow)
	r.v[2], borrow = bits.Sub64(a.v[2], b.v[2], borrow)
	return r, borrow != 0
}

// Shl returns a<<n for n in [0, 192).
func (a Uint192) Shl(n uint) Uint192 {
	v := a.v
	switch {
	case n >= 128:
		v = [3]uint64{0, 0, v[0]}
	case n >= 64:
		v = [3]uint64{0, v[0], v[1]}
	}
	n %= 64
	if n > 0 {
		m := 64 - n
		v[2] = v[2]<<n | v[1]>>m
		v[1] = v[1]<<n | v[0]>>m
		v[0] = v[0] << n
	}
	return Uint192{v: v}
}

// Shr returns a>>n for n in [0, 192).
func (a Uint192) Shr(n uint) Uint192 {
	v := a.v
	switch {
	case n >= 128:
		v = [3]uint64{v[2], 0, 0}
	case n >= 64:
		v = [3]uint64{v[1], v[2], 0}
	}
	n %= 64
	if n > 0 {
		m := 64 - n
		v[0] = v[0]>>n | v[1]<<m
		v[1] = v[1]>>n | v[2]<<m
		v[2] = v[2] >> n
	}
	return Uint192{v: v}
}

// IsZero reports whether a is zero.
func (a Uint192) IsZero() bool { return a.v == [3]uint64{} }

// Uint64 returns the low 64 bits of a.
func (a Uint192) Uint64() uint64 { return a.v[0] }

// DivU64 returns (a/denominator, a%denominator). denominator must be nonzero.
func (a Uint192) DivU64(denominator uint64) (Uint192, uint64) {
	if a.v[2] == 0 && a.v[1] == 0 {
		q, r := bits.Div64(0, a.v[0], denominator)
		return FromUint64(q), r
	}

	qHi, rHi := bits.Div64(0, a.v[2], denominator)
	qMid, rMid := bits.Div64(rHi, a.v[1], denominator)
	qLo, rLo := bits.Div64(rMid, a.v[0], denominator)

	return Uint192{v: [3]uint64{qLo, qMid, qHi}}, rLo
}
