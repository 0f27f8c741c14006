package uint192

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func toBig(a Uint192) *big.Int {
	r := new(big.Int)
	for i := 2; i >= 0; i-- {
		r.Lsh(r, 64)
		r.Or(r, new(big.Int).SetUint64(a.v[i]))
	}
	return r
}

func TestShiftRoundTrip(t *testing.T) {
	vals := []Uint192{
		FromUint64(1),
		FromUint64(0xdeadbeef),
		FromUint64Pair(0x1, 0),
		FromUint64Pair(0xffffffffffffffff, 0xffffffffffffffff),
		{v: [3]uint64{0x0102030405060708, 0x1112131415161718, 0x2122232425262728}},
	}

	for _, a := range vals {
		for n := uint(0); n < 192; n++ {
			b := a.Shl(n).Shr(n)
			// shifting b by n again must be a no-op: b already has its
			// top n bits cleared.
			require.Equal(t, b, b.Shl(n).Shr(n), "n=%d", n)
		}
	}
}

func TestShlShrSmallN(t *testing.T) {
	a := FromUint64(0x1)
	got := a.Shl(65)
	require.Equal(t, Uint192{v: [3]uint64{0, 2, 0}}, got)

	got2 := got.Shr(65)
	require.Equal(t, FromUint64(0x1), got2)
}

func TestAddSub(t *testing.T) {
	a := FromUint64Pair(1, 0xffffffffffffffff)
	b := FromUint64(1)

	sum, overflow := a.Add(b)
	require.False(t, overflow)
	require.Equal(t, FromUint64Pair(2, 0), sum)

	back, borrow := sum.Sub(b)
	require.False(t, borrow)
	require.Equal(t, a, back)

	_, borrow = FromUint64(0).Sub(FromUint64(1))
	require.True(t, borrow)
}

func TestDivU64(t *testing.T) {
	cases := []struct {
		hi, lo, den uint64
	}{
		{0, 100, 7},
		{0, 0, 5},
		{1, 0, 3},
		{0xffffffff, 0xffffffffffffffff, 0xffffffff00000001},
		{1234, 5678, 999983},
	}

	for _, c := range cases {
		a := FromUint64Pair(c.hi, c.lo)
		q, r := a.DivU64(c.den)

		want := new(big.Int).Quo(toBig(a), new(big.Int).SetUint64(c.den))
		wantRem := new(big.Int).Rem(toBig(a), new(big.Int).SetUint64(c.den))

		require.Zero(t, want.Cmp(toBig(q)), "den=%d", c.den)
		require.Equal(t, wantRem.Uint64(), r, "den=%d", c.den)
	}
}

func TestDivU64SingleLimb(t *testing.T) {
	a := FromUint64(100)
	q, r := a.DivU64(7)
	require.Equal(t, FromUint64(14), q)
	require.Equal(t, uint64(2), r)
}

func TestIsProbablePrime(t *testing.T) {
	require.True(t, IsProbablePrime(8380417), "ML-DSA modulus must be prime")
	require.True(t, IsProbablePrime(3329), "ML-KEM modulus must be prime")

	require.True(t, IsProbablePrime(2))
	require.True(t, IsProbablePrime(3))
	require.True(t, IsProbablePrime(97))
	require.True(t, IsProbablePrime(7919))

	require.False(t, IsProbablePrime(0))
	require.False(t, IsProbablePrime(1))
	require.False(t, IsProbablePrime(4))
	require.False(t, IsProbablePrime(8380416))
	require.False(t, IsProbablePrime(561)) // Carmichael number
	require.False(t, IsProbablePrime(3329*3))
}
