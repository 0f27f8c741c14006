package dsaring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestNTTRoundTrip checks the scenario-4 property (spec §8): f[i] = i-Q/2
// survives NTT/InvNTT, both bare and through a pointwise multiply by NTT(1).
func TestNTTRoundTrip(t *testing.T) {
	var f RingElement
	half := int64(Q) / 2
	for i := 0; i < N; i++ {
		v := ((int64(i) - half) % int64(Q) + int64(Q)) % int64(Q)
		f[i] = FieldElement(v)
	}

	require.Equal(t, f, InvNTT(NTT(f)))

	var one RingElement
	one[0] = 1
	got := InvNTT(NTTMul(NTT(f), NTT(one)))
	require.Equal(t, f, got)
}

// TestPower2RoundSweep checks the scenario-5 property (spec §8): every
// r in [0, Q) decomposes into (r1, r0) with r1*2^D + r0 == r mod Q and
// r0 centered in (-2^(D-1), 2^(D-1)].
func TestPower2RoundSweep(t *testing.T) {
	const half = int64(1) << (D - 1)

	for r := int64(0); r < Q; r++ {
		r1, r0 := Power2Round(FieldElement(r))

		signed := int64(r0)
		if signed > Q/2 {
			signed -= Q
		}
		require.Greater(t, signed, -half)
		require.LessOrEqual(t, signed, half)

		reconstructed := ((int64(r1)<<D + signed) % Q + Q) % Q
		require.Equal(t, r, reconstructed, "r=%d", r)
	}
}
