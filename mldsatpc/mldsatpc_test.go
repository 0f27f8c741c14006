package mldsatpc

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	b := make([]byte, n)
	_, err := io.ReadFull(rand.Reader, b)
	require.NoError(t, err)
	return b
}

// combineAndCheck rebuilds the full ML-DSA-65 secret key from both parties'
// shares and checks that t0/t1 (as seen by the client) match A*s1+s2, an
// internal consistency oracle independent of the signing protocol itself.
func combineAndCheck(t *testing.T, client *ClientKey, server *ServerKey) {
	t.Helper()

	require.Equal(t, client.rho, server.rho)

	var s1 [l]ringElement
	for i := range s1 {
		s1[i] = polyAdd(client.s1[i], server.s1[i])
	}
	var s2 [k]ringElement
	for i := range s2 {
		s2[i] = polyAdd(client.s2[i], server.s2[i])
	}

	var s1NTT [l]nttElement
	for i := range s1NTT {
		s1NTT[i] = ntt(s1[i])
	}

	for i := 0; i < k; i++ {
		var acc nttElement
		for j := 0; j < l; j++ {
			acc = polyAdd(acc, nttMul(client.a[i*l+j], s1NTT[j]))
		}
		combined := polyAdd(invNTT(acc), s2[i])

		for j := 0; j < n; j++ {
			r1, r0 := power2Round(combined[j])
			require.Equal(t, client.t1[i][j], r1)
			require.Equal(t, client.t0[i][j], r0)
		}
	}
}

func keyGenRoundTrip(t *testing.T) (*ClientKey, *ServerKey) {
	t.Helper()

	xi := randomBytes(t, SeedSize)
	clientR := randomBytes(t, RSize)
	serverR := randomBytes(t, RSize)

	cctx, err := ClientKeyGen0(xi, clientR)
	require.NoError(t, err)

	server, serverT, err := ServerKeyGen(xi, serverR, cctx.ClientT())
	require.NoError(t, err)

	client, err := cctx.ClientKeyGen1(serverT, server.Tr())
	require.NoError(t, err)

	require.Equal(t, client.tr, server.tr)
	return client, server
}

func TestKeyGenRoundTrip(t *testing.T) {
	client, server := keyGenRoundTrip(t)
	combineAndCheck(t, client, server)
}

func TestKeyGenPublicKeyMismatch(t *testing.T) {
	xi := randomBytes(t, SeedSize)
	clientR := randomBytes(t, RSize)
	serverR := randomBytes(t, RSize)

	cctx, err := ClientKeyGen0(xi, clientR)
	require.NoError(t, err)

	server, serverT, err := ServerKeyGen(xi, serverR, cctx.ClientT())
	require.NoError(t, err)

	// Corrupt the server's reported tr: the client's independently derived
	// tr will no longer match.
	badTr := server.Tr()
	badTr[0] ^= 0xff

	_, err = cctx.ClientKeyGen1(serverT, badTr)
	require.ErrorIs(t, err, ErrPublicKeyMismatch)
}

// sign drives one full signing conversation, resampling client/server
// randomness whenever a round is rejected by ClientSign1 (the FIPS 204
// rejection-sampling loop made an expected, non-terminal outcome).
func sign(t *testing.T, client *ClientKey, server *ServerKey, msg, context []byte) []byte {
	t.Helper()

	for attempt := 0; attempt < 200; attempt++ {
		var clientRnd, serverRnd [32]byte
		copy(clientRnd[:], randomBytes(t, RndSize))
		copy(serverRnd[:], randomBytes(t, RndSize))

		sctx, err := ClientSign0(client, clientRnd, msg, context)
		require.NoError(t, err)

		serverW, serverZ, serverCS2, err := server.ServerSign(serverRnd, msg, context, sctx.Mu(), sctx.W())
		require.NoError(t, err)

		sig, err := sctx.ClientSign1(client, serverW, serverZ, serverCS2)
		if err == ErrServerCheckFailed {
			continue
		}
		require.NoError(t, err)
		return sig
	}

	t.Fatal("signing round never succeeded after 200 attempts")
	return nil
}

func TestSignVerify(t *testing.T) {
	client, server := keyGenRoundTrip(t)

	msg := []byte("two parties, one signature")
	sig := sign(t, client, server, msg, nil)
	require.Len(t, sig, SignatureSize)

	pk, err := client.PublicKey()
	require.NoError(t, err)
	require.True(t, pk.Verify(sig, msg, nil))

	require.False(t, pk.Verify(sig, []byte("a different message"), nil))
}

func TestSignVerifyWithContext(t *testing.T) {
	client, server := keyGenRoundTrip(t)

	msg := []byte("context-bound message")
	ctx := []byte("application-context")
	sig := sign(t, client, server, msg, ctx)

	pk, err := client.PublicKey()
	require.NoError(t, err)
	require.True(t, pk.Verify(sig, msg, ctx))
	require.False(t, pk.Verify(sig, msg, nil))
}

func TestPublicKeyBytesMatchesVerifyKey(t *testing.T) {
	client, _ := keyGenRoundTrip(t)

	require.Len(t, client.PublicKeyBytes(), PublicKeySize)

	pk, err := client.PublicKey()
	require.NoError(t, err)
	require.NotNil(t, pk)
	require.Equal(t, client.PublicKeyBytes(), pk.Bytes())
}
