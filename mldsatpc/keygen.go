package mldsatpc

import (
	"crypto/sha3"
	"errors"

	"github.com/KarpelesLab/mlpq/mldsa"
)

// partialKey is one party's share of a combined ML-DSA-65 signing key:
// rho and K are identical on both sides (derived from the shared seed
// xi), while s1/s2 are each party's own additive share and t0/t1/tr are
// only known once both shares of t have been combined.
type partialKey struct {
	rho [32]byte
	key [32]byte // K
	tr  [64]byte
	t1  [k]ringElement
	s1  [l]ringElement
	s2  [k]ringElement
	t0  [k]ringElement
	a   [k * l]nttElement
}

// ClientKey is the client's share of a combined ML-DSA-65 signing key.
type ClientKey struct{ partialKey }

// ServerKey is the server's share of a combined ML-DSA-65 signing key.
type ServerKey struct{ partialKey }

// ClientKeyGenCtx holds the client's half of a key generation round,
// produced by ClientKeyGen0 and consumed by ClientKeyGen1 once the
// server's share of t has been received.
type ClientKeyGenCtx struct {
	clientT [k]ringElement
	partial partialKey
}

// partialKeyGen derives the shared (rho, K) and this party's own secret
// vectors s1/s2 from xi and r, and returns this party's share of t = A*s1+s2.
// Implements the keygen half of the additive-sharing protocol, grounded
// on partial_keygen_internal in the original source.
func partialKeyGen(xi, r []byte) (partialKey, [k]ringElement) {
	var pk partialKey

	h := sha3.NewSHAKE256()
	h.Write(xi)
	h.Write([]byte{k, l})

	var rhoPrimeDiscard [64]byte
	h.Read(pk.rho[:])
	h.Read(rhoPrimeDiscard[:]) // positional placeholder only; this party uses r, not rho', for s1/s2
	h.Read(pk.key[:])

	for i := 0; i < k; i++ {
		for j := 0; j < l; j++ {
			pk.a[i*l+j] = sampleNTTPoly(pk.rho[:], byte(j), byte(i))
		}
	}

	for i := 0; i < l; i++ {
		pk.s1[i] = sampleBoundedPoly(r, shareEta, uint16(i))
	}
	for i := 0; i < k; i++ {
		pk.s2[i] = sampleBoundedPoly(r, shareEta, uint16(l+i))
	}

	var s1NTT [l]nttElement
	for i := 0; i < l; i++ {
		s1NTT[i] = ntt(pk.s1[i])
	}

	var t [k]ringElement
	for i := 0; i < k; i++ {
		var acc nttElement
		for j := 0; j < l; j++ {
			acc = polyAdd(acc, nttMul(pk.a[i*l+j], s1NTT[j]))
		}
		t[i] = polyAdd(invNTT(acc), pk.s2[i])
	}
	return pk, t
}

// encodePublicKey packs rho || ByteEncode10(t1), the standard ML-DSA-65
// public key encoding.
func encodePublicKey(rho [32]byte, t1 [k]ringElement) []byte {
	b := make([]byte, PublicKeySize)
	copy(b[:32], rho[:])
	offset := 32
	for i := 0; i < k; i++ {
		copy(b[offset:], packT1(t1[i]))
		offset += encodingSize10
	}
	return b
}

func computeTr(rho [32]byte, t1 [k]ringElement) [64]byte {
	h := sha3.NewSHAKE256()
	h.Write(encodePublicKey(rho, t1))
	var tr [64]byte
	h.Read(tr[:])
	return tr
}

// ClientKeyGen0 starts a key generation round on the client side: xi is
// the seed shared with the server (e.g. agreed out of band), r is the
// client's own randomness for its secret share.
func ClientKeyGen0(xi, r []byte) (*ClientKeyGenCtx, error) {
	if len(xi) != SeedSize {
		return nil, errors.New("mldsatpc: invalid xi length")
	}
	if len(r) != RSize {
		return nil, errors.New("mldsatpc: invalid r length")
	}
	partial, t := partialKeyGen(xi, r)
	return &ClientKeyGenCtx{clientT: t, partial: partial}, nil
}

// ClientT returns the client's share of t, to be sent to the server.
func (ctx *ClientKeyGenCtx) ClientT() [k]ringElement { return ctx.clientT }

// ServerKeyGen runs the server side of key generation given the client's
// share of t, returning the server's key share and its own share of t to
// send back to the client.
func ServerKeyGen(xi, r []byte, clientT [k]ringElement) (*ServerKey, [k]ringElement, error) {
	if len(xi) != SeedSize {
		return nil, [k]ringElement{}, errors.New("mldsatpc: invalid xi length")
	}
	if len(r) != RSize {
		return nil, [k]ringElement{}, errors.New("mldsatpc: invalid r length")
	}

	partial, serverT := partialKeyGen(xi, r)

	var combined [k]ringElement
	for i := range combined {
		combined[i] = polyAdd(serverT[i], clientT[i])
	}
	for i := 0; i < k; i++ {
		for j := 0; j < n; j++ {
			partial.t1[i][j], partial.t0[i][j] = power2Round(combined[i][j])
		}
	}
	partial.tr = computeTr(partial.rho, partial.t1)

	return &ServerKey{partial}, serverT, nil
}

// Tr returns H(pk), to be checked by the client against its own
// independently-computed value.
func (sk *ServerKey) Tr() [64]byte { return sk.tr }

// ClientKeyGen1 finishes key generation on the client side: serverT is
// the server's share of t, serverTr is the server's computed H(pk). If
// the client's own computed tr disagrees, the two parties built different
// public keys and ErrPublicKeyMismatch is returned.
func (ctx *ClientKeyGenCtx) ClientKeyGen1(serverT [k]ringElement, serverTr [64]byte) (*ClientKey, error) {
	partial := ctx.partial

	var combined [k]ringElement
	for i := range combined {
		combined[i] = polyAdd(ctx.clientT[i], serverT[i])
	}
	for i := 0; i < k; i++ {
		for j := 0; j < n; j++ {
			partial.t1[i][j], partial.t0[i][j] = power2Round(combined[i][j])
		}
	}
	partial.tr = computeTr(partial.rho, partial.t1)

	if partial.tr != serverTr {
		return nil, ErrPublicKeyMismatch
	}
	return &ClientKey{partial}, nil
}

// PublicKeyBytes returns the encoded ML-DSA-65 public key for this share.
func (ck *ClientKey) PublicKeyBytes() []byte { return encodePublicKey(ck.rho, ck.t1) }

// PublicKey returns the combined public key as a standard mldsa.PublicKey65,
// usable with its own Verify method on any signature this package produces.
// ClientKeyGen1 already derived rho, t1, A and tr while running the
// protocol, so this assembles the mldsa.PublicKey65 directly from those
// parts (mldsa.NewPublicKey65FromParts) instead of round-tripping through
// PublicKeyBytes and re-sampling A a second time.
func (ck *ClientKey) PublicKey() (*mldsa.PublicKey65, error) {
	return mldsa.NewPublicKey65FromParts(ck.rho, ck.t1, ck.a, ck.tr), nil
}
