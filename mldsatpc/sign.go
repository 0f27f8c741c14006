package mldsatpc

import (
	"crypto/sha3"
	"errors"
)

// ClientSignCtx holds the client's state for one round of the signing
// protocol, produced by ClientSign0 and consumed by ClientSign1 once the
// server's contribution has been received.
type ClientSignCtx struct {
	sharedErr [k]ringElement // shared error, derived identically by both parties from rho'''
	ownErr    [k]ringElement // client's own error share, from rho''
	maskErr   [k]ringElement // sharedErr + ownErr, folded into w
	y         [l]ringElement
	w         [k]ringElement
	mu        [64]byte
}

// Mu returns H(tr || M'), to be checked against the server's own value.
func (ctx *ClientSignCtx) Mu() [64]byte { return ctx.mu }

// W returns the client's share of w = A*y + e1, to be sent to the server.
func (ctx *ClientSignCtx) W() [k]ringElement { return ctx.w }

// expandErrorVector fills dst with k CBD(eta) samples from seed, starting
// at nonce nonceBase.
func expandErrorVector(dst *[k]ringElement, seed []byte, nonceBase int) {
	for i := range dst {
		dst[i] = sampleBoundedPoly(seed, eta, uint16(nonceBase+i))
	}
}

// expandMaskVector fills a masking vector of size l from seed (64 bytes),
// per-component nonce starting at nonceBase, matching mldsa's own
// ExpandMask usage (a 2-byte nonce appended to the 64-byte seed).
func expandMaskVector(seed []byte, nonceBase int) [l]ringElement {
	var seedBuf [66]byte
	copy(seedBuf[:64], seed)
	var y [l]ringElement
	for i := range y {
		nonce := nonceBase + i
		seedBuf[64] = byte(nonce)
		seedBuf[65] = byte(nonce >> 8)
		y[i] = expandMask(seedBuf[:], gamma1Bits)
	}
	return y
}

// encodeMessage builds M' = 0 || len(context) || context || msg, the same
// context-binding envelope mldsa.PublicKey65.Verify expects.
func encodeMessage(msg, context []byte) ([]byte, error) {
	if len(context) > 255 {
		return nil, errors.New("mldsatpc: context too long")
	}
	mPrime := make([]byte, 2+len(context)+len(msg))
	mPrime[0] = 0
	mPrime[1] = byte(len(context))
	copy(mPrime[2:], context)
	copy(mPrime[2+len(context):], msg)
	return mPrime, nil
}

// ClientSign0 starts a signing round: clientRnd is the client's fresh
// per-round randomness, msg is the message to sign and context is the
// optional ML-DSA context string (see mldsa.PublicKey65.Verify).
func ClientSign0(clientKey *ClientKey, clientRnd [32]byte, msg, context []byte) (*ClientSignCtx, error) {
	var ctx ClientSignCtx

	mPrime, err := encodeMessage(msg, context)
	if err != nil {
		return nil, err
	}

	h := sha3.NewSHAKE256()
	h.Write(clientKey.tr[:])
	h.Write(mPrime)
	h.Read(ctx.mu[:])

	var rhoPP [64]byte
	h.Reset()
	h.Write(clientKey.key[:])
	h.Write(clientRnd[:])
	h.Write(ctx.mu[:])
	h.Read(rhoPP[:])

	var rhoPPP [64]byte
	h.Reset()
	h.Write(clientKey.key[:])
	h.Write(ctx.mu[:])
	h.Read(rhoPPP[:])

	expandErrorVector(&ctx.sharedErr, rhoPPP[:], 0)

	ctx.y = expandMaskVector(rhoPP[:], 0)
	expandErrorVector(&ctx.ownErr, rhoPP[:], l)

	for i := 0; i < k; i++ {
		ctx.maskErr[i] = polyAdd(ctx.sharedErr[i], ctx.ownErr[i])
	}

	var yNTT [l]nttElement
	for i := 0; i < l; i++ {
		yNTT[i] = ntt(ctx.y[i])
	}

	for i := 0; i < k; i++ {
		var acc nttElement
		for j := 0; j < l; j++ {
			acc = polyAdd(acc, nttMul(clientKey.a[i*l+j], yNTT[j]))
		}
		ctx.w[i] = polyAdd(invNTT(acc), ctx.maskErr[i])
	}

	return &ctx, nil
}

// ServerSign runs one signing round on the server side, stateless aside
// from serverRnd: the caller supplies a fresh serverRnd for every call. It
// returns this round's contribution (serverW, serverZ, serverCS2) for the
// client to combine in ClientSign1, or ErrServerCheckFailed if clientMu
// does not match the server's own H(tr || M').
func (sk *ServerKey) ServerSign(serverRnd [32]byte, msg, context []byte, clientMu [64]byte, clientW [k]ringElement) (serverW [k]ringElement, serverZ [l]ringElement, serverCS2 [k]ringElement, err error) {
	mPrime, err := encodeMessage(msg, context)
	if err != nil {
		return serverW, serverZ, serverCS2, err
	}

	var mu [64]byte
	h := sha3.NewSHAKE256()
	h.Write(sk.tr[:])
	h.Write(mPrime)
	h.Read(mu[:])

	if mu != clientMu {
		return serverW, serverZ, serverCS2, ErrServerCheckFailed
	}

	var rhoPP [64]byte
	h.Reset()
	h.Write(sk.key[:])
	h.Write(serverRnd[:])
	h.Write(mu[:])
	h.Read(rhoPP[:])

	var rhoPPP [64]byte
	h.Reset()
	h.Write(sk.key[:])
	h.Write(mu[:])
	h.Read(rhoPPP[:])

	var sharedErr, ownErr, combinedErr [k]ringElement
	expandErrorVector(&sharedErr, rhoPPP[:], 0)

	y := expandMaskVector(rhoPP[:], 0)
	expandErrorVector(&ownErr, rhoPP[:], l)

	for i := 0; i < k; i++ {
		combinedErr[i] = polyAdd(sharedErr[i], ownErr[i])
	}

	var yNTT [l]nttElement
	for i := 0; i < l; i++ {
		yNTT[i] = ntt(y[i])
	}

	var w1 [k]ringElement
	for i := 0; i < k; i++ {
		var acc nttElement
		for j := 0; j < l; j++ {
			acc = polyAdd(acc, nttMul(sk.a[i*l+j], yNTT[j]))
		}
		serverW[i] = polyAdd(invNTT(acc), ownErr[i])
		w1[i] = polyAdd(clientW[i], serverW[i])
	}

	var w1High [k]ringElement
	for i := 0; i < k; i++ {
		for j := 0; j < n; j++ {
			w1High[i][j] = fieldElement(highBits(w1[i][j], gamma2))
		}
	}

	hh := sha3.NewSHAKE256()
	hh.Write(mu[:])
	for i := 0; i < k; i++ {
		hh.Write(packW1_4(w1High[i]))
	}
	var cTilde [lambda / 4]byte
	hh.Read(cTilde[:])

	c := sampleChallenge(cTilde[:], tau)
	cNTT := ntt(c)

	for i := 0; i < l; i++ {
		cs1 := invNTT(nttMul(cNTT, ntt(sk.s1[i])))
		serverZ[i] = polyAdd(cs1, y[i])
	}

	for i := 0; i < k; i++ {
		cs2 := invNTT(nttMul(cNTT, ntt(sk.s2[i])))
		serverCS2[i] = polyAdd(cs2, combinedErr[i])
	}

	return serverW, serverZ, serverCS2, nil
}

// ClientSign1 finishes a signing round given the server's contribution.
// It performs the full FIPS 204 rejection-sampling bounds checks against
// the combined (client+server) values and returns ErrServerCheckFailed if
// any bound is violated or the hint weight exceeds omega — the caller
// should resample both parties' round randomness and retry.
func (ctx *ClientSignCtx) ClientSign1(clientKey *ClientKey, serverW [k]ringElement, serverZ [l]ringElement, serverCS2 [k]ringElement) ([]byte, error) {
	var w [k]ringElement
	var w1High [k]ringElement
	for i := 0; i < k; i++ {
		w[i] = polyAdd(ctx.w[i], serverW[i])
		for j := 0; j < n; j++ {
			w1High[i][j] = fieldElement(highBits(w[i][j], gamma2))
		}
	}

	h := sha3.NewSHAKE256()
	h.Write(ctx.mu[:])
	for i := 0; i < k; i++ {
		h.Write(packW1_4(w1High[i]))
	}
	var cTilde [lambda / 4]byte
	h.Read(cTilde[:])

	c := sampleChallenge(cTilde[:], tau)
	cNTT := ntt(c)

	var clientZ [l]ringElement
	for i := 0; i < l; i++ {
		cs1 := invNTT(nttMul(cNTT, ntt(clientKey.s1[i])))
		clientZ[i] = polyAdd(cs1, ctx.y[i])
	}

	var z [l]ringElement
	for i := 0; i < l; i++ {
		z[i] = polyAdd(clientZ[i], serverZ[i])
	}

	var cs2 [k]ringElement
	for i := 0; i < k; i++ {
		ownCS2 := invNTT(nttMul(cNTT, ntt(clientKey.s2[i])))
		ownCS2 = polyAdd(ownCS2, ctx.ownErr[i])
		cs2[i] = polyAdd(ownCS2, serverCS2[i])
	}

	if vectorInfinityNorm(z[:]) >= gamma1-beta {
		return nil, ErrServerCheckFailed
	}

	var wMinusCS2 [k]ringElement
	var r0 [k][n]int32
	for i := 0; i < k; i++ {
		wMinusCS2[i] = polySub(w[i], cs2[i])
		for j := 0; j < n; j++ {
			_, r0[i][j] = decompose(wMinusCS2[i][j], gamma2)
		}
	}
	if vectorInfinityNormSigned(r0[:]) >= int32(gamma2-beta-3*eta) {
		return nil, ErrServerCheckFailed
	}

	var ct0 [k]ringElement
	for i := 0; i < k; i++ {
		ct0[i] = invNTT(nttMul(cNTT, ntt(clientKey.t0[i])))
	}
	if vectorInfinityNorm(ct0[:]) >= gamma2 {
		return nil, ErrServerCheckFailed
	}

	var hints [k]ringElement
	for i := 0; i < k; i++ {
		for j := 0; j < n; j++ {
			hints[i][j] = makeHint(ct0[i][j], wMinusCS2[i][j], gamma2)
		}
	}
	if countOnes(hints[:]) > omega {
		return nil, ErrServerCheckFailed
	}

	sig := make([]byte, SignatureSize)
	copy(sig[:len(cTilde)], cTilde[:])
	offset := len(cTilde)
	for i := 0; i < l; i++ {
		copy(sig[offset:], packZ19(z[i]))
		offset += encodingSize20
	}
	copy(sig[offset:], packHint(hints[:], omega))
	return sig, nil
}
