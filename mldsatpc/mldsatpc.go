// Package mldsatpc implements a two-party variant of ML-DSA-65 in which
// the signing key is additively shared between a client and a server: no
// single party ever holds a complete ML-DSA private key, but the two
// together can jointly produce a signature that verifies against a
// standard ML-DSA-65 public key.
//
// The protocol runs in two three-message rounds. Key generation:
//
//	ctx, _   := ClientKeyGen0(xi, clientR)
//	server, serverT, _ := ServerKeyGen(xi, serverR, ctx.ClientT())
//	clientKey, _ := ctx.ClientKeyGen1(serverT, server.Tr())
//
// Signing (resampled on ErrServerCheckFailed, which FIPS 204's own
// rejection-sampling loop makes an expected, non-terminal outcome):
//
//	for {
//	    sctx, _ := ClientSign0(clientKey, clientRnd, msg, nil)
//	    serverW, serverZ, serverCS2, err := server.ServerSign(serverRnd, msg, nil, sctx.Mu(), sctx.W())
//	    sig, err := sctx.ClientSign1(clientKey, serverW, serverZ, serverCS2)
//	    if err == nil {
//	        break
//	    }
//	    clientRnd, serverRnd = freshRandom(), freshRandom()
//	}
//
// The resulting signature verifies against the combined public key with
// the standard mldsa.PublicKey65.Verify, including the same context
// argument passed to ClientSign0/ServerSign.
//
// Only ML-DSA-65 parameters are supported, matching the scheme this
// package's protocol was adapted from.
package mldsatpc

import (
	"errors"

	"github.com/KarpelesLab/mlpq/internal/dsaring"
)

const (
	n = dsaring.N

	k     = 6
	l     = 5
	eta   = 4
	tau   = 49
	beta  = eta * tau
	omega = 55

	// shareEta is the CBD parameter each party samples its own s1/s2
	// share with during key generation; the two parties' shares add to a
	// combined secret with the full eta bound above.
	shareEta = eta / 2

	gamma1Bits = 19
	gamma1     = 1 << gamma1Bits
	gamma2     = dsaring.Gamma2QMinus1Div32
	lambda     = 192

	// SeedSize is the size in bytes of each party's long-term seed (xi).
	SeedSize = 32
	// RSize is the size in bytes of the per-party randomness (r) consumed
	// by ClientKeyGen0/ServerKeyGen in place of a single rho_prime.
	RSize = 64
	// RndSize is the size in bytes of the per-signature randomness each
	// party contributes (client_rnd / server_rnd).
	RndSize = 32

	encodingSize4  = dsaring.EncodingSize4
	encodingSize10 = dsaring.EncodingSize10
	encodingSize13 = dsaring.EncodingSize13
	encodingSize20 = dsaring.EncodingSize20

	// PublicKeySize is the encoded size of the combined ML-DSA-65 public key.
	PublicKeySize = 32 + k*n*10/8
	// SignatureSize is the encoded size of a combined ML-DSA-65 signature.
	SignatureSize = lambda/4 + l*n*20/8 + omega + k
)

// Errors returned by this package.
var (
	// ErrPublicKeyMismatch is returned by ClientKeyGen1 when the server's
	// reported tr does not match the client's locally computed tr, meaning
	// the two parties disagree on the combined public key.
	ErrPublicKeyMismatch = errors.New("mldsatpc: public key mismatch between client and server")

	// ErrServerCheckFailed is returned by ClientSign1 (or ServerSign) when
	// a round's shared masking/error values produced a signature share
	// outside the bounds ML-DSA's rejection-sampling loop requires. The
	// caller should resample client_rnd/server_rnd and retry.
	ErrServerCheckFailed = errors.New("mldsatpc: signing round rejected, resample and retry")
)
