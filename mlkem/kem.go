package mlkem

import (
	"crypto/subtle"
	"io"
)

// EncapsulationKey is the public half of an ML-KEM key pair.
type EncapsulationKey struct {
	p   params
	a   [][]nttElement
	rho []byte
	t   []nttElement
	h   [32]byte
}

// DecapsulationKey is the private half of an ML-KEM key pair.
type DecapsulationKey struct {
	ek *EncapsulationKey
	s  []nttElement
	z  []byte
}

// generateKey implements ML-KEM.KeyGen (FIPS 203 Algorithm 16/19): draw a
// fresh seed pair (d, z) from rand and derive a key pair from it.
func generateKey(rand io.Reader, p params) (*DecapsulationKey, error) {
	d := make([]byte, SeedSize)
	if _, err := io.ReadFull(rand, d); err != nil {
		return nil, err
	}
	z := make([]byte, ImplicitRejectionSeedSize)
	if _, err := io.ReadFull(rand, z); err != nil {
		return nil, err
	}
	return keyGenInternal(d, z, p), nil
}

// keyGenInternal implements ML-KEM.KeyGen_internal (FIPS 203 Algorithm 16).
func keyGenInternal(d, z []byte, p params) *DecapsulationKey {
	rho, a, t, s := pkeKeyGen(d, p)

	ek := &EncapsulationKey{p: p, a: a, rho: rho, t: t}
	ek.h = hashH(ek.bytes())

	return &DecapsulationKey{ek: ek, s: s, z: append([]byte(nil), z...)}
}

// bytes encodes the encapsulation key as ByteEncode12(t_hat) || rho.
func (ek *EncapsulationKey) bytes() []byte {
	out := make([]byte, 0, ek.p.encapsulationKeySize())
	for _, ti := range ek.t {
		out = append(out, byteEncode(ringElement(ti), 12)...)
	}
	out = append(out, ek.rho...)
	return out
}

// Bytes returns the encoded encapsulation key.
func (ek *EncapsulationKey) Bytes() []byte { return ek.bytes() }

// parseEncapsulationKey implements ML-KEM.ByteDecode for encapsulation
// keys, regenerating the public matrix A from rho.
func parseEncapsulationKey(b []byte, p params) (*EncapsulationKey, error) {
	if len(b) != p.encapsulationKeySize() {
		return nil, ErrEncapsulationKeySize
	}
	t := make([]nttElement, p.k)
	for i := range t {
		f, err := byteDecode(b[384*i:384*(i+1)], 12)
		if err != nil {
			return nil, err
		}
		t[i] = nttElement(f)
	}
	rho := append([]byte(nil), b[384*p.k:]...)

	ek := &EncapsulationKey{p: p, t: t, rho: rho}
	ek.a = sampleMatrix(rho, p.k)
	ek.h = hashH(b)
	return ek, nil
}

// Encapsulate implements ML-KEM.Encaps (FIPS 203 Algorithm 17/20): derive a
// shared secret and its ciphertext under this encapsulation key.
func (ek *EncapsulationKey) Encapsulate(rand io.Reader) (ciphertext, sharedSecret []byte, err error) {
	m := make([]byte, 32)
	if _, err := io.ReadFull(rand, m); err != nil {
		return nil, nil, err
	}
	c, K := ek.encapsulateInternal(m)
	return c, K, nil
}

func (ek *EncapsulationKey) encapsulateInternal(m []byte) (ciphertext, sharedSecret []byte) {
	K, r := hashG(m, ek.h[:])
	c := pkeEncrypt(ek.a, ek.t, m, r[:], ek.p)
	return c, K[:]
}

// EncapsulationKey returns the public key corresponding to dk.
func (dk *DecapsulationKey) EncapsulationKey() *EncapsulationKey { return dk.ek }

// Bytes encodes the decapsulation key as ByteEncode12(s_hat) || ek || H(ek) || z.
func (dk *DecapsulationKey) Bytes() []byte {
	out := make([]byte, 0, dk.ek.p.decapsulationKeySize())
	for _, si := range dk.s {
		out = append(out, byteEncode(ringElement(si), 12)...)
	}
	out = append(out, dk.ek.bytes()...)
	out = append(out, dk.ek.h[:]...)
	out = append(out, dk.z...)
	return out
}

// parseDecapsulationKey implements ML-KEM.ByteDecode for decapsulation
// keys, verifying H(ek) matches the embedded hash (ErrDecapKeyDecode on
// mismatch, per the error taxonomy).
func parseDecapsulationKey(b []byte, p params) (*DecapsulationKey, error) {
	if len(b) != p.decapsulationKeySize() {
		return nil, ErrDecapsulationKeySize
	}
	ekOff := 384 * p.k
	ekLen := p.encapsulationKeySize()
	hOff := ekOff + ekLen
	zOff := hOff + 32

	bEk := b[ekOff : ekOff+ekLen]
	bH := b[hOff:zOff]
	z := b[zOff : zOff+32]

	h := hashH(bEk)
	if subtle.ConstantTimeCompare(h[:], bH) != 1 {
		return nil, ErrDecapKeyDecode
	}

	ek, err := parseEncapsulationKey(bEk, p)
	if err != nil {
		return nil, err
	}

	s := make([]nttElement, p.k)
	for i := range s {
		f, err := byteDecode(b[384*i:384*(i+1)], 12)
		if err != nil {
			return nil, err
		}
		s[i] = nttElement(f)
	}

	return &DecapsulationKey{ek: ek, s: s, z: append([]byte(nil), z...)}, nil
}

// Decapsulate implements ML-KEM.Decaps (FIPS 203 Algorithm 18/21), using
// implicit rejection: on ciphertext re-encryption mismatch the shared
// secret is replaced (via constant-time masked select, not a branch) with
// J(z, c) instead of returning an error.
func (dk *DecapsulationKey) Decapsulate(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) != dk.ek.p.ciphertextSize() {
		return nil, ErrCiphertextSize
	}

	m := pkeDecrypt(dk.s, ciphertext, dk.ek.p)
	K, r := hashG(m, dk.ek.h[:])
	Kbar := hashJ(dk.z, ciphertext)

	cp := pkeEncrypt(dk.ek.a, dk.ek.t, m, r[:], dk.ek.p)

	good := subtle.ConstantTimeCompare(ciphertext, cp)
	out := make([]byte, 32)
	subtle.ConstantTimeCopy(good, out, K[:])
	subtle.ConstantTimeCopy(1-good, out, Kbar[:])
	return out, nil
}
