// Package mlkem implements ML-KEM (Module-Lattice Key Encapsulation
// Mechanism) as specified in FIPS 203.
//
// ML-KEM is a post-quantum key encapsulation mechanism standardized by
// NIST. This package supports three security levels:
//   - ML-KEM-512:  NIST security level 1
//   - ML-KEM-768:  NIST security level 3
//   - ML-KEM-1024: NIST security level 5
//
// Basic usage:
//
//	dk, err := mlkem.GenerateKey768(rand.Reader)
//	if err != nil {
//	    // handle error
//	}
//	ek := dk.EncapsulationKey()
//	ct, sharedSecret, err := ek.Encapsulate(rand.Reader)
//	...
//	sharedSecret2, err := dk.Decapsulate(ct)
package mlkem

import "errors"

// n is the number of coefficients in a polynomial.
const n = 256

// q is the ML-KEM modulus.
const q = 3329

// SeedSize is the size in bytes of the random seed (d) consumed by GenerateKey.
const SeedSize = 32

// ImplicitRejectionSeedSize is the size in bytes of the random seed (z)
// used for implicit rejection on decapsulation failure.
const ImplicitRejectionSeedSize = 32

// Errors returned by this package. They are surfaced to the caller, never
// retried internally.
var (
	// ErrByteDecodeOverflow is returned when a 12-bit encoded coefficient
	// of an encapsulation key is >= q.
	ErrByteDecodeOverflow = errors.New("mlkem: encoded coefficient out of range")

	// ErrDecapKeyDecode is returned when a decapsulation key's embedded
	// hash of its encapsulation key does not match a freshly computed hash.
	ErrDecapKeyDecode = errors.New("mlkem: decapsulation key hash mismatch")

	// ErrCiphertextSize is returned when a ciphertext does not have the
	// expected length for the scheme's (du, dv, k).
	ErrCiphertextSize = errors.New("mlkem: invalid ciphertext size")

	// ErrEncapsulationKeySize / ErrDecapsulationKeySize are returned when
	// decoding a byte slice of the wrong length.
	ErrEncapsulationKeySize = errors.New("mlkem: invalid encapsulation key size")
	ErrDecapsulationKeySize = errors.New("mlkem: invalid decapsulation key size")
)

// params bundles the per-level constants that parameterize every
// operation below. Unlike mldsa's per-level concrete struct duplication,
// mlkem's vectors and matrices are slices sized by k at construction time,
// since k also drives the encoded key and ciphertext sizes rather than
// just the dimensions of a couple of fixed arrays.
type params struct {
	k    int
	eta1 int
	eta2 int
	du   int
	dv   int
}

var (
	params512  = params{k: 2, eta1: 3, eta2: 2, du: 10, dv: 4}
	params768  = params{k: 3, eta1: 2, eta2: 2, du: 10, dv: 4}
	params1024 = params{k: 4, eta1: 2, eta2: 2, du: 11, dv: 5}
)

// encapsulationKeySize returns the encoded size of an encapsulation key:
// ByteEncode12(t_hat) || rho.
func (p params) encapsulationKeySize() int { return 384*p.k + 32 }

// decapsulationKeySize returns the encoded size of a decapsulation key:
// ByteEncode12(s_hat) || ek || H(ek) || z.
func (p params) decapsulationKeySize() int { return 384*p.k + p.encapsulationKeySize() + 32 + 32 }

// ciphertextSize returns 32*(du*k + dv).
func (p params) ciphertextSize() int { return 32 * (p.du*p.k + p.dv) }
