package mldsa

import "github.com/KarpelesLab/mlpq/internal/dsaring"

// fieldElement, ringElement and nttElement are aliases onto the shared
// R_q implementation in internal/dsaring, so that mldsatpc's two-party
// signer and this package's single-party signer operate on the same
// concrete types without this package depending on mldsatpc.
type (
	fieldElement = dsaring.FieldElement
	ringElement  = dsaring.RingElement
	nttElement   = dsaring.NTTElement
)

var (
	fieldReduceOnce          = dsaring.FieldReduceOnce
	fieldAdd                 = dsaring.FieldAdd
	fieldSub                 = dsaring.FieldSub
	fieldMul                 = dsaring.FieldMul
	ntt                      = dsaring.NTT
	invNTT                   = dsaring.InvNTT
	nttMul                   = dsaring.NTTMul
	power2Round              = dsaring.Power2Round
	highBits                 = dsaring.HighBits
	decompose                = dsaring.Decompose
	makeHint                 = dsaring.MakeHint
	useHint                  = dsaring.UseHint
	infinityNorm             = dsaring.InfinityNorm
	vectorInfinityNormSigned = dsaring.VectorInfinityNormSigned
	sampleNTTPoly            = dsaring.SampleNTTPoly
	sampleBoundedPoly        = dsaring.SampleBoundedPoly
	sampleChallenge          = dsaring.SampleChallenge
	expandMask               = dsaring.ExpandMask
	packT1                   = dsaring.PackT1
	unpackT1                 = dsaring.UnpackT1
	packT0                   = dsaring.PackT0
	unpackT0                 = dsaring.UnpackT0
	packEta2                 = dsaring.PackEta2
	unpackEta2               = dsaring.UnpackEta2
	packEta4                 = dsaring.PackEta4
	unpackEta4               = dsaring.UnpackEta4
	packZ17                  = dsaring.PackZ17
	unpackZ17Sig             = dsaring.UnpackZ17Sig
	packZ19                  = dsaring.PackZ19
	unpackZ19Sig             = dsaring.UnpackZ19Sig
	packW1_4                 = dsaring.PackW1_4
	packW1_6                 = dsaring.PackW1_6
)

// The remaining helpers are generic over the polynomial array type and so
// cannot be captured as plain func values; thin wrappers keep every call
// site in mldsa{44,65,87}.go unchanged while the implementation lives in
// internal/dsaring.

func polyAdd[T ~[n]fieldElement](a, b T) T { return dsaring.PolyAdd(a, b) }
func polySub[T ~[n]fieldElement](a, b T) T { return dsaring.PolySub(a, b) }

func polyInfinityNorm[T ~[n]fieldElement](f T) uint32 { return dsaring.PolyInfinityNorm(f) }

func vectorInfinityNorm[T ~[n]fieldElement](v []T) uint32 {
	return dsaring.VectorInfinityNorm(v)
}

func countOnes[T ~[n]fieldElement](v []T) int { return dsaring.CountOnes(v) }

func packHint[T ~[n]fieldElement](hints []T, omega int) []byte {
	return dsaring.PackHint(hints, omega)
}

func unpackHint[T ~[n]fieldElement](b []byte, hints []T, omega int) bool {
	return dsaring.UnpackHint(b, hints, omega)
}
