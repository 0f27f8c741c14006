package mldsatpc

import "github.com/KarpelesLab/mlpq/internal/dsaring"

type (
	fieldElement = dsaring.FieldElement
	ringElement  = dsaring.RingElement
	nttElement   = dsaring.NTTElement
)

var (
	fieldAdd                 = dsaring.FieldAdd
	fieldSub                 = dsaring.FieldSub
	ntt                      = dsaring.NTT
	invNTT                   = dsaring.InvNTT
	nttMul                   = dsaring.NTTMul
	power2Round              = dsaring.Power2Round
	highBits                 = dsaring.HighBits
	decompose                = dsaring.Decompose
	makeHint                 = dsaring.MakeHint
	useHint                  = dsaring.UseHint
	vectorInfinityNormSigned = dsaring.VectorInfinityNormSigned
	sampleNTTPoly            = dsaring.SampleNTTPoly
	sampleBoundedPoly        = dsaring.SampleBoundedPoly
	sampleChallenge          = dsaring.SampleChallenge
	expandMask               = dsaring.ExpandMask
	packT1                   = dsaring.PackT1
	unpackT1                 = dsaring.UnpackT1
	packT0                   = dsaring.PackT0
	packEta4                 = dsaring.PackEta4
	packZ19                  = dsaring.PackZ19
	unpackZ19Sig             = dsaring.UnpackZ19Sig
	packW1_4                 = dsaring.PackW1_4
)

func polyAdd[T ~[n]fieldElement](a, b T) T { return dsaring.PolyAdd(a, b) }
func polySub[T ~[n]fieldElement](a, b T) T { return dsaring.PolySub(a, b) }
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
