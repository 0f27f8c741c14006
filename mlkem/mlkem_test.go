package mlkem

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundTrip512(t *testing.T)  { testRoundTrip(t, GenerateKey512) }
func TestRoundTrip768(t *testing.T)  { testRoundTrip(t, GenerateKey768) }
func TestRoundTrip1024(t *testing.T) { testRoundTrip(t, GenerateKey1024) }

func testRoundTrip(t *testing.T, generate func(io.Reader) (*DecapsulationKey, error)) {
	dk, err := generate(rand.Reader)
	require.NoError(t, err)
	require.NotNil(t, dk)

	ek := dk.EncapsulationKey()
	ct, ss1, err := ek.Encapsulate(rand.Reader)
	require.NoError(t, err)

	ss2, err := dk.Decapsulate(ct)
	require.NoError(t, err)
	require.Equal(t, ss1, ss2)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	dk, err := GenerateKey768(rand.Reader)
	require.NoError(t, err)

	dkBytes := dk.Bytes()
	require.Len(t, dkBytes, DecapsulationKeySize768)

	dk2, err := ParseDecapsulationKey768(dkBytes)
	require.NoError(t, err)

	ek := dk.EncapsulationKey()
	ekBytes := ek.Bytes()
	require.Len(t, ekBytes, EncapsulationKeySize768)

	ek2, err := ParseEncapsulationKey768(ekBytes)
	require.NoError(t, err)

	ct, ss1, err := ek2.Encapsulate(rand.Reader)
	require.NoError(t, err)

	ss2, err := dk2.Decapsulate(ct)
	require.NoError(t, err)
	require.Equal(t, ss1, ss2)
}

func TestDecapsulationKeyHashMismatch(t *testing.T) {
	dk, err := GenerateKey512(rand.Reader)
	require.NoError(t, err)

	b := dk.Bytes()
	b[DecapsulationKeySize512-33] ^= 0xff // corrupt a byte of H(ek)

	_, err = ParseDecapsulationKey512(b)
	require.ErrorIs(t, err, ErrDecapKeyDecode)
}

func TestCiphertextWrongSize(t *testing.T) {
	dk, err := GenerateKey1024(rand.Reader)
	require.NoError(t, err)

	_, err = dk.Decapsulate(make([]byte, CiphertextSize1024-1))
	require.ErrorIs(t, err, ErrCiphertextSize)
}

func TestByteDecodeOverflow(t *testing.T) {
	_, err := byteDecode(make([]byte, 32*12), 12)
	require.NoError(t, err)

	overflow := make([]byte, 32*12)
	for i := range overflow {
		overflow[i] = 0xff
	}
	_, err = byteDecode(overflow, 12)
	require.ErrorIs(t, err, ErrByteDecodeOverflow)
}
