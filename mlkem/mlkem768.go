package mlkem

import "io"

// EncapsulationKeySize768 is the encoded size of an ML-KEM-768 encapsulation key.
const EncapsulationKeySize768 = 1184

// DecapsulationKeySize768 is the encoded size of an ML-KEM-768 decapsulation key.
const DecapsulationKeySize768 = 2400

// CiphertextSize768 is the encoded size of an ML-KEM-768 ciphertext.
const CiphertextSize768 = 1088

// GenerateKey768 generates a new ML-KEM-768 key pair.
func GenerateKey768(rand io.Reader) (*DecapsulationKey, error) {
	return generateKey(rand, params768)
}

// ParseEncapsulationKey768 decodes an ML-KEM-768 encapsulation key.
func ParseEncapsulationKey768(b []byte) (*EncapsulationKey, error) {
	return parseEncapsulationKey(b, params768)
}

// ParseDecapsulationKey768 decodes an ML-KEM-768 decapsulation key.
func ParseDecapsulationKey768(b []byte) (*DecapsulationKey, error) {
	return parseDecapsulationKey(b, params768)
}
