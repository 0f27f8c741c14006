package mlkem

import "io"

// EncapsulationKeySize1024 is the encoded size of an ML-KEM-1024 encapsulation key.
const EncapsulationKeySize1024 = 1568

// DecapsulationKeySize1024 is the encoded size of an ML-KEM-1024 decapsulation key.
const DecapsulationKeySize1024 = 3168

// CiphertextSize1024 is the encoded size of an ML-KEM-1024 ciphertext.
const CiphertextSize1024 = 1568

// GenerateKey1024 generates a new ML-KEM-1024 key pair.
func GenerateKey1024(rand io.Reader) (*DecapsulationKey, error) {
	return generateKey(rand, params1024)
}

// ParseEncapsulationKey1024 decodes an ML-KEM-1024 encapsulation key.
func ParseEncapsulationKey1024(b []byte) (*EncapsulationKey, error) {
	return parseEncapsulationKey(b, params1024)
}

// ParseDecapsulationKey1024 decodes an ML-KEM-1024 decapsulation key.
func ParseDecapsulationKey1024(b []byte) (*DecapsulationKey, error) {
	return parseDecapsulationKey(b, params1024)
}
