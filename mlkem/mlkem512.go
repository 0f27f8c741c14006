package mlkem

import "io"

// EncapsulationKeySize512 is the encoded size of an ML-KEM-512 encapsulation key.
const EncapsulationKeySize512 = 800

// DecapsulationKeySize512 is the encoded size of an ML-KEM-512 decapsulation key.
const DecapsulationKeySize512 = 1632

// CiphertextSize512 is the encoded size of an ML-KEM-512 ciphertext.
const CiphertextSize512 = 768

// GenerateKey512 generates a new ML-KEM-512 key pair.
func GenerateKey512(rand io.Reader) (*DecapsulationKey, error) {
	return generateKey(rand, params512)
}

// ParseEncapsulationKey512 decodes an ML-KEM-512 encapsulation key.
func ParseEncapsulationKey512(b []byte) (*EncapsulationKey, error) {
	return parseEncapsulationKey(b, params512)
}

// ParseDecapsulationKey512 decodes an ML-KEM-512 decapsulation key.
func ParseDecapsulationKey512(b []byte) (*DecapsulationKey, error) {
	return parseDecapsulationKey(b, params512)
}
