// Package dsaring implements the Z_q polynomial ring R_q = Z_q[x]/(x^256+1)
// used by ML-DSA (FIPS 204), q = 8380417, shared by the mldsa and mldsatpc
// packages. It is not importable outside this module.
package dsaring

// N is the number of coefficients in a polynomial.
const N = 256

// Q is the ML-DSA modulus: 2^23 - 2^13 + 1.
const Q = 8380417

// D is the number of bits dropped from t by Power2Round.
const D = 13

// QMinus1Div2 is (Q-1)/2, the canonical signed/unsigned split point.
const QMinus1Div2 = (Q - 1) / 2

// Gamma2 values for the two supported decomposition moduli.
const (
	Gamma2QMinus1Div88 = (Q - 1) / 88 // ML-DSA-44
	Gamma2QMinus1Div32 = (Q - 1) / 32 // ML-DSA-65, ML-DSA-87
)

// Encoding sizes in bytes per polynomial for each bit width used across
// the parameter sets.
const (
	EncodingSize3  = N * 3 / 8
	EncodingSize4  = N * 4 / 8
	EncodingSize6  = N * 6 / 8
	EncodingSize10 = N * 10 / 8
	EncodingSize13 = N * 13 / 8
	EncodingSize18 = N * 18 / 8
	EncodingSize20 = N * 20 / 8
)
