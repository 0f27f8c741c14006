//go:build go1.25

package mldsa

import "crypto"

// Compile-time interface assertion for crypto.MessageSigner (Go 1.25+).
// PrivateKey44 and PrivateKey87 have no SignMessage method and do not
// implement it.
var _ crypto.MessageSigner = (*PrivateKey65)(nil)
