// Package crypto exposes the minimal primitives used by the keyring.
//
// Contents
//
//   - Keccak-256 digesting for signatures and path derivation (Keccak256)
//   - ECDSA over secp256k1 keypairs, signing and verification (ECDSA)
//   - NaCl-box public-key encryption with per-message nonces (Box)
//   - Cryptographically secure random bytes (RandomBytes)
//   - Short base58 public-key fingerprints for display (Fingerprint)
//
// # Notes
//
// The ECDSA and Box types implement the domain.SignatureScheme and
// domain.PublicKeyCipher capability interfaces; the keyring facade only
// touches them through those contracts. Callers should treat returned
// private material as sensitive and rely on memzero when practical to
// reduce lifetime in memory.
package crypto
