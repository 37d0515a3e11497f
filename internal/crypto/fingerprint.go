package crypto

import "github.com/mr-tron/base58"

// Fingerprint returns a short base58 fingerprint of a public key.
//
// It hashes with Keccak-256 and truncates to 10 bytes before encoding.
func Fingerprint(pub []byte) string {
	sum := Keccak256(pub)
	return base58.Encode(sum[:10])
}
