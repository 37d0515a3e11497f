package crypto

import (
	"golang.org/x/crypto/sha3"

	"keyring/internal/domain"
)

// Keccak256 returns the legacy Keccak-256 digest of the concatenation of
// all chunks. This is the pre-NIST padding variant, not SHA3-256.
func Keccak256(chunks ...[]byte) [domain.DigestSize]byte {
	h := sha3.NewLegacyKeccak256()
	for _, c := range chunks {
		h.Write(c)
	}
	var out [domain.DigestSize]byte
	copy(out[:], h.Sum(nil))
	return out
}
