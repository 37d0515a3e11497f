package keyring

import (
	"keyring/internal/crypto"
	"keyring/internal/util/memzero"
)

// DerivePathKey deterministically derives a key for path from the
// encrypting identity's private scalar:
//
//	seed = Keccak256(encryptingPrivate || path)
//
// With wantPublic false the 32-byte seed is returned as the derived private
// key. With wantPublic true the seed is mapped through the configured proxy
// re-encryption algorithm's private-to-public transform, so a delegate
// holding only the path can recompute and check the public point without
// ever seeing the derived scalar.
//
// An empty path is legal and yields the derivation of the bare private key.
func (k *KeyRing) DerivePathKey(path []byte, wantPublic bool) ([]byte, error) {
	seed := crypto.Keccak256(k.enc.Private().Slice(), path)
	if !wantPublic {
		return seed[:], nil
	}
	pub, err := k.alg.Priv2Pub(seed[:])
	memzero.Zero(seed[:])
	if err != nil {
		return nil, err
	}
	return pub, nil
}
