package domain

import "fmt"

// Key material sizes, fixed by the chosen primitives.
const (
	// SigningPrivateSize is the secp256k1 private scalar size.
	SigningPrivateSize = 32
	// SigningPublicSize is the compressed secp256k1 point size.
	SigningPublicSize = 33
	// EncryptingPrivateSize is the curve25519 private scalar size.
	EncryptingPrivateSize = 32
	// EncryptingPublicSize is the curve25519 point size.
	EncryptingPublicSize = 32
	// DigestSize is the Keccak-256 output size.
	DigestSize = 32
)

// ------------- Signing (secp256k1) -------------

type SigningPrivate [SigningPrivateSize]byte
type SigningPublic [SigningPublicSize]byte

func (k SigningPrivate) Slice() []byte { return k[:] }
func (k SigningPublic) Slice() []byte  { return k[:] }

func MustSigningPrivate(b []byte) SigningPrivate {
	if len(b) != SigningPrivateSize {
		panic(fmt.Errorf("signing private: want %d bytes, got %d", SigningPrivateSize, len(b)))
	}
	var out SigningPrivate
	copy(out[:], b)
	return out
}

func MustSigningPublic(b []byte) SigningPublic {
	if len(b) != SigningPublicSize {
		panic(fmt.Errorf("signing public: want %d bytes, got %d", SigningPublicSize, len(b)))
	}
	var out SigningPublic
	copy(out[:], b)
	return out
}

// ------------- Encrypting (curve25519) -------------

type EncryptingPrivate [EncryptingPrivateSize]byte
type EncryptingPublic [EncryptingPublicSize]byte

func (k EncryptingPrivate) Slice() []byte { return k[:] }
func (k EncryptingPublic) Slice() []byte  { return k[:] }

func MustEncryptingPrivate(b []byte) EncryptingPrivate {
	if len(b) != EncryptingPrivateSize {
		panic(fmt.Errorf("encrypting private: want %d bytes, got %d", EncryptingPrivateSize, len(b)))
	}
	var out EncryptingPrivate
	copy(out[:], b)
	return out
}

func MustEncryptingPublic(b []byte) EncryptingPublic {
	if len(b) != EncryptingPublicSize {
		panic(fmt.Errorf("encrypting public: want %d bytes, got %d", EncryptingPublicSize, len(b)))
	}
	var out EncryptingPublic
	copy(out[:], b)
	return out
}
