package crypto

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/nacl/box"

	"keyring/internal/domain"
)

// Box ciphertext framing: senderPub(32) || nonce(24) || sealed.
const (
	boxNonceSize = 24
	boxMinLen    = domain.EncryptingPublicSize + boxNonceSize + box.Overhead
)

// Box is the curve25519 + XSalsa20-Poly1305 public-key cipher. The sender's
// static public key and a fresh random nonce are prepended to each
// ciphertext so the recipient can open it with only its own private key.
type Box struct{}

// GenerateKeypair returns a fresh curve25519 keypair.
func (Box) GenerateKeypair() (priv, pub []byte, err error) {
	pubKey, privKey, err := box.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, err
	}
	return privKey[:], pubKey[:], nil
}

// PublicFromPrivate validates priv and returns the curve25519 public point.
func (Box) PublicFromPrivate(priv []byte) ([]byte, error) {
	if len(priv) != domain.EncryptingPrivateSize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d",
			domain.ErrInvalidKeyMaterial, domain.EncryptingPrivateSize, len(priv))
	}
	pub, err := curve25519.X25519(priv, curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKeyMaterial, err)
	}
	return pub, nil
}

// Encrypt seals plaintext for recipientPub under a fresh nonce.
func (b Box) Encrypt(plaintext, senderPriv, recipientPub []byte) ([]byte, error) {
	senderPub, err := b.PublicFromPrivate(senderPriv)
	if err != nil {
		return nil, err
	}
	if len(recipientPub) != domain.EncryptingPublicSize {
		return nil, fmt.Errorf("%w: recipient public key: want %d bytes, got %d",
			domain.ErrInvalidKeyMaterial, domain.EncryptingPublicSize, len(recipientPub))
	}

	var nonce [boxNonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return nil, err
	}
	var sk, rp [32]byte
	copy(sk[:], senderPriv)
	copy(rp[:], recipientPub)

	out := make([]byte, 0, boxMinLen+len(plaintext))
	out = append(out, senderPub...)
	out = append(out, nonce[:]...)
	return box.Seal(out, plaintext, &nonce, &rp, &sk), nil
}

// Decrypt opens a ciphertext with recipientPriv. Any framing or
// authentication failure is reported as domain.ErrDecryptionFailed.
func (Box) Decrypt(ciphertext, recipientPriv []byte) ([]byte, error) {
	if len(recipientPriv) != domain.EncryptingPrivateSize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d",
			domain.ErrInvalidKeyMaterial, domain.EncryptingPrivateSize, len(recipientPriv))
	}
	if len(ciphertext) < boxMinLen {
		return nil, fmt.Errorf("%w: truncated ciphertext", domain.ErrDecryptionFailed)
	}

	var senderPub, rk [32]byte
	var nonce [boxNonceSize]byte
	copy(senderPub[:], ciphertext[:domain.EncryptingPublicSize])
	copy(nonce[:], ciphertext[domain.EncryptingPublicSize:domain.EncryptingPublicSize+boxNonceSize])
	copy(rk[:], recipientPriv)

	plaintext, ok := box.Open(nil, ciphertext[domain.EncryptingPublicSize+boxNonceSize:], &nonce, &senderPub, &rk)
	if !ok {
		return nil, domain.ErrDecryptionFailed
	}
	return plaintext, nil
}

// Compile-time assertion that Box implements domain.PublicKeyCipher.
var _ domain.PublicKeyCipher = Box{}
