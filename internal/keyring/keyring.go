package keyring

import (
	"keyring/internal/crypto"
	"keyring/internal/domain"
	"keyring/internal/pre"
)

// Options configures KeyRing construction. Zero values mean "generate fresh
// keys with the default schemes and algorithm".
type Options struct {
	// SigningKey is an optional raw 32-byte signing private scalar.
	SigningKey []byte
	// EncryptingKey is an optional raw 32-byte encrypting private scalar.
	EncryptingKey []byte
	// Algorithm names the proxy re-encryption algorithm used for derived
	// public keys. Defaults to pre.DefaultAlgorithm.
	Algorithm string

	// Scheme and Cipher override the signature scheme and public-key cipher.
	// Defaults are secp256k1 ECDSA and NaCl box.
	Scheme domain.SignatureScheme
	Cipher domain.PublicKeyCipher
}

// KeyRing composes a signing identity, an encrypting identity and the
// path-key deriver behind one facade. Key material is immutable after
// construction, so a KeyRing is safe for concurrent use.
type KeyRing struct {
	sig    *SigningKeypair
	enc    *EncryptingKeypair
	alg    pre.Algorithm
	scheme domain.SignatureScheme
	cipher domain.PublicKeyCipher
}

// New builds a KeyRing from opts. Supplied private keys reproduce the same
// identity deterministically; omitted ones are generated fresh. Returns
// domain.ErrInvalidKeyMaterial for malformed scalars and
// domain.ErrUnsupportedAlgorithm for an unknown algorithm name.
func New(opts Options) (*KeyRing, error) {
	scheme := opts.Scheme
	if scheme == nil {
		scheme = crypto.ECDSA{}
	}
	cipher := opts.Cipher
	if cipher == nil {
		cipher = crypto.Box{}
	}
	name := opts.Algorithm
	if name == "" {
		name = pre.DefaultAlgorithm
	}
	alg, err := pre.FromName(name)
	if err != nil {
		return nil, err
	}

	sig, err := NewSigningKeypair(scheme, opts.SigningKey)
	if err != nil {
		return nil, err
	}
	enc, err := NewEncryptingKeypair(cipher, opts.EncryptingKey)
	if err != nil {
		return nil, err
	}

	return &KeyRing{sig: sig, enc: enc, alg: alg, scheme: scheme, cipher: cipher}, nil
}

// SigningPublicKey returns the signing public point.
func (k *KeyRing) SigningPublicKey() domain.SigningPublic { return k.sig.Public() }

// SigningPrivateKey returns the signing private scalar.
func (k *KeyRing) SigningPrivateKey() domain.SigningPrivate { return k.sig.Private() }

// EncryptingPublicKey returns the encrypting public point.
func (k *KeyRing) EncryptingPublicKey() domain.EncryptingPublic { return k.enc.Public() }

// EncryptingPrivateKey returns the encrypting private scalar.
func (k *KeyRing) EncryptingPrivateKey() domain.EncryptingPrivate { return k.enc.Private() }

// Algorithm returns the configured proxy re-encryption algorithm.
func (k *KeyRing) Algorithm() pre.Algorithm { return k.alg }

// Sign signs the Keccak-256 digest of message with the signing identity.
func (k *KeyRing) Sign(message []byte) ([]byte, error) {
	digest := crypto.Keccak256(message)
	return k.scheme.Sign(digest[:], k.sig.Private().Slice())
}

// Verify reports whether sig over message verifies under pub. A nil pub
// checks against this ring's own signing public key, so callers verifying a
// third party's signature must pass that party's key explicitly. A
// mismatched signature is (false, nil); malformed signature or key bytes
// are reported as domain.ErrInvalidSignatureOrKey.
func (k *KeyRing) Verify(message, sig, pub []byte) (bool, error) {
	if pub == nil {
		pub = k.sig.Public().Slice()
	}
	digest := crypto.Keccak256(message)
	return k.scheme.Verify(digest[:], sig, pub)
}

// Encrypt seals plaintext for recipient using the encrypting identity as
// sender. A nil recipient encrypts to self; callers encrypting to someone
// else must pass the recipient's public key explicitly.
func (k *KeyRing) Encrypt(plaintext, recipient []byte) ([]byte, error) {
	if recipient == nil {
		recipient = k.enc.Public().Slice()
	}
	return k.cipher.Encrypt(plaintext, k.enc.Private().Slice(), recipient)
}

// Decrypt opens a ciphertext addressed to this ring's encrypting identity.
// Fails with domain.ErrDecryptionFailed on any framing or authentication
// failure.
func (k *KeyRing) Decrypt(ciphertext []byte) ([]byte, error) {
	return k.cipher.Decrypt(ciphertext, k.enc.Private().Slice())
}

// SecureRandom returns length bytes from a cryptographically secure source.
func (k *KeyRing) SecureRandom(length int) ([]byte, error) {
	return crypto.RandomBytes(length)
}
