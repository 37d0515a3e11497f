package domain

// SignatureScheme produces and checks signatures over fixed-size message
// digests. Implementations work on raw byte encodings; sizes are scheme
// defined (SigningPrivateSize / SigningPublicSize for the default scheme).
type SignatureScheme interface {
	// GenerateKeypair returns a fresh private scalar and its public point.
	GenerateKeypair() (priv, pub []byte, err error)

	// PublicFromPrivate validates priv and returns its public counterpart.
	// Returns ErrInvalidKeyMaterial for malformed or out-of-range scalars.
	PublicFromPrivate(priv []byte) ([]byte, error)

	// Sign signs a message digest with priv.
	Sign(digest, priv []byte) ([]byte, error)

	// Verify reports whether sig over digest was produced by the holder of
	// pub. A mismatched signature is (false, nil); malformed sig or pub
	// bytes are (false, ErrInvalidSignatureOrKey).
	Verify(digest, sig, pub []byte) (bool, error)
}

// PublicKeyCipher encrypts to a recipient public key using the sender's
// static keypair and a fresh nonce per message.
type PublicKeyCipher interface {
	// GenerateKeypair returns a fresh private scalar and its public point.
	GenerateKeypair() (priv, pub []byte, err error)

	// PublicFromPrivate validates priv and returns its public counterpart.
	PublicFromPrivate(priv []byte) ([]byte, error)

	// Encrypt seals plaintext for recipientPub. The sender's public key and
	// the nonce travel inside the returned ciphertext framing.
	Encrypt(plaintext, senderPriv, recipientPub []byte) ([]byte, error)

	// Decrypt opens a ciphertext with the recipient's private key. Returns
	// ErrDecryptionFailed on truncation, bad framing or tag mismatch; never
	// partial plaintext.
	Decrypt(ciphertext, recipientPriv []byte) ([]byte, error)
}
