package domain

import "errors"

var (
	// ErrInvalidKeyMaterial is returned when supplied private-key bytes are
	// not a valid scalar for the chosen curve (wrong length or out of range).
	ErrInvalidKeyMaterial = errors.New("invalid key material")

	// ErrInvalidSignatureOrKey is returned when signature or public-key bytes
	// passed to verify are malformed. A well-formed signature that simply does
	// not match is not an error; verify reports it as false.
	ErrInvalidSignatureOrKey = errors.New("invalid signature or public key")

	// ErrDecryptionFailed is returned on authentication or framing failure.
	// It deliberately does not distinguish a bad key from a bad ciphertext.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidLength is returned for a negative secure-random length.
	ErrInvalidLength = errors.New("invalid length")

	// ErrUnsupportedAlgorithm is returned for an unknown re-encryption
	// algorithm identifier at configuration time.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")
)
