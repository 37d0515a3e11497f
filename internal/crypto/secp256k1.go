package crypto

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"keyring/internal/domain"
)

// ECDSA is the secp256k1 signature scheme. Private keys are 32-byte
// scalars, public keys 33-byte compressed points, signatures DER encoded.
type ECDSA struct{}

// GenerateKeypair returns a fresh secp256k1 keypair.
func (ECDSA) GenerateKeypair() (priv, pub []byte, err error) {
	key, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, nil, err
	}
	return key.Serialize(), key.PubKey().SerializeCompressed(), nil
}

// PublicFromPrivate validates priv and returns the compressed public point.
func (ECDSA) PublicFromPrivate(priv []byte) ([]byte, error) {
	key, err := parsePrivateScalar(priv)
	if err != nil {
		return nil, err
	}
	return key.PubKey().SerializeCompressed(), nil
}

// Sign signs digest with priv and returns a DER-encoded signature.
func (ECDSA) Sign(digest, priv []byte) ([]byte, error) {
	key, err := parsePrivateScalar(priv)
	if err != nil {
		return nil, err
	}
	return ecdsa.Sign(key, digest).Serialize(), nil
}

// Verify reports whether sig over digest verifies under pub. Malformed
// signature or public-key bytes yield domain.ErrInvalidSignatureOrKey;
// a well-formed signature that does not match is (false, nil).
func (ECDSA) Verify(digest, sig, pub []byte) (bool, error) {
	pubKey, err := secp256k1.ParsePubKey(pub)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrInvalidSignatureOrKey, err)
	}
	parsed, err := ecdsa.ParseDERSignature(sig)
	if err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrInvalidSignatureOrKey, err)
	}
	return parsed.Verify(digest, pubKey), nil
}

// parsePrivateScalar rejects scalars that are not in [1, N-1].
func parsePrivateScalar(b []byte) (*secp256k1.PrivateKey, error) {
	if len(b) != domain.SigningPrivateSize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d",
			domain.ErrInvalidKeyMaterial, domain.SigningPrivateSize, len(b))
	}
	var s secp256k1.ModNScalar
	if overflow := s.SetByteSlice(b); overflow {
		return nil, fmt.Errorf("%w: scalar exceeds group order", domain.ErrInvalidKeyMaterial)
	}
	if s.IsZero() {
		return nil, fmt.Errorf("%w: zero scalar", domain.ErrInvalidKeyMaterial)
	}
	return secp256k1.NewPrivateKey(&s), nil
}

// Compile-time assertion that ECDSA implements domain.SignatureScheme.
var _ domain.SignatureScheme = ECDSA{}
