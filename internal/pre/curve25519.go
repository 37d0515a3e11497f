package pre

import (
	"fmt"

	"golang.org/x/crypto/curve25519"

	"keyring/internal/domain"
)

// Curve25519 maps scalars to curve25519 points.
type Curve25519 struct{}

func (Curve25519) Name() string { return "curve25519" }

// Priv2Pub clamps scalar per RFC 7748 and returns scalar*basepoint. The
// clamp plays the range-reduction role the mod-N reduction plays for
// secp256k1.
func (Curve25519) Priv2Pub(scalar []byte) ([]byte, error) {
	if len(scalar) != domain.EncryptingPrivateSize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d",
			domain.ErrInvalidKeyMaterial, domain.EncryptingPrivateSize, len(scalar))
	}
	clamped := make([]byte, domain.EncryptingPrivateSize)
	copy(clamped, scalar)
	clamped[0] &= 248
	clamped[31] &= 127
	clamped[31] |= 64

	pub, err := curve25519.X25519(clamped, curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidKeyMaterial, err)
	}
	return pub, nil
}

var _ Algorithm = Curve25519{}
