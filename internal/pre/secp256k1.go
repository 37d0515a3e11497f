package pre

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"keyring/internal/domain"
)

// Secp256k1 maps scalars to compressed secp256k1 points.
type Secp256k1 struct{}

func (Secp256k1) Name() string { return "secp256k1" }

// Priv2Pub reduces scalar modulo the group order N and returns the
// compressed encoding of scalar*G. Reduction keeps hash-derived scalars,
// which are uniform over 2^256, inside the valid range.
func (Secp256k1) Priv2Pub(scalar []byte) ([]byte, error) {
	if len(scalar) != domain.SigningPrivateSize {
		return nil, fmt.Errorf("%w: want %d bytes, got %d",
			domain.ErrInvalidKeyMaterial, domain.SigningPrivateSize, len(scalar))
	}
	var s secp256k1.ModNScalar
	s.SetByteSlice(scalar)
	if s.IsZero() {
		return nil, fmt.Errorf("%w: scalar reduces to zero", domain.ErrInvalidKeyMaterial)
	}
	return secp256k1.NewPrivateKey(&s).PubKey().SerializeCompressed(), nil
}

var _ Algorithm = Secp256k1{}
