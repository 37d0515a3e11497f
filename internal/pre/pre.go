package pre

import (
	"fmt"
	"sort"

	"keyring/internal/domain"
)

// DefaultAlgorithm is used when configuration names no algorithm.
const DefaultAlgorithm = "secp256k1"

// Algorithm maps private scalars to public points for delegated
// re-encryption. Implementations must be deterministic: identical scalars
// always map to identical points.
type Algorithm interface {
	// Name returns the registry identifier.
	Name() string

	// Priv2Pub returns the byte-encoded public point for a 32-byte private
	// scalar. Scalars outside the group's valid range are reduced into it;
	// a scalar that reduces to zero is rejected.
	Priv2Pub(scalar []byte) ([]byte, error)
}

// constructors maps registry identifiers to algorithm factories.
var constructors = map[string]func() Algorithm{
	"secp256k1":  func() Algorithm { return Secp256k1{} },
	"curve25519": func() Algorithm { return Curve25519{} },
}

// FromName returns the algorithm registered under name.
func FromName(name string) (Algorithm, error) {
	ctor, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedAlgorithm, name)
	}
	return ctor(), nil
}

// Names returns the registered algorithm identifiers, sorted.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
