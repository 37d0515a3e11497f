package app

import (
	"encoding/hex"
	"fmt"

	"keyring/internal/domain"
	"keyring/internal/keyring"
	"keyring/internal/util/memzero"
)

// App bundles the ready KeyRing and the config it was built from.
type App struct {
	Ring   *keyring.KeyRing
	Config Config
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*App, error) {
	sigKey, err := decodeKey(cfg.SigningKey, "signing_key")
	if err != nil {
		return nil, err
	}
	encKey, err := decodeKey(cfg.EncryptingKey, "encrypting_key")
	if err != nil {
		return nil, err
	}

	ring, err := keyring.New(keyring.Options{
		SigningKey:    sigKey,
		EncryptingKey: encKey,
		Algorithm:     cfg.Algorithm,
	})
	memzero.Slices(sigKey, encKey)
	if err != nil {
		return nil, err
	}
	return &App{Ring: ring, Config: cfg}, nil
}

// decodeKey turns an optional hex field into raw bytes.
func decodeKey(field, name string) ([]byte, error) {
	if field == "" {
		return nil, nil
	}
	b, err := hex.DecodeString(field)
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not valid hex", domain.ErrInvalidKeyMaterial, name)
	}
	return b, nil
}
