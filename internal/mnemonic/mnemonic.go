package mnemonic

import (
	"errors"
	"fmt"

	"github.com/tyler-smith/go-bip39"

	"keyring/internal/domain"
)

// ErrInvalidMnemonic is returned for a word list that fails checksum or
// wordlist validation.
var ErrInvalidMnemonic = errors.New("invalid mnemonic")

// Encode returns the 24-word mnemonic for a 32-byte private scalar.
func Encode(key []byte) (string, error) {
	if len(key) != domain.SigningPrivateSize {
		return "", fmt.Errorf("%w: want %d bytes, got %d",
			domain.ErrInvalidKeyMaterial, domain.SigningPrivateSize, len(key))
	}
	return bip39.NewMnemonic(key)
}

// Decode recovers the 32-byte private scalar from its mnemonic.
func Decode(words string) ([]byte, error) {
	if !bip39.IsMnemonicValid(words) {
		return nil, ErrInvalidMnemonic
	}
	entropy, err := bip39.EntropyFromMnemonic(words)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMnemonic, err)
	}
	if len(entropy) != domain.SigningPrivateSize {
		return nil, fmt.Errorf("%w: mnemonic does not encode a %d-byte key",
			ErrInvalidMnemonic, domain.SigningPrivateSize)
	}
	return entropy, nil
}
