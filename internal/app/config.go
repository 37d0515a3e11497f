package app

import (
	"errors"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds runtime wiring options for building the app. Key material is
// hex encoded; both keys are optional and generated fresh when absent.
type Config struct {
	// Algorithm names the proxy re-encryption algorithm ("secp256k1" or
	// "curve25519"). Empty selects the default.
	Algorithm string `yaml:"algorithm"`

	// SigningKey is an optional hex-encoded 32-byte signing private scalar.
	SigningKey string `yaml:"signing_key"`

	// EncryptingKey is an optional hex-encoded 32-byte encrypting private
	// scalar.
	EncryptingKey string `yaml:"encrypting_key"`
}

// LoadConfig reads a YAML config file. A missing file yields the zero
// Config, so running without one is fine.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
