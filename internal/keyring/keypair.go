package keyring

import (
	"keyring/internal/domain"
)

// SigningKeypair holds the identity's authentication key material. The
// public point is always the counterpart of the private scalar.
type SigningKeypair struct {
	priv domain.SigningPrivate
	pub  domain.SigningPublic
}

// NewSigningKeypair builds a keypair from raw private-key bytes, or
// generates a fresh one when priv is nil. Malformed material is rejected
// with domain.ErrInvalidKeyMaterial.
func NewSigningKeypair(scheme domain.SignatureScheme, priv []byte) (*SigningKeypair, error) {
	var privBytes, pubBytes []byte
	var err error
	if priv == nil {
		privBytes, pubBytes, err = scheme.GenerateKeypair()
	} else {
		privBytes = priv
		pubBytes, err = scheme.PublicFromPrivate(priv)
	}
	if err != nil {
		return nil, err
	}
	return &SigningKeypair{
		priv: domain.MustSigningPrivate(privBytes),
		pub:  domain.MustSigningPublic(pubBytes),
	}, nil
}

// Private returns the private scalar.
func (k *SigningKeypair) Private() domain.SigningPrivate { return k.priv }

// Public returns the public point.
func (k *SigningKeypair) Public() domain.SigningPublic { return k.pub }

// EncryptingKeypair holds the identity's confidentiality key material.
// It shares no scalar with the signing keypair.
type EncryptingKeypair struct {
	priv domain.EncryptingPrivate
	pub  domain.EncryptingPublic
}

// NewEncryptingKeypair builds a keypair from raw private-key bytes, or
// generates a fresh one when priv is nil.
func NewEncryptingKeypair(cipher domain.PublicKeyCipher, priv []byte) (*EncryptingKeypair, error) {
	var privBytes, pubBytes []byte
	var err error
	if priv == nil {
		privBytes, pubBytes, err = cipher.GenerateKeypair()
	} else {
		privBytes = priv
		pubBytes, err = cipher.PublicFromPrivate(priv)
	}
	if err != nil {
		return nil, err
	}
	return &EncryptingKeypair{
		priv: domain.MustEncryptingPrivate(privBytes),
		pub:  domain.MustEncryptingPublic(pubBytes),
	}, nil
}

// Private returns the private scalar.
func (k *EncryptingKeypair) Private() domain.EncryptingPrivate { return k.priv }

// Public returns the public point.
func (k *EncryptingKeypair) Public() domain.EncryptingPublic { return k.pub }
