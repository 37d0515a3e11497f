package keyring_test

import (
	"bytes"
	"errors"
	"testing"

	"keyring/internal/domain"
	"keyring/internal/keyring"
)

// newRing builds a KeyRing with fresh keys and default schemes.
func newRing(t *testing.T) *keyring.KeyRing {
	t.Helper()
	ring, err := keyring.New(keyring.Options{})
	if err != nil {
		t.Fatalf("keyring.New: %v", err)
	}
	return ring
}

func TestSignVerifyScenario(t *testing.T) {
	ring := newRing(t)

	sig, err := ring.Sign([]byte("hello"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	ok, err := ring.Verify([]byte("hello"), sig, nil)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("own signature did not verify")
	}

	ok, err = ring.Verify([]byte("goodbye"), sig, nil)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("signature verified against a different message")
	}
}

func TestVerifyCorruptedSignature(t *testing.T) {
	ring := newRing(t)

	sig, err := ring.Sign([]byte("hello"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	// Flip a bit inside the R value; the DER framing stays intact.
	corrupted := append([]byte{}, sig...)
	corrupted[10] ^= 0x01

	ok, err := ring.Verify([]byte("hello"), corrupted, nil)
	if ok {
		t.Fatal("corrupted signature verified")
	}
	if err != nil && !errors.Is(err, domain.ErrInvalidSignatureOrKey) {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVerifyThirdPartySignature(t *testing.T) {
	alice := newRing(t)
	bob := newRing(t)

	sig, err := alice.Sign([]byte("from alice"))
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	// Bob must pass Alice's public key explicitly.
	ok, err := bob.Verify([]byte("from alice"), sig, alice.SigningPublicKey().Slice())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("third-party signature did not verify with explicit pubkey")
	}

	// Omitting the key silently checks self-authorship and must fail here.
	ok, err = bob.Verify([]byte("from alice"), sig, nil)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("third-party signature verified against own key")
	}
}

func TestEncryptDecryptSelf(t *testing.T) {
	ring := newRing(t)

	ct, err := ring.Encrypt([]byte("secret"), nil)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	pt, err := ring.Decrypt(ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(pt, []byte("secret")) {
		t.Fatalf("round trip: got %q", pt)
	}
}

func TestEncryptToRecipient(t *testing.T) {
	alice := newRing(t)
	bob := newRing(t)

	ct, err := alice.Encrypt([]byte("for bob"), bob.EncryptingPublicKey().Slice())
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	pt, err := bob.Decrypt(ct)
	if err != nil {
		t.Fatalf("Decrypt: %v", err)
	}
	if !bytes.Equal(pt, []byte("for bob")) {
		t.Fatalf("round trip: got %q", pt)
	}

	// Alice encrypted to Bob, so she cannot open it herself.
	if _, err := alice.Decrypt(ct); !errors.Is(err, domain.ErrDecryptionFailed) {
		t.Fatalf("sender decrypt: got %v, want ErrDecryptionFailed", err)
	}
}

func TestDecryptTamperedCiphertext(t *testing.T) {
	ring := newRing(t)

	ct, err := ring.Encrypt([]byte("secret"), nil)
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}
	ct[len(ct)-1] ^= 0x01
	if _, err := ring.Decrypt(ct); !errors.Is(err, domain.ErrDecryptionFailed) {
		t.Fatalf("got %v, want ErrDecryptionFailed", err)
	}
}

func TestConstructionReproducibility(t *testing.T) {
	a := newRing(t)

	b, err := keyring.New(keyring.Options{
		SigningKey:    a.SigningPrivateKey().Slice(),
		EncryptingKey: a.EncryptingPrivateKey().Slice(),
	})
	if err != nil {
		t.Fatalf("keyring.New: %v", err)
	}

	if a.SigningPublicKey() != b.SigningPublicKey() {
		t.Fatal("same signing private scalar produced different public keys")
	}
	if a.EncryptingPublicKey() != b.EncryptingPublicKey() {
		t.Fatal("same encrypting private scalar produced different public keys")
	}
}

func TestConstructionRejectsBadMaterial(t *testing.T) {
	if _, err := keyring.New(keyring.Options{SigningKey: make([]byte, 16)}); !errors.Is(err, domain.ErrInvalidKeyMaterial) {
		t.Fatalf("short signing key: got %v, want ErrInvalidKeyMaterial", err)
	}
	if _, err := keyring.New(keyring.Options{SigningKey: make([]byte, 32)}); !errors.Is(err, domain.ErrInvalidKeyMaterial) {
		t.Fatalf("zero signing key: got %v, want ErrInvalidKeyMaterial", err)
	}
	if _, err := keyring.New(keyring.Options{EncryptingKey: make([]byte, 31)}); !errors.Is(err, domain.ErrInvalidKeyMaterial) {
		t.Fatalf("short encrypting key: got %v, want ErrInvalidKeyMaterial", err)
	}
}

func TestConstructionRejectsUnknownAlgorithm(t *testing.T) {
	if _, err := keyring.New(keyring.Options{Algorithm: "bls12-381"}); !errors.Is(err, domain.ErrUnsupportedAlgorithm) {
		t.Fatalf("got %v, want ErrUnsupportedAlgorithm", err)
	}
}

func TestSecureRandom(t *testing.T) {
	ring := newRing(t)

	a, err := ring.SecureRandom(32)
	if err != nil {
		t.Fatalf("SecureRandom: %v", err)
	}
	b, err := ring.SecureRandom(32)
	if err != nil {
		t.Fatalf("SecureRandom: %v", err)
	}
	if len(a) != 32 || len(b) != 32 {
		t.Fatalf("lengths: %d, %d", len(a), len(b))
	}
	if bytes.Equal(a, b) {
		t.Fatal("two draws were identical")
	}
	if _, err := ring.SecureRandom(-5); !errors.Is(err, domain.ErrInvalidLength) {
		t.Fatalf("negative length: got %v, want ErrInvalidLength", err)
	}
}
