package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"keyring/internal/crypto"
	"keyring/internal/domain"
)

func TestECDSASignVerifyRoundTrip(t *testing.T) {
	scheme := crypto.ECDSA{}
	priv, pub, err := scheme.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	digest := crypto.Keccak256([]byte("hello"))

	sig, err := scheme.Sign(digest[:], priv)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	ok, err := scheme.Verify(digest[:], sig, pub)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !ok {
		t.Fatal("signature did not verify")
	}
}

func TestECDSAVerifyWrongDigest(t *testing.T) {
	scheme := crypto.ECDSA{}
	priv, pub, err := scheme.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	digest := crypto.Keccak256([]byte("hello"))
	other := crypto.Keccak256([]byte("goodbye"))

	sig, err := scheme.Sign(digest[:], priv)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	ok, err := scheme.Verify(other[:], sig, pub)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if ok {
		t.Fatal("signature verified against the wrong digest")
	}
}

func TestECDSAVerifyMalformedInputs(t *testing.T) {
	scheme := crypto.ECDSA{}
	priv, pub, err := scheme.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	digest := crypto.Keccak256([]byte("hello"))
	sig, err := scheme.Sign(digest[:], priv)
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := scheme.Verify(digest[:], []byte{0x01, 0x02}, pub); !errors.Is(err, domain.ErrInvalidSignatureOrKey) {
		t.Fatalf("garbage signature: got %v, want ErrInvalidSignatureOrKey", err)
	}
	if _, err := scheme.Verify(digest[:], sig, pub[:10]); !errors.Is(err, domain.ErrInvalidSignatureOrKey) {
		t.Fatalf("truncated pubkey: got %v, want ErrInvalidSignatureOrKey", err)
	}
}

func TestECDSAPublicFromPrivateReproducible(t *testing.T) {
	scheme := crypto.ECDSA{}
	priv, pub, err := scheme.GenerateKeypair()
	if err != nil {
		t.Fatalf("GenerateKeypair: %v", err)
	}
	again, err := scheme.PublicFromPrivate(priv)
	if err != nil {
		t.Fatalf("PublicFromPrivate: %v", err)
	}
	if !bytes.Equal(pub, again) {
		t.Fatal("public key not reproducible from private scalar")
	}
}

func TestECDSARejectsBadKeyMaterial(t *testing.T) {
	scheme := crypto.ECDSA{}

	cases := map[string][]byte{
		"short":    make([]byte, 16),
		"zero":     make([]byte, 32),
		"overflow": bytes.Repeat([]byte{0xff}, 32),
	}
	for name, priv := range cases {
		if _, err := scheme.PublicFromPrivate(priv); !errors.Is(err, domain.ErrInvalidKeyMaterial) {
			t.Errorf("%s scalar: got %v, want ErrInvalidKeyMaterial", name, err)
		}
	}
}
