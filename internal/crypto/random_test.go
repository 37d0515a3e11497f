package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"keyring/internal/crypto"
	"keyring/internal/domain"
)

func TestRandomBytes(t *testing.T) {
	a, err := crypto.RandomBytes(32)
	if err != nil {
		t.Fatalf("RandomBytes: %v", err)
	}
	b, err := crypto.RandomBytes(32)
	if err != nil {
		t.Fatalf("RandomBytes: %v", err)
	}
	if len(a) != 32 || len(b) != 32 {
		t.Fatalf("lengths: %d, %d", len(a), len(b))
	}
	if bytes.Equal(a, b) {
		t.Fatal("two 32-byte draws were identical")
	}
}

func TestRandomBytesZeroLength(t *testing.T) {
	b, err := crypto.RandomBytes(0)
	if err != nil {
		t.Fatalf("RandomBytes(0): %v", err)
	}
	if len(b) != 0 {
		t.Fatalf("want empty slice, got %d bytes", len(b))
	}
}

func TestRandomBytesNegativeLength(t *testing.T) {
	if _, err := crypto.RandomBytes(-1); !errors.Is(err, domain.ErrInvalidLength) {
		t.Fatalf("got %v, want ErrInvalidLength", err)
	}
}
