package crypto_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"keyring/internal/crypto"
)

func TestKeccak256KnownVectors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"abc", "4e03657aea45a94fc7d47ba826c8d667c0d1e6e33a64a036ec44f58fa12d6c45"},
	}
	for _, c := range cases {
		got := crypto.Keccak256([]byte(c.in))
		if hex.EncodeToString(got[:]) != c.want {
			t.Errorf("Keccak256(%q) = %x, want %s", c.in, got, c.want)
		}
	}
}

func TestKeccak256ChunksMatchConcatenation(t *testing.T) {
	a := []byte("encrypting-private-key-material!")
	b := []byte("/some/path")

	chunked := crypto.Keccak256(a, b)
	joined := crypto.Keccak256(append(append([]byte{}, a...), b...))
	if !bytes.Equal(chunked[:], joined[:]) {
		t.Fatal("chunked digest differs from concatenated digest")
	}
}
