package crypto

import (
	"crypto/rand"
	"fmt"
	"io"

	"keyring/internal/domain"
)

// RandomBytes returns n bytes from the operating system's secure source.
// n must be non-negative; n == 0 yields an empty slice.
func RandomBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidLength, n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, b); err != nil {
		return nil, err
	}
	return b, nil
}
