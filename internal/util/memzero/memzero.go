// Package memzero reduces the in-memory lifetime of secret byte slices.
package memzero

import "crypto/subtle"

// Zero overwrites b with zeros in a constant-time friendly way.
func Zero(b []byte) {
	if len(b) == 0 {
		return
	}
	zero := make([]byte, len(b))
	subtle.ConstantTimeCopy(1, b, zero)
}

// Slices zeroes every given buffer.
func Slices(bufs ...[]byte) {
	for _, b := range bufs {
		Zero(b)
	}
}
