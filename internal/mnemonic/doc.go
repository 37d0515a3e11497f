// Package mnemonic converts 32-byte private scalars to and from BIP-39
// word lists for offline backup. The key bytes are used directly as the
// mnemonic entropy, so the round trip is exact.
package mnemonic
