// Package commands defines the keyring CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - keygen       Generate a fresh identity and print its key material
//   - sign         Sign a message with the signing identity
//   - verify       Check a signature over a message
//   - encrypt      Seal a plaintext for a recipient (default: self)
//   - decrypt      Open a ciphertext addressed to this identity
//   - derive       Derive a deterministic key along a byte path
//   - random       Print secure random bytes
//   - fingerprint  Print a short fingerprint of a public key
//   - backup       Export a private key as a BIP-39 mnemonic
//   - restore      Recover a private key from its mnemonic
//
// # Implementation
//
// The root command loads the optional YAML config file and builds the
// KeyRing before any subcommand runs, so handlers share one app context.
// Keys are passed as hex via flags or config; nothing is written to disk.
package commands
