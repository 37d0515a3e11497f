// Package keyring is the per-identity trust root.
//
// A KeyRing owns one signing keypair and one encrypting keypair and exposes
// signing, verification, public-key encryption, secure randomness, and
// deterministic sub-key derivation along a caller-supplied byte path. It is
// the only object client code is expected to touch; the underlying schemes
// live behind the capability interfaces in internal/domain.
package keyring
