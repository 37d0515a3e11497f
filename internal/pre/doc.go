// Package pre holds the proxy re-encryption algorithm registry.
//
// Only the private-to-public transform is consumed by the keyring: derived
// path keys are mapped to public points so a delegate can be handed a path
// instead of the derived private scalar. The registry is a small closed set
// selected once at configuration time.
package pre
