// Package app wires application dependencies for the CLI.
//
// It resolves the configured re-encryption algorithm and key material into
// a ready KeyRing, exposing it via the App struct for commands to use.
package app
