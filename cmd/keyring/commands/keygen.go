package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"keyring/internal/crypto"
)

func keygenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Generate a fresh identity and print its key material",
		RunE: func(cmd *cobra.Command, args []string) error {
			ring := appCtx.Ring
			fmt.Printf("Signing private key:    %s\n", hex.EncodeToString(ring.SigningPrivateKey().Slice()))
			fmt.Printf("Signing public key:     %s\n", hex.EncodeToString(ring.SigningPublicKey().Slice()))
			fmt.Printf("Encrypting private key: %s\n", hex.EncodeToString(ring.EncryptingPrivateKey().Slice()))
			fmt.Printf("Encrypting public key:  %s\n", hex.EncodeToString(ring.EncryptingPublicKey().Slice()))
			fmt.Printf("Fingerprint:            %s\n", crypto.Fingerprint(ring.SigningPublicKey().Slice()))
			return nil
		},
	}
}
