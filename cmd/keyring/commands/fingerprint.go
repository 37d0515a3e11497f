package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"keyring/internal/crypto"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint [pubkey-hex]",
		Short: "Print a short fingerprint of a public key",
		Long:  "Prints the fingerprint of the given hex public key, or of the own signing public key when omitted.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pub := appCtx.Ring.SigningPublicKey().Slice()
			if len(args) == 1 {
				b, err := hex.DecodeString(args[0])
				if err != nil {
					return fmt.Errorf("public key is not valid hex: %w", err)
				}
				pub = b
			}
			fmt.Printf("Fingerprint: %s\n", crypto.Fingerprint(pub))
			return nil
		},
	}
}
