package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign a message with the signing identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := appCtx.Ring.Sign([]byte(args[0]))
			if err != nil {
				return err
			}
			fmt.Printf("Signature: %s\n", hex.EncodeToString(sig))
			return nil
		},
	}
}

func verifyCmd() *cobra.Command {
	var pubkey string
	cmd := &cobra.Command{
		Use:   "verify <message> <signature-hex>",
		Short: "Check a signature over a message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sig, err := hex.DecodeString(args[1])
			if err != nil {
				return fmt.Errorf("signature is not valid hex: %w", err)
			}
			var pub []byte
			if pubkey != "" {
				if pub, err = hex.DecodeString(pubkey); err != nil {
					return fmt.Errorf("public key is not valid hex: %w", err)
				}
			}
			ok, err := appCtx.Ring.Verify([]byte(args[0]), sig, pub)
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Signature: INVALID")
				return fmt.Errorf("signature does not verify")
			}
			fmt.Println("Signature: valid")
			return nil
		},
	}
	cmd.Flags().StringVar(&pubkey, "pubkey", "", "hex public key of the signer (default: own signing key)")
	return cmd
}
