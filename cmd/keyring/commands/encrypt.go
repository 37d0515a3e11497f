package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"keyring/internal/crypto"
)

func encryptCmd() *cobra.Command {
	var recipient string
	cmd := &cobra.Command{
		Use:   "encrypt <plaintext>",
		Short: "Seal a plaintext for a recipient (default: self)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var pub []byte
			var err error
			if recipient != "" {
				if pub, err = hex.DecodeString(recipient); err != nil {
					return fmt.Errorf("recipient key is not valid hex: %w", err)
				}
			}
			ct, err := appCtx.Ring.Encrypt([]byte(args[0]), pub)
			if err != nil {
				return err
			}
			fmt.Printf("Ciphertext: %s\n", crypto.B64(ct))
			return nil
		},
	}
	cmd.Flags().StringVar(&recipient, "recipient", "", "hex encrypting public key of the recipient")
	return cmd
}

func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt <ciphertext-base64>",
		Short: "Open a ciphertext addressed to this identity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := crypto.B64Decode(args[0])
			if err != nil {
				return fmt.Errorf("ciphertext is not valid base64: %w", err)
			}
			pt, err := appCtx.Ring.Decrypt(ct)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", pt)
			return nil
		},
	}
}
