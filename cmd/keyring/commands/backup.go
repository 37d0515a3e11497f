package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"keyring/internal/mnemonic"
	"keyring/internal/util/memzero"
)

func backupCmd() *cobra.Command {
	var encrypting bool
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export a private key as a BIP-39 mnemonic",
		RunE: func(cmd *cobra.Command, args []string) error {
			key := appCtx.Ring.SigningPrivateKey().Slice()
			if encrypting {
				key = appCtx.Ring.EncryptingPrivateKey().Slice()
			}
			words, err := mnemonic.Encode(key)
			if err != nil {
				return err
			}
			fmt.Printf("Mnemonic: %s\n", words)
			return nil
		},
	}
	cmd.Flags().BoolVar(&encrypting, "encrypting", false, "export the encrypting key instead of the signing key")
	return cmd
}

func restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore <mnemonic>",
		Short: "Recover a private key from its mnemonic",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := mnemonic.Decode(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Private key: %s\n", hex.EncodeToString(key))
			memzero.Zero(key)
			return nil
		},
	}
}
