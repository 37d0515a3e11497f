package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"keyring/internal/app"
)

var (
	configPath    string
	algorithm     string
	signingKey    string
	encryptingKey string

	appCtx *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:   "keyring",
		Short: "Per-identity signing, encryption and path-key derivation",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if configPath == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				configPath = filepath.Join(dir, ".keyring.yaml")
			}
			cfg, err := app.LoadConfig(configPath)
			if err != nil {
				return err
			}
			// Flags override the config file.
			if algorithm != "" {
				cfg.Algorithm = algorithm
			}
			if signingKey != "" {
				cfg.SigningKey = signingKey
			}
			if encryptingKey != "" {
				cfg.EncryptingKey = encryptingKey
			}
			appCtx, err = app.NewWire(cfg)
			return err
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.keyring.yaml)")
	root.PersistentFlags().StringVar(&algorithm, "algorithm", "", "re-encryption algorithm for derived public keys")
	root.PersistentFlags().StringVarP(&signingKey, "signing-key", "s", "", "hex signing private key")
	root.PersistentFlags().StringVarP(&encryptingKey, "encrypting-key", "e", "", "hex encrypting private key")

	root.AddCommand(
		keygenCmd(), signCmd(), verifyCmd(),
		encryptCmd(), decryptCmd(),
		deriveCmd(), randomCmd(),
		fingerprintCmd(), backupCmd(), restoreCmd(),
	)
	return root.Execute()
}
