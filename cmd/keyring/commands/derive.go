package commands

import (
	"encoding/hex"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func deriveCmd() *cobra.Command {
	var public bool
	cmd := &cobra.Command{
		Use:   "derive <path>",
		Short: "Derive a deterministic key along a byte path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := appCtx.Ring.DerivePathKey([]byte(args[0]), public)
			if err != nil {
				return err
			}
			fmt.Printf("Derived key: %s\n", hex.EncodeToString(key))
			return nil
		},
	}
	cmd.Flags().BoolVar(&public, "public", false, "derive the public point instead of the private scalar")
	return cmd
}

func randomCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "random <length>",
		Short: "Print secure random bytes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("length must be an integer: %w", err)
			}
			b, err := appCtx.Ring.SecureRandom(n)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", hex.EncodeToString(b))
			return nil
		},
	}
}
