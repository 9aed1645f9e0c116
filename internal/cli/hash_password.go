package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/svcprofile/internal/identity"
)

func init() {
	rootCmd.AddCommand(hashPasswordCmd)
}

var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password",
	Short: "Print a bcrypt hash for a credentials file entry",
	Long: "Reads a password (hidden on a terminal, or from $" + passwordEnv + ")\n" +
		"and prints a bcrypt hash to paste into credentials.yaml.",
	Args: cobra.NoArgs,
	RunE: runHashPassword,
}

func runHashPassword(cmd *cobra.Command, args []string) error {
	con := newConsole(cmd)
	pw, err := readPassword(con)
	if err != nil {
		return err
	}
	if pw == "" {
		return fmt.Errorf("empty password")
	}
	h, err := identity.HashPassword(pw)
	if err != nil {
		return err
	}
	fmt.Fprintln(con.out, h)
	return nil
}
