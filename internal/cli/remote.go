package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ppiankov/svcprofile/internal/client"
)

var (
	remoteServer string
	remoteUser   string
	remoteFormat string
)

func init() {
	rootCmd.AddCommand(remoteCmd)
	remoteCmd.Flags().StringVar(&remoteServer, "server", "", "Profiler server address (default from config)")
	remoteCmd.Flags().StringVarP(&remoteUser, "user", "u", "", "Employee ID (prompted if empty)")
	remoteCmd.Flags().StringVarP(&remoteFormat, "format", "f", "text", "Result format (text|json)")
}

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Run the question dialogue against a profiler server",
	Long:  "Same as chat, but the session lives on a server started with 'svcprofile serve'.",
	RunE:  runRemote,
}

func runRemote(cmd *cobra.Command, args []string) error {
	if err := validFormat(remoteFormat); err != nil {
		return err
	}
	addr := remoteServer
	if addr == "" {
		addr = cfg.Listen
	}

	c, err := client.New(addr)
	if err != nil {
		return err
	}
	defer c.Close()

	if err := c.Ping(cmd.Context()); err != nil {
		return fmt.Errorf("profiler server at %s: %w", addr, err)
	}
	return runDialogue(cmd.Context(), newConsole(cmd), &remoteDialogue{c: c}, remoteUser, remoteFormat)
}
