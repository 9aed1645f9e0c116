package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ppiankov/svcprofile/internal/api"
	"github.com/ppiankov/svcprofile/internal/identity"
)

var (
	chatUser   string
	chatFormat string
)

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringVarP(&chatUser, "user", "u", "", "Employee ID (prompted if empty)")
	chatCmd.Flags().StringVarP(&chatFormat, "format", "f", "text", "Result format (text|json)")
}

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Profile a service one question at a time",
	Long: "Logs in, then asks the eight profiling questions in order. Blank answers\n" +
		"repeat the question. After the last answer the scores are computed.\n\n" +
		"Commands at any prompt:\n" +
		"  :restart   start over from the first question\n" +
		"  :logout    log out and return to the login prompt\n" +
		"  :quit      exit",
	RunE: runChat,
}

func runChat(cmd *cobra.Command, args []string) error {
	if err := validFormat(chatFormat); err != nil {
		return err
	}
	registry, err := identity.Load(cfg.CredentialsPath)
	if err != nil {
		return err
	}
	return runDialogue(cmd.Context(), newConsole(cmd), newLocalDialogue(registry), chatUser, chatFormat)
}

// runDialogue drives one interactive session until :quit or end of input.
func runDialogue(ctx context.Context, con *console, d dialogue, user, format string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := login(ctx, con, d, user); err != nil {
		return quietEOF(err)
	}
	reply, err := d.View(ctx)
	if err != nil {
		return err
	}

	shown := false
	for {
		var prompt string
		if reply.Done {
			if !shown {
				if err := showOutcome(con.out, format, reply); err != nil {
					return err
				}
				shown = true
			}
			prompt = "\nType :restart to profile another service, :logout or :quit.\n> "
		} else {
			prompt = fmt.Sprintf("[%d/%d] %s\n> ", reply.Step+1, reply.Total, reply.Prompt)
		}

		line, err := con.readLine(prompt)
		if err != nil {
			return quietEOF(err)
		}

		switch strings.TrimSpace(line) {
		case ":quit":
			return nil
		case ":restart":
			reply, err = d.Restart(ctx)
			shown = false
		case ":logout":
			if err := d.Logout(ctx); err != nil {
				return err
			}
			fmt.Fprintln(con.out, "Logged out")
			if err := login(ctx, con, d, user); err != nil {
				return quietEOF(err)
			}
			reply, err = d.View(ctx)
			shown = false
		default:
			if reply.Done {
				continue
			}
			reply, err = d.Answer(ctx, line)
			if err == nil && !reply.Advanced && !reply.Done {
				fmt.Fprintln(con.out, "Please enter a value.")
			}
		}
		if err != nil {
			return err
		}
	}
}

func showOutcome(w io.Writer, format string, reply *api.DialogueReply) error {
	if reply.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", reply.Error)
		return nil
	}
	if reply.Computed == nil {
		return fmt.Errorf("dialogue finished without a result")
	}
	return writeComputed(w, format, reply.Computed)
}

func quietEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
