package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// passwordEnv supplies the login password non-interactively.
const passwordEnv = "SVCPROFILE_PASSWORD"

// console reads prompted lines from the command's input.
type console struct {
	in  *bufio.Reader
	out io.Writer

	// readSecret reads a line without echo when input is a terminal.
	readSecret func() (string, error)
}

func newConsole(cmd *cobra.Command) *console {
	c := &console{
		in:  bufio.NewReader(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
	}
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		c.readSecret = func() (string, error) {
			b, err := term.ReadPassword(int(f.Fd()))
			fmt.Fprintln(c.out)
			return string(b), err
		}
	}
	return c
}

// readLine prints prompt and returns the next line without its newline.
// io.EOF is returned only when the input ends with nothing left to read.
func (c *console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// password prompts for a secret, hiding input on a terminal.
func (c *console) password(prompt string) (string, error) {
	if c.readSecret == nil {
		return c.readLine(prompt)
	}
	fmt.Fprint(c.out, prompt)
	return c.readSecret()
}
