package cli

import (
	"bufio"
	"bytes"
	"context"
	"net"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/svcprofile/internal/client"
	"github.com/ppiankov/svcprofile/internal/identity"
	"github.com/ppiankov/svcprofile/internal/logging"
	"github.com/ppiankov/svcprofile/internal/server"
)

// testConsole feeds input lines to a console and captures its output.
func testConsole(input string) (*console, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return &console{in: bufio.NewReader(strings.NewReader(input)), out: out}, out
}

// noPasswordEnv makes login prompt for the password.
func noPasswordEnv(t *testing.T) {
	t.Helper()
	t.Setenv(passwordEnv, "")
	require.NoError(t, os.Unsetenv(passwordEnv))
}

func localTestDialogue() dialogue {
	return newLocalDialogue(identity.NewRegistry(identity.DefaultUsers()))
}

const billingAnswers = "billing\npayments backend\n2 - Highly Critical\n3\n1.0\n0.5\n0.5\n0.5\n"

func TestRunDialogue_Complete(t *testing.T) {
	noPasswordEnv(t)
	con, out := testConsole("emp001\n123\n" + billingAnswers + ":quit\n")

	require.NoError(t, runDialogue(context.Background(), con, localTestDialogue(), "", "text"))

	got := out.String()
	assert.Contains(t, got, "Login successful")
	assert.Contains(t, got, "[1/8]")
	assert.Contains(t, got, "[8/8]")
	assert.Contains(t, got, "Computation complete for billing")
	assert.Contains(t, got, "0.75")
	assert.Contains(t, got, "1.80  P2")
	assert.Contains(t, got, "3.00  P4")
	assert.Contains(t, got, "1.63  P2")
}

func TestRunDialogue_RetriesLogin(t *testing.T) {
	noPasswordEnv(t)
	con, out := testConsole("emp001\nwrong\nemp001\n123\n:quit\n")

	require.NoError(t, runDialogue(context.Background(), con, localTestDialogue(), "", "text"))

	got := out.String()
	assert.Contains(t, got, "Invalid credentials")
	assert.Contains(t, got, "Login successful")
	assert.Less(t, strings.Index(got, "Invalid credentials"), strings.Index(got, "Login successful"))
}

func TestRunDialogue_EnvPasswordRejected(t *testing.T) {
	t.Setenv(passwordEnv, "wrong")
	con, out := testConsole("")

	err := runDialogue(context.Background(), con, localTestDialogue(), "emp001", "text")
	require.Error(t, err)
	assert.True(t, isInvalidCredentials(err))
	assert.Contains(t, out.String(), "Invalid credentials")
}

func TestRunDialogue_BlankAnswerRepeats(t *testing.T) {
	t.Setenv(passwordEnv, "123")
	con, out := testConsole("   \n:quit\n")

	require.NoError(t, runDialogue(context.Background(), con, localTestDialogue(), "emp001", "text"))

	got := out.String()
	assert.Contains(t, got, "Please enter a value.")
	assert.Equal(t, 2, strings.Count(got, "[1/8]"))
}

func TestRunDialogue_ParseErrorThenRestart(t *testing.T) {
	t.Setenv(passwordEnv, "123")
	answers := "svc\ndesc\nhigh\n3\n1\n0.5\n0.5\n0.5\n"
	con, out := testConsole(answers + ":restart\n:quit\n")

	require.NoError(t, runDialogue(context.Background(), con, localTestDialogue(), "emp001", "text"))

	got := out.String()
	assert.Contains(t, got, "Error: ")
	assert.NotContains(t, got, "Computation complete")
	assert.Equal(t, 2, strings.Count(got, "[1/8]"))
}

func TestRunDialogue_LogoutReturnsToLogin(t *testing.T) {
	noPasswordEnv(t)
	con, out := testConsole("emp001\n123\nhalf\n:logout\nadmin\nAdminprivilage@45786\n:quit\n")

	require.NoError(t, runDialogue(context.Background(), con, localTestDialogue(), "", "text"))

	got := out.String()
	assert.Contains(t, got, "Logged out")
	assert.Equal(t, 2, strings.Count(got, "Login successful"))
	// Login resets progress, so the second session starts at question one.
	assert.Equal(t, 2, strings.Count(got, "[1/8]"))
}

func TestRunDialogue_EOFEndsQuietly(t *testing.T) {
	t.Setenv(passwordEnv, "123")
	con, _ := testConsole("billing\n")

	assert.NoError(t, runDialogue(context.Background(), con, localTestDialogue(), "emp001", "text"))
}

func TestRunDialogue_Remote(t *testing.T) {
	t.Setenv(passwordEnv, "123")

	srv, err := server.New(server.Config{}, logging.Discard())
	require.NoError(t, err)
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go srv.ServeOn(lis)

	c, err := client.New(lis.Addr().String())
	require.NoError(t, err)
	t.Cleanup(func() {
		c.Close()
		srv.GracefulStop()
	})

	con, out := testConsole(billingAnswers + ":quit\n")
	require.NoError(t, runDialogue(context.Background(), con, &remoteDialogue{c: c}, "emp001", "json"))

	got := out.String()
	assert.Contains(t, got, `"Weighted": 1.8`)
	assert.Contains(t, got, `"Max-Dominant": "P4"`)
	assert.Equal(t, 1, srv.Sessions())
}
