package cli

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ppiankov/svcprofile/internal/api"
	"github.com/ppiankov/svcprofile/internal/client"
	"github.com/ppiankov/svcprofile/internal/identity"
	"github.com/ppiankov/svcprofile/internal/model"
	"github.com/ppiankov/svcprofile/internal/session"
)

// dialogue is a logged-in profiling session, local or behind a server.
type dialogue interface {
	Login(ctx context.Context, employeeID, password string) error
	Logout(ctx context.Context) error
	SubmitForm(ctx context.Context, f model.Form) (*api.ComputeReply, error)
	Answer(ctx context.Context, raw string) (*api.DialogueReply, error)
	Restart(ctx context.Context) (*api.DialogueReply, error)
	View(ctx context.Context) (*api.DialogueReply, error)
}

// localDialogue runs the session in-process.
type localDialogue struct {
	sess     *session.Session
	verifier identity.Verifier
}

func newLocalDialogue(v identity.Verifier) *localDialogue {
	return &localDialogue{sess: session.New(), verifier: v}
}

func (d *localDialogue) Login(ctx context.Context, employeeID, password string) error {
	return d.sess.Login(d.verifier, employeeID, password)
}

func (d *localDialogue) Logout(ctx context.Context) error {
	d.sess.Logout()
	return nil
}

func (d *localDialogue) SubmitForm(ctx context.Context, f model.Form) (*api.ComputeReply, error) {
	if !d.sess.LoggedIn {
		return nil, session.ErrNotLoggedIn
	}
	in, err := f.Input()
	if err != nil {
		return nil, err
	}
	res, err := d.sess.Compute(in)
	if err != nil {
		return nil, err
	}
	return api.NewComputeReply(in, res), nil
}

func (d *localDialogue) Answer(ctx context.Context, raw string) (*api.DialogueReply, error) {
	r, err := d.sess.Answer(raw)
	if err != nil {
		return nil, err
	}
	return api.NewDialogueReply(r), nil
}

func (d *localDialogue) Restart(ctx context.Context) (*api.DialogueReply, error) {
	if err := d.sess.Restart(); err != nil {
		return nil, err
	}
	return api.NewDialogueReply(d.sess.View()), nil
}

func (d *localDialogue) View(ctx context.Context) (*api.DialogueReply, error) {
	if !d.sess.LoggedIn {
		return nil, session.ErrNotLoggedIn
	}
	return api.NewDialogueReply(d.sess.View()), nil
}

// remoteDialogue forwards every call to a profiler server.
type remoteDialogue struct {
	c *client.Client
}

func (d *remoteDialogue) Login(ctx context.Context, employeeID, password string) error {
	_, err := d.c.Login(ctx, employeeID, password)
	return err
}

func (d *remoteDialogue) Logout(ctx context.Context) error {
	return d.c.Logout(ctx)
}

func (d *remoteDialogue) SubmitForm(ctx context.Context, f model.Form) (*api.ComputeReply, error) {
	return d.c.SubmitForm(ctx, f)
}

func (d *remoteDialogue) Answer(ctx context.Context, raw string) (*api.DialogueReply, error) {
	return d.c.Answer(ctx, raw)
}

func (d *remoteDialogue) Restart(ctx context.Context) (*api.DialogueReply, error) {
	return d.c.Restart(ctx)
}

func (d *remoteDialogue) View(ctx context.Context) (*api.DialogueReply, error) {
	return d.c.View(ctx)
}

// isInvalidCredentials matches a rejected login from either dialogue.
func isInvalidCredentials(err error) bool {
	return errors.Is(err, session.ErrInvalidCredentials) || status.Code(err) == codes.Unauthenticated
}
