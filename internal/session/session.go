// Package session holds the per-user context of one interactive session:
// the login flag and the dialogue progress. Nothing here is shared between
// sessions; front-ends create one Session per user and pass it to every call.
package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ppiankov/svcprofile/internal/identity"
	"github.com/ppiankov/svcprofile/internal/model"
	"github.com/ppiankov/svcprofile/internal/scoring"
	"github.com/ppiankov/svcprofile/internal/stepper"
)

var (
	// ErrInvalidCredentials is returned when a login lookup fails.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNotLoggedIn is returned by operations that need a logged-in session.
	ErrNotLoggedIn = errors.New("not logged in")
)

// Session is the state owned by one user.
type Session struct {
	ID         string         `json:"id"`
	LoggedIn   bool           `json:"logged_in"`
	EmployeeID string         `json:"employee_id,omitempty"`
	Stepper    *stepper.State `json:"stepper"`
	CreatedAt  time.Time      `json:"created_at"`
}

// New creates a logged-out session with a fresh ID.
func New() *Session {
	return &Session{
		ID:        "sess-" + uuid.NewString(),
		Stepper:   stepper.New(),
		CreatedAt: time.Now().UTC(),
	}
}

// Login checks the credentials with v. On success the session is marked
// logged in and the dialogue starts over. On failure the session is left
// logged out and ErrInvalidCredentials is returned.
func (s *Session) Login(v identity.Verifier, employeeID, password string) error {
	if !v.Verify(employeeID, password) {
		s.LoggedIn = false
		s.EmployeeID = ""
		return ErrInvalidCredentials
	}
	s.LoggedIn = true
	s.EmployeeID = employeeID
	s.Stepper = stepper.New()
	return nil
}

// Logout clears the login and the dialogue.
func (s *Session) Logout() {
	s.LoggedIn = false
	s.EmployeeID = ""
	s.Stepper = stepper.New()
}

// Restart resets the dialogue to the first question.
func (s *Session) Restart() error {
	if !s.LoggedIn {
		return ErrNotLoggedIn
	}
	s.Stepper.Restart()
	return nil
}

// Compute scores a fully collected input, as the form front-end does on submit.
func (s *Session) Compute(in model.ServiceProfileInput) (scoring.Result, error) {
	if !s.LoggedIn {
		return scoring.Result{}, ErrNotLoggedIn
	}
	return model.Score(in)
}
