package session

import (
	"github.com/ppiankov/svcprofile/internal/model"
	"github.com/ppiankov/svcprofile/internal/scoring"
	"github.com/ppiankov/svcprofile/internal/stepper"
)

// Reply is what the dialogue hands back to the front-end after each answer.
// Exactly one of Prompt, Result or Err is meaningful: Prompt while
// questions remain, Result once complete and scored, Err when the
// completed answers fail to parse or validate.
type Reply struct {
	Step     int                        `json:"step"`
	Advanced bool                       `json:"advanced"`
	Prompt   string                     `json:"prompt,omitempty"`
	Input    *model.ServiceProfileInput `json:"input,omitempty"`
	Result   *scoring.Result            `json:"result,omitempty"`
	Err      error                      `json:"-"`
}

// Done reports whether the dialogue reached the terminal state.
func (r Reply) Done() bool {
	return r.Step >= stepper.StepComplete
}

// Answer submits raw to the dialogue and returns the next prompt, or the
// scored result once the last question is answered. Blank answers re-prompt
// the same question.
func (s *Session) Answer(raw string) (Reply, error) {
	if !s.LoggedIn {
		return Reply{}, ErrNotLoggedIn
	}
	advanced := s.Stepper.Submit(raw)
	reply := s.View()
	reply.Advanced = advanced
	return reply, nil
}

// View describes the current dialogue position without changing it.
func (s *Session) View() Reply {
	st := s.Stepper
	if q, ok := st.Current(); ok {
		return Reply{Step: st.Step, Prompt: q.Prompt}
	}

	reply := Reply{Step: st.Step}
	in, err := st.Finalize()
	if err != nil {
		reply.Err = err
		return reply
	}
	reply.Input = &in
	res, err := model.Score(in)
	if err != nil {
		reply.Err = err
		return reply
	}
	reply.Result = &res
	return reply
}
