package api

import (
	"github.com/ppiankov/svcprofile/internal/model"
	"github.com/ppiankov/svcprofile/internal/scoring"
	"github.com/ppiankov/svcprofile/internal/session"
	"github.com/ppiankov/svcprofile/internal/stepper"
)

// LoginRequest logs a session in. An empty or unknown SessionID starts a new session.
type LoginRequest struct {
	SessionID  string `json:"session_id,omitempty"`
	EmployeeID string `json:"employee_id"`
	Password   string `json:"password"`
}

// SessionRequest addresses an existing session.
type SessionRequest struct {
	SessionID string `json:"session_id"`
}

// SessionReply describes a session after login or logout.
type SessionReply struct {
	SessionID  string `json:"session_id"`
	EmployeeID string `json:"employee_id,omitempty"`
	LoggedIn   bool   `json:"logged_in"`
}

// FormRequest submits a whole form in one pass.
type FormRequest struct {
	SessionID string     `json:"session_id"`
	Form      model.Form `json:"form"`
}

// ComputeReply carries a scored input and its chart data.
type ComputeReply struct {
	Input  model.ServiceProfileInput `json:"input"`
	Result scoring.Result            `json:"result"`
	Charts scoring.Charts            `json:"charts"`
}

// AnswerRequest submits one dialogue answer.
type AnswerRequest struct {
	SessionID string `json:"session_id"`
	Answer    string `json:"answer"`
}

// DialogueReply is the dialogue position after an answer, restart or view.
// Once Done, either Computed or Error is set.
type DialogueReply struct {
	Step     int           `json:"step"`
	Total    int           `json:"total"`
	Advanced bool          `json:"advanced"`
	Done     bool          `json:"done"`
	Prompt   string        `json:"prompt,omitempty"`
	Error    string        `json:"error,omitempty"`
	Computed *ComputeReply `json:"computed,omitempty"`
}

// NewComputeReply bundles a result with its charts.
func NewComputeReply(in model.ServiceProfileInput, r scoring.Result) *ComputeReply {
	return &ComputeReply{Input: in, Result: r, Charts: scoring.ChartsFor(r)}
}

// NewDialogueReply converts a session reply to its wire form.
func NewDialogueReply(r session.Reply) *DialogueReply {
	out := &DialogueReply{
		Step:     r.Step,
		Total:    stepper.StepComplete,
		Advanced: r.Advanced,
		Done:     r.Done(),
		Prompt:   r.Prompt,
	}
	if r.Err != nil {
		out.Error = r.Err.Error()
	}
	if r.Result != nil && r.Input != nil {
		out.Computed = NewComputeReply(*r.Input, *r.Result)
	}
	return out
}
