// Package stepper drives the question-by-question dialogue that collects a
// ServiceProfileInput.
package stepper

import (
	"strings"

	"github.com/ppiankov/svcprofile/internal/model"
)

// Question indices.
const (
	StepName = iota
	StepDescription
	StepCriticality
	StepClassification
	StepReachability
	StepAvailability
	StepPrivilege
	StepInteraction

	// StepComplete is the terminal index, reached after the last answer.
	StepComplete
)

// Kind is the type a raw answer is parsed into.
type Kind int

const (
	KindText Kind = iota
	KindRating
	KindFloat
)

// Question is one prompt in the dialogue.
type Question struct {
	Field  string
	Prompt string
	Kind   Kind
}

// Questions are asked in index order.
var Questions = [StepComplete]Question{
	{"service_name", "What is the service name?", KindText},
	{"description", "Briefly describe the service.", KindText},
	{"business_criticality", "Business criticality (1 Mission Critical .. 5 Non Critical)?", KindRating},
	{"data_classification", "Data classification (1 Highly Restricted .. 5 Public)?", KindRating},
	{"reachability", "Reachability (0-2)?", KindFloat},
	{"operational_availability", "Operational availability (0-1)?", KindFloat},
	{"privilege_threshold", "Privilege threshold (0-1)?", KindFloat},
	{"interaction_dependency", "Interaction dependency (0-1)?", KindFloat},
}

// State is the progress of one dialogue. The zero value is not usable; use New.
type State struct {
	Step    int            `json:"step"`
	Answers map[int]string `json:"answers"`
}

// New returns a state at the first question with no answers.
func New() *State {
	return &State{Answers: make(map[int]string)}
}

// Complete reports whether every question has been answered.
func (s *State) Complete() bool {
	return s.Step >= StepComplete
}

// Current returns the pending question, or false once complete.
func (s *State) Current() (Question, bool) {
	if s.Complete() {
		return Question{}, false
	}
	return Questions[s.Step], true
}

// Submit records raw as the answer to the current question and advances.
// Blank input and submissions after completion leave the state unchanged;
// the return value reports whether the state advanced.
func (s *State) Submit(raw string) bool {
	if s.Complete() {
		return false
	}
	answer := strings.TrimSpace(raw)
	if answer == "" {
		return false
	}
	if s.Answers == nil {
		s.Answers = make(map[int]string)
	}
	s.Answers[s.Step] = answer
	s.Step++
	return true
}

// Restart resets to the first question with no answers.
func (s *State) Restart() {
	s.Step = 0
	s.Answers = make(map[int]string)
}

// Finalize parses the stored answers into an input. It returns
// ErrIncomplete before the terminal step and a *ParseError for the first
// answer that does not convert. The state is left untouched either way.
func (s *State) Finalize() (model.ServiceProfileInput, error) {
	var in model.ServiceProfileInput
	if !s.Complete() {
		return in, ErrIncomplete
	}

	in.ServiceName = s.Answers[StepName]
	in.Description = s.Answers[StepDescription]

	var err error
	if in.BusinessCriticality, err = s.rating(StepCriticality); err != nil {
		return in, err
	}
	if in.DataClassification, err = s.rating(StepClassification); err != nil {
		return in, err
	}
	floats := []struct {
		step int
		dst  *float64
	}{
		{StepReachability, &in.Reachability},
		{StepAvailability, &in.OperationalAvailability},
		{StepPrivilege, &in.PrivilegeThreshold},
		{StepInteraction, &in.InteractionDependency},
	}
	for _, f := range floats {
		if *f.dst, err = s.float(f.step); err != nil {
			return in, err
		}
	}
	return in, nil
}
