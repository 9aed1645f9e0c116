package stepper

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppiankov/svcprofile/internal/model"
)

var validAnswers = []string{"billing", "invoices and payouts", "2", "3 - Internal", "1.0", "0.5", "0.5", "0.5"}

func answerAll(t *testing.T, s *State, answers []string) {
	t.Helper()
	for _, a := range answers {
		require.True(t, s.Submit(a), "answer %q did not advance", a)
	}
}

func TestNewState(t *testing.T) {
	s := New()
	assert.Equal(t, 0, s.Step)
	assert.Empty(t, s.Answers)
	q, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "service_name", q.Field)
}

func TestEightAnswersReachTerminal(t *testing.T) {
	s := New()
	answerAll(t, s, validAnswers)

	assert.True(t, s.Complete())
	assert.Equal(t, StepComplete, s.Step)
	require.Len(t, s.Answers, 8)
	for i := 0; i < 8; i++ {
		assert.Contains(t, s.Answers, i)
	}
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestEmptySubmissionNeverAdvances(t *testing.T) {
	s := New()
	for _, blank := range []string{"", "   ", "\n", "\t "} {
		assert.False(t, s.Submit(blank))
	}
	assert.Equal(t, 0, s.Step)
	assert.Empty(t, s.Answers)

	s.Submit("billing")
	assert.False(t, s.Submit(""))
	assert.Equal(t, 1, s.Step)
}

func TestSubmitAfterCompleteIsNoop(t *testing.T) {
	s := New()
	answerAll(t, s, validAnswers)
	assert.False(t, s.Submit("extra"))
	assert.Equal(t, StepComplete, s.Step)
	assert.Len(t, s.Answers, 8)
}

func TestRestartFromAnyState(t *testing.T) {
	for n := 0; n <= len(validAnswers); n++ {
		s := New()
		answerAll(t, s, validAnswers[:n])
		s.Restart()
		assert.Equal(t, 0, s.Step)
		assert.NotNil(t, s.Answers)
		assert.Empty(t, s.Answers)
	}
}

func TestFinalize(t *testing.T) {
	s := New()
	answerAll(t, s, validAnswers)

	in, err := s.Finalize()
	require.NoError(t, err)
	assert.Equal(t, model.ServiceProfileInput{
		ServiceName:             "billing",
		Description:             "invoices and payouts",
		BusinessCriticality:     2,
		DataClassification:      3,
		Reachability:            1.0,
		OperationalAvailability: 0.5,
		PrivilegeThreshold:      0.5,
		InteractionDependency:   0.5,
	}, in)
}

func TestFinalizeIncomplete(t *testing.T) {
	s := New()
	s.Submit("billing")
	_, err := s.Finalize()
	assert.ErrorIs(t, err, ErrIncomplete)
}

func TestFinalizeParseErrorKeepsState(t *testing.T) {
	tests := []struct {
		step  int
		raw   string
		field string
	}{
		{StepCriticality, "very", "business_criticality"},
		{StepClassification, "2.5", "data_classification"},
		{StepReachability, "far", "reachability"},
		{StepInteraction, "0,5", "interaction_dependency"},
	}

	for _, tt := range tests {
		answers := append([]string(nil), validAnswers...)
		answers[tt.step] = tt.raw

		s := New()
		answerAll(t, s, answers)

		_, err := s.Finalize()
		var pe *ParseError
		require.True(t, errors.As(err, &pe), "step %d", tt.step)
		assert.Equal(t, tt.step, pe.Step)
		assert.Equal(t, tt.field, pe.Field)
		assert.Equal(t, tt.raw, pe.Raw)
		assert.Contains(t, err.Error(), tt.raw)

		assert.Equal(t, StepComplete, s.Step, "state must not auto-reset")
		assert.Len(t, s.Answers, 8)
	}
}
