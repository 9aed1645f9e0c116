package stepper

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ppiankov/svcprofile/internal/model"
)

// ErrIncomplete is returned by Finalize before every question is answered.
var ErrIncomplete = errors.New("dialogue is not complete")

// ParseError reports an answer that could not be converted to its question's type.
type ParseError struct {
	Step  int
	Field string
	Raw   string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("answer %d (%s): cannot parse %q: %v", e.Step+1, e.Field, e.Raw, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (s *State) rating(step int) (int, error) {
	raw := s.Answers[step]
	n, err := model.ParseOption(raw)
	if err != nil {
		return 0, &ParseError{Step: step, Field: Questions[step].Field, Raw: raw, Err: err}
	}
	return n, nil
}

func (s *State) float(step int) (float64, error) {
	raw := s.Answers[step]
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &ParseError{Step: step, Field: Questions[step].Field, Raw: raw, Err: err}
	}
	return v, nil
}
