package survey

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyTally is returned when observed shares are requested before any
	// response was recorded.
	ErrEmptyTally = errors.New("survey: tally has no responses")

	// ErrBadPopulation indicates a negative population size or a true share
	// outside [0,1].
	ErrBadPopulation = errors.New("survey: invalid population")

	// ErrBadStudy indicates non-positive respondents, fewer than two trials,
	// or a true share outside [0,1].
	ErrBadStudy = errors.New("survey: invalid study configuration")
)

// surveyErrorf wraps err with the operation tag.
func surveyErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
