package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrStepFailed    = errors.New("step failed")
	ErrEmptyCommand  = errors.New("command cannot be empty")
	ErrNoSteps       = errors.New("rule has no steps")
	ErrConfigExists  = errors.New("config file already exists")
	ErrInvalidFormat = errors.New("invalid output format")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrConfigNil     = errors.New("config cannot be nil")
	ErrNoLog         = errors.New("no log file")
	ErrRunAborted    = errors.New("run aborted before the rule finished")
)

// StepError reports the step that aborted a rule.
// ExitCode is -1 when the process could not be started or was killed.
type StepError struct {
	Err      error
	Step     string
	ExitCode int
}

func (e *StepError) Error() string {
	if e.ExitCode >= 0 {
		return fmt.Sprintf("step %q failed with exit code %d", e.Step, e.ExitCode)
	}
	return fmt.Sprintf("step %q failed: %v", e.Step, e.Err)
}

// Unwrap returns the underlying execution error.
func (e *StepError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrStepFailed.
func (e *StepError) Is(target error) bool {
	return target == ErrStepFailed
}
