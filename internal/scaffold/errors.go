package scaffold

import (
	"errors"
	"fmt"
)

// ErrCanceled is wrapped by the fatal error returned when the operator
// declines to continue after a recoverable failure.
var ErrCanceled = errors.New("canceled by user")

// Severity classifies scaffold errors.
type Severity int

const (
	// Fatal stops the run.
	Fatal Severity = iota
	// Recoverable lets the operator decide whether to continue without the step.
	Recoverable
)

// String returns the severity name.
func (s Severity) String() string {
	if s == Recoverable {
		return "recoverable"
	}
	return "fatal"
}

// Step names a stage of the scaffold run.
type Step string

const (
	StepOptions   Step = "options"
	StepProject   Step = "project folder"
	StepLayout    Step = "directory structure"
	StepPython    Step = "python resources"
	StepSass      Step = "sass scripts"
	StepVendor    Step = "vendor stylesheets"
	StepViews     Step = "default views"
	StepFavicon   Step = "favicon"
	StepResources Step = "project resources"
	StepRobots    Step = "robots.txt"
	StepBuild     Step = "build"
)

// Error is a failed scaffold step.
type Error struct {
	// Severity is fatal or recoverable.
	Severity Severity
	// Step is where the failure happened.
	Step Step
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newFatal(step Step, message string, cause error) *Error {
	return &Error{Severity: Fatal, Step: step, Message: message, Cause: cause}
}

func newRecoverable(step Step, message string, cause error) *Error {
	return &Error{Severity: Recoverable, Step: step, Message: message, Cause: cause}
}
