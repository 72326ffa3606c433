package domain

import (
	"errors"
	"fmt"
)

// ValidationError blocks the triggering action locally. It is never
// forwarded to the upstream API.
type ValidationError struct {
	Field string
	Msg   string
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

// NotFoundError covers the "no rooms available" and "booking not
// resolvable" outcomes. Plain message, no retry.
type NotFoundError struct {
	Resource string
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

// TransientError wraps any failed upstream call. Surfaced as a generic
// "try again" message; only the confirm-by-session flow retries it.
type TransientError struct {
	Op  string
	Err error
}

func (e TransientError) Error() string {
	if e.Op == "" {
		return "upstream request failed"
	}
	return fmt.Sprintf("%s: upstream request failed", e.Op)
}

func (e TransientError) Unwrap() error { return e.Err }

// FatalStateError marks a step reached without its required upstream
// flow state, e.g. the payment page without a booking draft. Callers
// redirect home after a bounded delay instead of rendering the step.
type FatalStateError struct {
	Step string
}

func (e FatalStateError) Error() string {
	if e.Step == "" {
		return "flow state missing"
	}
	return fmt.Sprintf("%s reached without required flow state", e.Step)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsTransient(err error) bool {
	var target TransientError
	return errors.As(err, &target)
}

func IsFatalState(err error) bool {
	var target FatalStateError
	return errors.As(err, &target)
}
