package docflow

import (
	"errors"
	"fmt"
)

// ErrorCode represents specific error conditions in the workflow
type ErrorCode int

const (
	// No error occurred
	ErrCodeNone ErrorCode = iota
	// Operation is not allowed in the current phase
	ErrCodeTransitionNotAllowed
	// An observer panicked while being notified
	ErrCodeObserverPanic
)

// TransitionError describes an operation that had no effect in the current phase.
// It is never returned from Document operations; observers receive it.
type TransitionError struct {
	Code   ErrorCode
	From   Phase
	Event  string
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("transition error [%s on %s]: %s", e.From, e.Event, e.Reason)
}

// NewTransitionNotAllowedError creates a new transition not allowed error
func NewTransitionNotAllowedError(from Phase, event string) *TransitionError {
	return &TransitionError{
		Code:   ErrCodeTransitionNotAllowed,
		From:   from,
		Event:  event,
		Reason: fmt.Sprintf("%s is not allowed in phase '%s'", event, from),
	}
}

// ObserverError wraps a panic raised inside an observer callback
type ObserverError struct {
	Callback string
	Panic    any
}

func (e *ObserverError) Error() string {
	return fmt.Sprintf("observer panic in %s: %v", e.Callback, e.Panic)
}

// NewObserverError creates a new observer panic error
func NewObserverError(callback string, recovered any) *ObserverError {
	return &ObserverError{
		Callback: callback,
		Panic:    recovered,
	}
}

// IsTransitionError checks if an error is a TransitionError
func IsTransitionError(err error) bool {
	var te *TransitionError
	return errors.As(err, &te)
}

// IsObserverError checks if an error is an ObserverError
func IsObserverError(err error) bool {
	var oe *ObserverError
	return errors.As(err, &oe)
}

// GetErrorCode returns the error code for known error types
func GetErrorCode(err error) ErrorCode {
	var te *TransitionError
	if errors.As(err, &te) {
		return te.Code
	}
	if IsObserverError(err) {
		return ErrCodeObserverPanic
	}
	return ErrCodeNone
}
