package app

import (
	"errors"
	"fmt"
)

var (
	ErrStaleResult          = errors.New("result superseded by a newer request")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrLastConversation     = errors.New("cannot delete the last conversation")
	ErrLibraryItemNotFound  = errors.New("library item not found")
	ErrNoContent            = errors.New("no content generated yet")
	ErrSessionNotFound      = errors.New("session not found")
)

// SessionError represents session-related errors
type SessionError struct {
	SessionID string
	Operation string
	Cause     error
}

func (e *SessionError) Error() string {
	return fmt.Sprintf("session error [%s] during %s: %v", e.SessionID, e.Operation, e.Cause)
}

func (e *SessionError) Unwrap() error {
	return e.Cause
}

// NewSessionError creates a new session error
func NewSessionError(sessionID, operation string, cause error) *SessionError {
	return &SessionError{
		SessionID: sessionID,
		Operation: operation,
		Cause:     cause,
	}
}

// ValidationError reports a rejected user input.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
	Cause  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s (value: %v): %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, reason string) *ValidationError {
	return &ValidationError{
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}
