package models

import (
	"errors"
	"fmt"
)

var (
	// ErrQuizNotFound is returned when a quiz id does not resolve to a document.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuizNotPublished is returned when a student tries to start an unpublished quiz.
	ErrQuizNotPublished = errors.New("quiz is not published")
	// ErrAttemptNotFound is returned when an attempt id does not resolve to a document.
	ErrAttemptNotFound = errors.New("attempt not found")
	// ErrAttemptCompleted is returned on a duplicate submit; completed attempts are immutable.
	ErrAttemptCompleted = errors.New("attempt already completed")
	// ErrRetakeNotAllowed is returned when a quiz with retakes disabled already
	// has a completed attempt by the student.
	ErrRetakeNotAllowed = errors.New("retake not allowed for this quiz")
	// ErrQuizLocked is returned when editing a quiz whose attempts are in progress.
	ErrQuizLocked = errors.New("quiz has attempts in progress")
	// ErrForbidden is returned when the requester does not own the resource.
	ErrForbidden = errors.New("forbidden")
)

// ValidationError rejects malformed input before any write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
