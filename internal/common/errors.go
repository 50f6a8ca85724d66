// Package common defines shared constants and sentinel errors used across
// ExamPilot components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Account errors.
	ErrValidation         = errors.New("invalid signup input")
	ErrDuplicateAccount   = errors.New("email already registered")
	ErrAccountNotFound    = errors.New("no account for this email")
	ErrInvalidCredentials = errors.New("wrong password")

	// Submission errors. ErrQuotaExceeded is surfaced to the user as an
	// upgrade prompt, not a hard failure.
	ErrQuotaExceeded  = errors.New("daily question limit reached")
	ErrRequestPending = errors.New("a question is already being answered")
	ErrEmptyQuestion  = errors.New("question is empty")

	// Session errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)
