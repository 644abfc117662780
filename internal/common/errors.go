// Package common defines sentinel errors and shared constants used across the
// recipe search server. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors (invalid or malformed session token).
	ErrInvalidToken = errors.New("invalid token")

	// Credential store errors.
	ErrUsernameTaken = errors.New("username already exists")

	// Sharing ledger errors.
	ErrReceiverNotFound = errors.New("receiver does not exist")
)
