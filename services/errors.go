package services

import (
	"errors"
	"fmt"
)

// Errors surfaced to the HTTP layer. Wrap with fmt.Errorf("%w: ...") so
// callers can classify with errors.Is.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrInternal     = errors.New("internal failure")
)

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func internal(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrInternal, op, err)
}

func requireOwner(owner string) error {
	if owner == "" {
		return ErrUnauthorized
	}
	return nil
}
