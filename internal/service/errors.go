package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"social-backend/internal/database"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("conflict")
	ErrValidation         = errors.New("validation failed")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError lists the offending input fields keyed by their JSON name.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, e.Fields[name]))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// translate maps store sentinels onto the service taxonomy. Errors already
// in the taxonomy pass through; anything else is returned as is for the
// caller to wrap.
func translate(err error) error {
	if isDomainError(err) {
		return err
	}

	switch {
	case errors.Is(err, database.ErrEmailTaken),
		errors.Is(err, database.ErrUsernameTaken):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	case errors.Is(err, database.ErrUserNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	}
	return err
}

func isDomainError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrConflict) ||
		errors.Is(err, ErrValidation) ||
		errors.Is(err, ErrInvalidCredentials)
}
