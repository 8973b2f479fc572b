package domain

import (
	"errors"
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Validation errors
var (
	ErrInvalidName        = errors.New("invalid name")
	ErrInvalidDescription = errors.New("invalid description")
)

// MaxNameLength bounds account names and transfer descriptions.
const MaxNameLength = 100

var nameRegex = regexp.MustCompile(`^[\p{L}\p{N} .,()_-]+$`)

// ValidateName validates an account name: non-empty, at most 100 characters,
// restricted to letters, digits, spaces and basic punctuation.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxNameLength)
	}

	if !nameRegex.MatchString(name) {
		return fmt.Errorf("%w: contains forbidden characters", ErrInvalidName)
	}

	return nil
}

// ValidateDescription validates a transfer description. Empty is allowed;
// otherwise the same rule as names applies.
func ValidateDescription(description string) error {
	if description == "" {
		return nil
	}

	if utf8.RuneCountInString(description) > MaxNameLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidDescription, MaxNameLength)
	}

	if !nameRegex.MatchString(description) {
		return fmt.Errorf("%w: contains forbidden characters", ErrInvalidDescription)
	}

	return nil
}
