package substitution

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned before any store access when the teacher ID
	// or day is empty.
	ErrInvalidInput = errors.New("invalid input")

	// ErrResolutionFailed wraps every store failure. The cause stays reachable
	// through errors.Is / errors.As.
	ErrResolutionFailed = errors.New("resolution failed")
)

func invalidInput(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, msg)
}

func storeFailure(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrResolutionFailed, op, err)
}
