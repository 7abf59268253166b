package store

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

func required(field string) error {
	return fmt.Errorf("%w: %s is required", ErrValidation, field)
}
