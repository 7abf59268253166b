package id

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// New returns a time-ordered UUIDv7 string.
// It falls back to a random UUIDv4 if the v7 generator fails.
func New() string {
	v, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return v.String()
}

// Valid reports whether s parses as a UUID of any version.
func Valid(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}

// Time extracts the creation timestamp encoded in a UUIDv7 string.
func Time(s string) (time.Time, error) {
	v, err := uuid.Parse(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse id: %w", err)
	}
	if v.Version() != 7 {
		return time.Time{}, fmt.Errorf("id %s is version %d, not 7", s, v.Version())
	}
	sec, nsec := v.Time().UnixTime()
	return time.Unix(sec, nsec).UTC(), nil
}
