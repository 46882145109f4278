package config

import "errors"

var (
	ErrUnknownOption = errors.New("unknown option")
	ErrMissingValue  = errors.New("missing value")
	ErrConflict      = errors.New("conflicting options")
)

// IsUsageError reports whether err came from malformed or conflicting
// command-line arguments.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUnknownOption) ||
		errors.Is(err, ErrMissingValue) ||
		errors.Is(err, ErrConflict)
}
