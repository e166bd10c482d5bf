package scriptenv

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	files, err := envfilter.Filter(root, nil, discovered)
//	if errors.Is(err, scriptenv.ErrEnvironmentRequired) {
//	    // Ask the operator for an environment code
//	}
var (
	// ErrEnvironmentRequired indicates environment-aware directories exist
	// under the working root but no environment code was supplied.
	ErrEnvironmentRequired = errors.New("environment code required")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrRootNotFound indicates the working root does not exist or is not a directory.
	ErrRootNotFound = errors.New("working root not found")

	// ErrNotImplemented indicates a feature is not yet implemented.
	ErrNotImplemented = errors.New("not implemented")
)

// ConfigurationError is returned when the directory layout requires an
// environment code that the caller did not provide. No partial result
// accompanies it; the caller must supply codes and retry.
type ConfigurationError struct {
	// Markers lists the environment markers that triggered the error, if known.
	Markers []string
}

func (e *ConfigurationError) Error() string {
	msg := "found environment aware directories but no environment code passed"
	if len(e.Markers) > 0 {
		msg = fmt.Sprintf("%s (markers: %v)", msg, e.Markers)
	}
	return msg + ". See " + DocumentationURL + "."
}

// Unwrap lets errors.Is match ErrEnvironmentRequired.
func (e *ConfigurationError) Unwrap() error {
	return ErrEnvironmentRequired
}

var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"accepts ",
	"missing required argument",
	"required flag",
	"invalid argument",
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrEnvironmentRequired):
		return ExitConfigError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrRootNotFound):
		return ExitRootNotFound
	}

	// Cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(errStr, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
