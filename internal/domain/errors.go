package domain

import (
	"fmt"
)

// ErrUnsupportedBackend is returned when the connection string scheme is not
// one of sqlite, mysql or postgresql
type ErrUnsupportedBackend struct {
	Scheme string
}

func (e *ErrUnsupportedBackend) Error() string {
	return fmt.Sprintf("unsupported database backend %q: expected sqlite, mysql or postgresql", e.Scheme)
}

// ErrDatabaseExists is returned by test-mode provisioning when it refuses to
// reseed a database that is already present
type ErrDatabaseExists struct {
	Name string
}

func (e *ErrDatabaseExists) Error() string {
	return fmt.Sprintf("database %q exists, please drop it before provisioning test data", e.Name)
}

// ErrDriverUnavailable is returned when the backend's driver was not compiled in
type ErrDriverUnavailable struct {
	Driver string
}

func (e *ErrDriverUnavailable) Error() string {
	return fmt.Sprintf("database driver %q is not available in this build, use sqlite or a build with the driver enabled", e.Driver)
}

// ValidationError represents an error that occurs due to invalid input or parameters
type ValidationError struct {
	Message string
}

// Error implements the error interface
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

// NewValidationError creates a new validation error with the given message
func NewValidationError(message string) error {
	return ValidationError{
		Message: message,
	}
}
