package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrUnsupportedBackend_Error(t *testing.T) {
	err := &ErrUnsupportedBackend{Scheme: "oracle"}
	assert.Equal(t, `unsupported database backend "oracle": expected sqlite, mysql or postgresql`, err.Error())
}

func TestErrDatabaseExists_Error(t *testing.T) {
	err := &ErrDatabaseExists{Name: "mscolab"}
	assert.Equal(t, `database "mscolab" exists, please drop it before provisioning test data`, err.Error())
}

func TestErrDriverUnavailable_Error(t *testing.T) {
	err := &ErrDriverUnavailable{Driver: "mysql"}
	assert.Contains(t, err.Error(), `"mysql" is not available`)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("duplicate account id 8")
	assert.Equal(t, "validation error: duplicate account id 8", err.Error())
}
