package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainErrorMessage(t *testing.T) {
	err := NewProcessError("failed to start station", fmt.Errorf("exec: not found"))

	assert.Equal(t, "process: failed to start station: exec: not found", err.Error())
	assert.Equal(t, "exec: not found", err.Unwrap().Error())
}

func TestDomainErrorWithoutCause(t *testing.T) {
	err := NewConfigurationError("IMGSTATIONEXE is not set", nil)

	assert.Equal(t, "configuration: IMGSTATIONEXE is not set", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestWithContext(t *testing.T) {
	err := NewValidationError("empty executable", nil).WithContext("executable", "")

	assert.Equal(t, "", err.Context["executable"])
}

func TestTypeChecks(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{name: "validation", err: NewValidationError("v", nil), check: IsValidationError},
		{name: "configuration", err: NewConfigurationError("c", nil), check: IsConfigurationError},
		{name: "process", err: NewProcessError("p", nil), check: IsProcessError},
		{name: "io", err: NewIOError("i", nil), check: IsIOError},
		{name: "transport", err: NewTransportError("t", nil), check: IsTransportError},
		{name: "application", err: NewApplicationError("a", nil), check: IsApplicationError},
		{name: "internal", err: NewInternalError("n", nil), check: IsInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
			assert.False(t, tt.check(NewDomainError(ErrorType("other"), "x", nil)))
		})
	}
}

func TestTypeCheckThroughWrapping(t *testing.T) {
	inner := NewProcessError("spawn failed", nil)
	wrapped := fmt.Errorf("launch: %w", inner)

	assert.True(t, IsProcessError(wrapped))
	assert.False(t, IsTransportError(wrapped))

	var domainErr *DomainError
	assert.True(t, errors.As(wrapped, &domainErr))
	assert.Equal(t, ErrorTypeProcess, domainErr.Type)
}
