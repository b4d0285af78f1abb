package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: NewNotFoundError("missing", nil), status: http.StatusNotFound},
		{name: "invalid input", err: NewValidationError("bad", nil), status: http.StatusBadRequest},
		{name: "upstream", err: NewUpstreamError("llm down", nil), status: http.StatusBadGateway},
		{name: "unavailable", err: NewUnavailableError("no dsn", nil), status: http.StatusServiceUnavailable},
		{name: "internal", err: NewInternalError("boom", nil), status: http.StatusInternalServerError},
		{name: "plain error", err: errors.New("anything"), status: http.StatusInternalServerError},
		{name: "wrapped app error", err: fmt.Errorf("context: %w", NewNotFoundError("missing", nil)), status: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, HTTPStatus(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "missing", Message(NewNotFoundError("missing", errors.New("cause"))))
	assert.Equal(t, "plain", Message(errors.New("plain")))
}

func TestTypeChecks(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("m", nil)))
	assert.False(t, IsNotFound(NewValidationError("m", nil)))
	assert.True(t, IsInvalidInput(NewValidationError("m", nil)))
	assert.False(t, IsInvalidInput(errors.New("m")))
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewInternalError("wrapper", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "INTERNAL")
	assert.Contains(t, err.Error(), "root cause")
}
