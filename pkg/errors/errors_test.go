package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCapturesTypeAndStack(t *testing.T) {
	err := New(ErrorTypeValidation, "capacity must be positive")

	assert.Equal(t, ErrorTypeValidation, err.Type)
	assert.Equal(t, "validation: capacity must be positive", err.Error())
	assert.NotEmpty(t, err.Stack)
	assert.Contains(t, err.Stack[0].Function, "TestNewCapturesTypeAndStack")
}

func TestWrapPreservesCauseChain(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := Wrap(cause, ErrorTypeConstruction, "pool factory failed")

	assert.Equal(t, "construction: pool factory failed: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Same(t, cause, err.Unwrap())
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeInternal, "broken invariant")
	assert.True(t, IsType(err, ErrorTypeInternal))
	assert.False(t, IsType(err, ErrorTypeValidation))

	// Works through wrapping layers.
	wrapped := Wrap(err, ErrorTypeConstruction, "outer")
	assert.True(t, IsType(wrapped, ErrorTypeConstruction))

	assert.False(t, IsType(stderrors.New("plain"), ErrorTypeInternal))
	assert.False(t, IsType(nil, ErrorTypeInternal))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrorTypeValidation, "bad option").
		WithDetail("option", "capacity").
		WithDetail("value", -1)

	require.NotNil(t, err.Details)
	assert.Equal(t, "capacity", err.Details["option"])
	assert.Equal(t, -1, err.Details["value"])
}
