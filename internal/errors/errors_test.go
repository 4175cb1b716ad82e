package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationError_Creation(t *testing.T) {
	message := "validation failed"
	details := []ValidationDetail{
		{Field: "name", Code: CodeMissingName, Message: "customer name is required"},
		{Field: "phone", Code: CodeMissingPhone, Message: "customer phone is required"},
	}

	err := NewValidationError(message, details...)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
	assert.Len(t, err.Details, 2)
}

func TestValidationError_IsValidationError(t *testing.T) {
	err := NewValidationError("bad input")

	ve, ok := IsValidationError(err)
	assert.True(t, ok)
	assert.NotNil(t, ve)

	ve, ok = IsValidationError(errors.New("some other error"))
	assert.False(t, ok)
	assert.Nil(t, ve)
}

func TestValidationError_HasCode(t *testing.T) {
	err := NewValidationError("bad quantity", ValidationDetail{
		Field: "quantity",
		Code:  CodeNonPositiveQuantity,
	})

	assert.True(t, err.HasCode(CodeNonPositiveQuantity))
	assert.False(t, err.HasCode(CodeMissingName))
}

func TestNotFoundError_Creation(t *testing.T) {
	message := "category not found"
	err := NewNotFoundError(message)

	assert.NotNil(t, err)
	assert.Equal(t, message, err.Message)
	assert.Equal(t, message, err.Error())
}

func TestNotFoundError_IsNotFoundError(t *testing.T) {
	err := NewNotFoundError("test not found")

	nfe, ok := IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)

	nfe, ok = IsNotFoundError(errors.New("some other error"))
	assert.False(t, ok)
	assert.Nil(t, nfe)
}

func TestInternalError_Creation(t *testing.T) {
	cause := errors.New("encoder error")
	err := NewInternalError("encoding order QR code", cause)

	assert.NotNil(t, err)
	assert.Equal(t, "encoding order QR code", err.Message)
	assert.Equal(t, cause, err.Cause)
	assert.Contains(t, err.Error(), "encoding order QR code")
	assert.Contains(t, err.Error(), "encoder error")
}

func TestInternalError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := NewInternalError("wrapper", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, errors.Is(err, cause))
}

func TestInternalError_NilCause(t *testing.T) {
	err := NewInternalError("no cause", nil)

	assert.Equal(t, "no cause", err.Error())
	assert.Nil(t, err.Unwrap())
}
