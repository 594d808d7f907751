package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	t.Parallel()

	err := ErrQueryTooLong.WithDetails("max 128 characters")

	assert.ErrorIs(t, err, ErrQueryTooLong)
	assert.NotErrorIs(t, err, ErrValidationFailed)
	assert.Equal(t, "Search query is too long: max 128 characters", err.Error())
	assert.Equal(t, http.StatusBadRequest, err.HTTPCode())
}

func TestBaseError_WrapMessage(t *testing.T) {
	t.Parallel()

	err := ErrAddressNotFound.WrapMessage("delete address")

	assert.ErrorIs(t, err, ErrAddressNotFound)

	var appErr AppError
	assert.True(t, stderrors.As(err, &appErr))
	assert.Equal(t, "ADDRESS_NOT_FOUND", appErr.ErrorCode())
}

func TestDatabaseExecuteError(t *testing.T) {
	t.Parallel()

	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "failed to list addresses")

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "failed to list addresses", err.Details())
	assert.Contains(t, err.Error(), "connection reset")
}
