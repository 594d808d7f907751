package postgres

import (
	"testing"
	"time"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestAddressMappers_RoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Now().UTC()
	address := &entity.Address{
		ID:           uuid.New(),
		OwnerID:      uuid.New(),
		Street:       "Rua Augusta",
		Number:       "12B",
		Neighborhood: "Consolação",
		Position:     4,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	assert.Equal(t, address, toAddressDomain(fromAddressDomain(address)))
	assert.Nil(t, toAddressDomain(nil))
	assert.Nil(t, fromAddressDomain(nil))
}

func TestTranslateWriteError(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, translateWriteError(gorm.ErrDuplicatedKey, "insert"), domainerrors.ErrValidationFailed)
	assert.ErrorIs(t, translateWriteError(errors.New("null value in column"), "insert"), domainerrors.ErrValidationFailed)

	cause := errors.New("connection reset by peer")
	err := translateWriteError(cause, "failed to create address")

	var appErr domainerrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Equal(t, "failed to create address", appErr.Details())
}
