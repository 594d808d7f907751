// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/repository"
	"addressbook/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const addressInsertBatchSize = 100

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// bookOrder sorts an owner's addresses in insertion order.
func bookOrder(tx *gorm.DB) *gorm.DB {
	return tx.Order("position ASC").Order("created_at ASC").Order("id ASC")
}

// CreateAddress persists a new address.
func (repo *addressRepository) CreateAddress(ctx context.Context, address *entity.Address) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Create(addressM).Error; err != nil {
		return translateWriteError(err, "failed to create address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// CreateAddresses inserts a batch of addresses keeping their positions.
func (repo *addressRepository) CreateAddresses(ctx context.Context, addresses []*entity.Address) error {
	if len(addresses) == 0 {
		return nil
	}

	models := make([]*model.AddressModel, 0, len(addresses))
	for _, address := range addresses {
		models = append(models, fromAddressDomain(address))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(models, addressInsertBatchSize).Error; err != nil {
		return translateWriteError(err, "failed to create addresses")
	}

	for i, addressM := range models {
		addresses[i].ID = addressM.ID
		addresses[i].CreatedAt = addressM.CreatedAt
		addresses[i].UpdatedAt = addressM.UpdatedAt
	}

	return nil
}

// FindAddressByID retrieves an address by its unique ID.
func (repo *addressRepository) FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error) {
	var addressM model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&addressM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindAddressesByOwner retrieves the owner's whole address book in order.
func (repo *addressRepository) FindAddressesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Address, error) {
	var addressModels []*model.AddressModel
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Scopes(bookOrder).
		Find(&addressModels).Error

	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by owner")
	}

	addresses := make([]*entity.Address, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// CountAddressesByOwner returns the size of the owner's address book.
func (repo *addressRepository) CountAddressesByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Where("owner_id = ?", ownerID).
		Count(&count).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to count addresses by owner")
	}

	return count, nil
}

// NextPosition returns one past the highest position in the owner's book.
func (repo *addressRepository) NextPosition(ctx context.Context, ownerID uuid.UUID) (int, error) {
	var next int
	err := repo.db.WithContext(ctx).
		Model(&model.AddressModel{}).
		Select("COALESCE(MAX(position) + 1, 0)").
		Where("owner_id = ?", ownerID).
		Scan(&next).Error

	if err != nil {
		return 0, errors.Wrap(err, "failed to compute next address position")
	}

	return next, nil
}

// DeleteAddress removes an address by its ID.
func (repo *addressRepository) DeleteAddress(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.AddressModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}

	// If no rows were affected, it means the address was not found.
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}

// DeleteAddressesByOwner removes the owner's whole address book.
func (repo *addressRepository) DeleteAddressesByOwner(ctx context.Context, ownerID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Delete(&model.AddressModel{}).Error

	if err != nil {
		return errors.Wrap(err, "failed to delete addresses by owner")
	}

	return nil
}

// translateWriteError converts PostgreSQL errors to domain errors
func translateWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("address already exists")
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("missing or invalid address information")
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// --- Mapper Functions ---

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Street:       data.Street,
		Number:       data.Number,
		Neighborhood: data.Neighborhood,
		Position:     data.Position,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

// fromAddressDomain converts a domain Address entity to a GORM AddressModel.
func fromAddressDomain(data *entity.Address) *model.AddressModel {
	if data == nil {
		return nil
	}

	return &model.AddressModel{
		ID:           data.ID,
		OwnerID:      data.OwnerID,
		Street:       data.Street,
		Number:       data.Number,
		Neighborhood: data.Neighborhood,
		Position:     data.Position,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
