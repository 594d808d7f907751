// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"addressbook/internal/domain/entity"
	"addressbook/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the persistence operations on customer address books.
// Every list it returns is in address book order: position, then creation time, then ID.
type AddressRepository interface {
	// CreateAddress persists a new address. The caller sets Position.
	CreateAddress(ctx context.Context, address *entity.Address) error

	// FindAddressByID retrieves an address by its unique ID.
	FindAddressByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindAddressesByOwner retrieves the owner's whole address book in order.
	FindAddressesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Address, error)

	// CountAddressesByOwner returns the size of the owner's address book.
	CountAddressesByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)

	// NextPosition returns the position an appended address should take.
	NextPosition(ctx context.Context, ownerID uuid.UUID) (int, error)

	// DeleteAddress removes an address by its ID.
	DeleteAddress(ctx context.Context, id uuid.UUID) error

	// DeleteAddressesByOwner removes the owner's whole address book.
	DeleteAddressesByOwner(ctx context.Context, ownerID uuid.UUID) error

	// CreateAddresses inserts a batch of addresses keeping their positions.
	CreateAddresses(ctx context.Context, addresses []*entity.Address) error
}
