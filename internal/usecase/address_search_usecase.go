package usecase

import (
	"context"

	"addressbook/internal/domain/entity"

	"github.com/google/uuid"
)

// AddressInput represents one address supplied by the client
type AddressInput struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
}

// SearchResult is the filtered view of an owner's address book
type SearchResult struct {
	Query     string
	Total     int // size of the full address book
	Addresses []*entity.Address
}

// AddressSearchUsecase defines the address book search use cases.
// Results always keep address book order.
type AddressSearchUsecase interface {
	// LoadAddresses reloads the owner's address book from storage and returns it whole.
	LoadAddresses(ctx context.Context, ownerID uuid.UUID) ([]*entity.Address, error)

	// SearchAddresses filters the owner's address book. An empty query returns the whole book.
	SearchAddresses(ctx context.Context, ownerID uuid.UUID, query string) (*SearchResult, error)

	// ReplaceAddresses replaces the owner's whole address book and returns the new one.
	ReplaceAddresses(ctx context.Context, ownerID uuid.UUID, inputs []AddressInput) ([]*entity.Address, error)

	// AddAddress appends one address to the end of the owner's address book.
	AddAddress(ctx context.Context, ownerID uuid.UUID, input AddressInput) (*entity.Address, error)

	// DeleteAddress removes one address owned by ownerID.
	DeleteAddress(ctx context.Context, ownerID, addressID uuid.UUID) error
}
