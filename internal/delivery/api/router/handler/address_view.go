package handler

import (
	"addressbook/internal/domain/entity"
	"addressbook/internal/usecase"

	"github.com/google/uuid"
)

// AddressRow is one rendered address: the street line as title and the neighborhood below it.
type AddressRow struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Street       string    `json:"street"`
	Number       string    `json:"number"`
	Neighborhood string    `json:"neighborhood"`
}

// SearchResponse is the body returned for a search.
type SearchResponse struct {
	Query string       `json:"query"`
	Total int          `json:"total"`
	Count int          `json:"count"`
	Items []AddressRow `json:"items"`
}

// AddressListResponse is the body returned whenever a whole address book is sent back.
type AddressListResponse struct {
	Total int          `json:"total"`
	Items []AddressRow `json:"items"`
}

func newAddressRow(address *entity.Address) AddressRow {
	return AddressRow{
		ID:           address.ID,
		Title:        address.StreetLine(),
		Subtitle:     address.Neighborhood,
		Street:       address.Street,
		Number:       address.Number,
		Neighborhood: address.Neighborhood,
	}
}

// newAddressRows keeps order and never returns nil, so empty results encode as [].
func newAddressRows(addresses []*entity.Address) []AddressRow {
	rows := make([]AddressRow, 0, len(addresses))
	for _, address := range addresses {
		if address == nil {
			continue
		}
		rows = append(rows, newAddressRow(address))
	}

	return rows
}

func newSearchResponse(result *usecase.SearchResult) SearchResponse {
	rows := newAddressRows(result.Addresses)

	return SearchResponse{
		Query: result.Query,
		Total: result.Total,
		Count: len(rows),
		Items: rows,
	}
}

func newAddressListResponse(addresses []*entity.Address) AddressListResponse {
	rows := newAddressRows(addresses)

	return AddressListResponse{
		Total: len(rows),
		Items: rows,
	}
}
