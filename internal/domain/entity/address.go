// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Address is a saved delivery address in a customer's address book.
type Address struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the address.
	OwnerID      uuid.UUID // The customer that owns the address book.
	Street       string    // Street name, e.g. "Rua Augusta".
	Number       string    // House number, kept as text ("12B", "s/n").
	Neighborhood string    // Neighborhood shown as the secondary label.
	Position     int       // Insertion order inside the owner's address book.
	CreatedAt    time.Time // Timestamp of when this address was created.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// StreetLine returns the "{street}, {number}" line used for display and matching.
func (a *Address) StreetLine() string {
	return a.Street + ", " + a.Number
}
