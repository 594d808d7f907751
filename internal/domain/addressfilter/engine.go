// Package addressfilter implements the in-memory address book filter used by
// the search box: a case-insensitive substring match over an ordered list.
package addressfilter

import (
	"strings"

	"addressbook/internal/domain/entity"
)

// Engine holds an owner's full address list and the view produced by the
// last Load or Search.
//
// Engine is not safe for concurrent use. Callers serialize Load and Search.
type Engine struct {
	all      []*entity.Address
	filtered []*entity.Address
}

// New returns an empty engine.
func New() *Engine {
	return &Engine{}
}

// Load replaces the full list and resets the filtered view to it.
func (e *Engine) Load(addresses []*entity.Address) {
	e.all = addresses
	e.filtered = addresses
}

// Search returns the addresses matching query, in load order.
// An empty query returns the loaded slice itself. Whitespace is not trimmed.
func (e *Engine) Search(query string) []*entity.Address {
	if query == "" {
		e.filtered = e.all

		return e.all
	}

	needle := strings.ToLower(query)
	matches := make([]*entity.Address, 0, len(e.all))
	for _, address := range e.all {
		if matchesLower(address, needle) {
			matches = append(matches, address)
		}
	}
	e.filtered = matches

	return matches
}

// Filtered returns the view computed by the most recent Load or Search.
func (e *Engine) Filtered() []*entity.Address {
	return e.filtered
}

// All returns the loaded list.
func (e *Engine) All() []*entity.Address {
	return e.all
}

// Len returns the size of the loaded list.
func (e *Engine) Len() int {
	return len(e.all)
}

// Matches reports whether address would be included in the result of Search(query).
func Matches(address *entity.Address, query string) bool {
	if query == "" {
		return true
	}

	return matchesLower(address, strings.ToLower(query))
}

// matchesLower checks both candidate strings against an already lowercased needle.
func matchesLower(address *entity.Address, needle string) bool {
	if address == nil {
		return false
	}

	return strings.Contains(strings.ToLower(address.StreetLine()), needle) ||
		strings.Contains(strings.ToLower(address.Neighborhood), needle)
}
