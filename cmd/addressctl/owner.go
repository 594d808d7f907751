package main

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func parseOwner(raw string) (uuid.UUID, error) {
	if raw == "" {
		return uuid.Nil, errors.New("--owner flag is required")
	}

	ownerID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.Wrapf(err, "invalid owner ID %q", raw)
	}
	if ownerID == uuid.Nil {
		return uuid.Nil, errors.New("owner ID must not be the nil UUID")
	}

	return ownerID, nil
}
