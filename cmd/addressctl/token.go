package main

import (
	"fmt"
	"io"

	"addressbook/config"
	"addressbook/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// runToken prints an access token for ownerID signed with the configured secret.
func runToken(w io.Writer, ownerID uuid.UUID) error {
	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "failed to load config")
	}

	tokenSvc, err := auth.NewJWTService(cfg)
	if err != nil {
		return err
	}

	token, err := tokenSvc.GenerateAccessToken(ownerID)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, token)
	fmt.Fprintf(w, "# owner %s, valid for %s\n", ownerID, tokenSvc.AccessTokenTTL())

	return nil
}
