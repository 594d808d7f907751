package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTypeAccess marks a token accepted by the address book API.
const TokenTypeAccess = "access"

// Claims defines the custom claims carried by access tokens.
type Claims struct {
	OwnerID uuid.UUID `json:"owner_id"`
	Type    string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens identifying an address book owner.
type TokenService interface {
	// GenerateAccessToken creates a signed access token for ownerID.
	GenerateAccessToken(ownerID uuid.UUID) (string, error)

	// ValidateToken parses tokenString and returns its claims when it is a valid access token.
	ValidateToken(tokenString string) (*Claims, error)

	// AccessTokenTTL returns how long issued tokens stay valid.
	AccessTokenTTL() time.Duration
}
