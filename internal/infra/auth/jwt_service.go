// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"addressbook/config"
	"addressbook/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HMAC-signed JWTs.
type jwtService struct {
	accessSecret []byte
	accessTTL    time.Duration
	issuer       string
	now          func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	ttl := config.DefaultAccessTokenTTL
	issuer := ""
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			ttl = cfg.Auth.AccessTokenTTL
		}
		issuer = cfg.Auth.Issuer
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    ttl,
		issuer:       issuer,
		now:          time.Now,
	}, nil
}

// GenerateAccessToken creates a signed access token whose subject is the owner ID.
func (s *jwtService) GenerateAccessToken(ownerID uuid.UUID) (string, error) {
	now := s.now()
	claims := &service.Claims{
		OwnerID: ownerID,
		Type:    service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   ownerID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// ValidateToken parses and verifies an access token.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}

	if claims.Type != service.TokenTypeAccess {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	if claims.OwnerID == uuid.Nil {
		ownerID, parseErr := uuid.Parse(claims.Subject)
		if parseErr != nil {
			return nil, errors.Wrap(parseErr, "invalid owner ID in token subject")
		}
		claims.OwnerID = ownerID
	}

	return claims, nil
}

// AccessTokenTTL returns the configured lifetime of access tokens.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}
