// Package middleware holds the API specific echo middlewares.
package middleware

import (
	"strings"

	"addressbook/internal/delivery/api/response"
	deliverycontext "addressbook/internal/delivery/context"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware authenticates address book owners by their access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores its owner on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		code := domainerrors.ErrInvalidToken.ErrorCode()

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, code, "Authorization header is missing")
		}

		if len(authHeader) <= len(bearerPrefix) || !strings.EqualFold(authHeader[:len(bearerPrefix)], bearerPrefix) {
			return response.Unauthorized(c, code, "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(authHeader[len(bearerPrefix):]))
		if err != nil {
			return response.Unauthorized(c, code, domainerrors.ErrInvalidToken.Message())
		}

		if claims.OwnerID == uuid.Nil {
			return response.Unauthorized(c, code, "Owner ID missing from token")
		}

		deliverycontext.SetOwnerID(c, claims.OwnerID)

		return next(c)
	}
}

// GetOwnerID returns the owner authenticated by Authenticate.
func GetOwnerID(c echo.Context) (uuid.UUID, bool) {
	return deliverycontext.GetOwnerID(c)
}
