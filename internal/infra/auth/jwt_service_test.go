package auth

import (
	"testing"
	"time"

	"addressbook/config"
	"addressbook/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = secret
	cfg.Auth = &config.AuthConfig{AccessTokenTTL: 10 * time.Minute, Issuer: "addressbook"}

	return cfg
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("test_access_secret_key_very_long_for_testing"))
	require.NoError(t, err)

	ownerID := uuid.New()
	token, err := svc.GenerateAccessToken(ownerID)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, ownerID, claims.OwnerID)
	assert.Equal(t, ownerID.String(), claims.Subject)
	assert.Equal(t, service.TokenTypeAccess, claims.Type)
	assert.Equal(t, 10*time.Minute, svc.AccessTokenTTL())
}

func TestJWTService_MissingSecret(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig(""))
	assert.Error(t, err)
	assert.Nil(t, svc)
}

func TestJWTService_RejectsInvalidTokens(t *testing.T) {
	t.Parallel()

	svc, err := NewJWTService(newTestConfig("secret-a"))
	require.NoError(t, err)
	other, err := NewJWTService(newTestConfig("secret-b"))
	require.NoError(t, err)

	foreign, err := other.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	expiredSvc := svc.(*jwtService)
	expiredIssuer := &jwtService{
		accessSecret: expiredSvc.accessSecret,
		accessTTL:    time.Minute,
		issuer:       expiredSvc.issuer,
		now:          func() time.Time { return time.Now().Add(-time.Hour) },
	}
	expired, err := expiredIssuer.GenerateAccessToken(uuid.New())
	require.NoError(t, err)

	refreshLike := jwt.NewWithClaims(jwt.SigningMethodHS256, &service.Claims{
		OwnerID: uuid.New(),
		Type:    "refresh",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "addressbook",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	})
	wrongType, err := refreshLike.SignedString([]byte("secret-a"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "clearly-not-a-jwt-token-format"},
		{name: "wrong secret", token: foreign},
		{name: "expired", token: expired},
		{name: "wrong type", token: wrongType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			claims, err := svc.ValidateToken(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
