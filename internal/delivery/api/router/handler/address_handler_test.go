package handler_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"addressbook/config"
	"addressbook/internal/delivery/api"
	"addressbook/internal/delivery/api/middleware"
	"addressbook/internal/delivery/api/router"
	"addressbook/internal/delivery/api/router/handler"
	"addressbook/internal/domain/entity"
	domainerrors "addressbook/internal/domain/errors"
	"addressbook/internal/domain/service"
	mockSvc "addressbook/internal/mocks/service"
	mockUC "addressbook/internal/mocks/usecase"
	"addressbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validToken = "valid-token"

type handlerFixtures struct {
	echo      *echo.Echo
	addressUC *mockUC.MockAddressSearchUsecase
	tokenSvc  *mockSvc.MockTokenService
	ownerID   uuid.UUID
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func setupHandlerTest(t *testing.T) handlerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	addressUC := mockUC.NewMockAddressSearchUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	e := api.NewEcho(cfg, logger, nil)
	r := router.NewRouter(router.RouterParams{
		AddressHandler: handler.NewAddressHandler(handler.AddressHandlerParams{
			AddressUC: addressUC,
			Logger:    logger,
		}),
		AuthMiddleware: middleware.NewAuthMiddleware(tokenSvc),
		Config:         cfg,
	})
	r.RegisterRoutes(e)

	return handlerFixtures{
		echo:      e,
		addressUC: addressUC,
		tokenSvc:  tokenSvc,
		ownerID:   uuid.New(),
	}
}

func (f handlerFixtures) authorize() {
	f.tokenSvc.EXPECT().ValidateToken(validToken).Return(&service.Claims{
		OwnerID: f.ownerID,
		Type:    service.TokenTypeAccess,
	}, nil)
}

func (f handlerFixtures) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+validToken)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}

	return rec, env
}

func sampleAddresses(ownerID uuid.UUID) []*entity.Address {
	return []*entity.Address{
		{ID: uuid.New(), OwnerID: ownerID, Street: "Rua A", Number: "10", Neighborhood: "Centro"},
		{ID: uuid.New(), OwnerID: ownerID, Street: "Rua B", Number: "20", Neighborhood: "Jardim"},
	}
}

func TestHealthCheck(t *testing.T) {
	fx := setupHandlerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAddressHandler_RequiresBearerToken(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(fx handlerFixtures)
	}{
		{name: "missing header"},
		{name: "not a bearer token", header: "Basic dXNlcjpwYXNz"},
		{
			name:   "invalid token",
			header: "Bearer expired",
			setup: func(fx handlerFixtures) {
				fx.tokenSvc.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := setupHandlerTest(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/addresses", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			fx.echo.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)

			var env envelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			require.NotNil(t, env.Error)
			assert.Equal(t, "INVALID_TOKEN", env.Error.Code)
		})
	}
}

func TestAddressHandler_SearchAddresses(t *testing.T) {
	fx := setupHandlerTest(t)
	fx.authorize()

	addresses := sampleAddresses(fx.ownerID)
	fx.addressUC.EXPECT().
		SearchAddresses(mock.Anything, fx.ownerID, "rua a").
		Return(&usecase.SearchResult{Query: "rua a", Total: 2, Addresses: addresses[:1]}, nil)

	rec, env := fx.do(t, http.MethodGet, "/api/v1/addresses?q=rua+a", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, rec.Header().Get("X-Request-Id"), env.Meta.RequestID)

	var body handler.SearchResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, "rua a", body.Query)
	assert.Equal(t, 2, body.Total)
	assert.Equal(t, 1, body.Count)
	require.Len(t, body.Items, 1)
	assert.Equal(t, addresses[0].ID, body.Items[0].ID)
	assert.Equal(t, "Rua A, 10", body.Items[0].Title)
	assert.Equal(t, "Centro", body.Items[0].Subtitle)
}

func TestAddressHandler_SearchAddresses_EmptyQueryAndNoMatch(t *testing.T) {
	fx := setupHandlerTest(t)
	fx.authorize()

	fx.addressUC.EXPECT().
		SearchAddresses(mock.Anything, fx.ownerID, "").
		Return(&usecase.SearchResult{Query: "", Total: 2, Addresses: []*entity.Address{}}, nil)

	rec, env := fx.do(t, http.MethodGet, "/api/v1/addresses", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"query":"","total":2,"count":0,"items":[]}`, string(env.Data))
}

func TestAddressHandler_SearchAddresses_KeepsRequestID(t *testing.T) {
	fx := setupHandlerTest(t)
	fx.authorize()

	fx.addressUC.EXPECT().
		SearchAddresses(mock.Anything, fx.ownerID, "x").
		Return(&usecase.SearchResult{Query: "x", Addresses: []*entity.Address{}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/addresses?q=x", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+validToken)
	req.Header.Set("X-Request-Id", "req-123")
	rec := httptest.NewRecorder()
	fx.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "req-123", rec.Header().Get("X-Request-Id"))
	assert.Contains(t, rec.Body.String(), `"request_id":"req-123"`)
}

func TestAddressHandler_SearchAddresses_QueryTooLong(t *testing.T) {
	fx := setupHandlerTest(t)
	fx.authorize()

	fx.addressUC.EXPECT().
		SearchAddresses(mock.Anything, fx.ownerID, "abcdef").
		Return(nil, domainerrors.ErrQueryTooLong.WithDetails("query must be at most 5 characters"))

	rec, env := fx.do(t, http.MethodGet, "/api/v1/addresses?q=abcdef", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "QUERY_TOO_LONG", env.Error.Code)
	assert.Equal(t, "query must be at most 5 characters", env.Error.Details)
}

func TestAddressHandler_SearchAddresses_UnexpectedError(t *testing.T) {
	fx := setupHandlerTest(t)
	fx.authorize()

	fx.addressUC.EXPECT().
		SearchAddresses(mock.Anything, fx.ownerID, "").
		Return(nil, errors.New("connection refused"))

	rec, env := fx.do(t, http.MethodGet, "/api/v1/addresses", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection refused")
}

func TestAddressHandler_RefreshAddresses(t *testing.T) {
	fx := setupHandlerTest(t)
	fx.authorize()

	fx.addressUC.EXPECT().
		LoadAddresses(mock.Anything, fx.ownerID).
		Return(sampleAddresses(fx.ownerID), nil)

	rec, env := fx.do(t, http.MethodPost, "/api/v1/addresses/refresh", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var body handler.AddressListResponse
	require.NoError(t, json.Unmarshal(env.Data, &body))
	assert.Equal(t, 2, body.Total)
	require.Len(t, body.Items, 2)
	assert.Equal(t, "Rua B, 20", body.Items[1].Title)
}

func TestAddressHandler_ReplaceAddresses(t *testing.T) {
	fx := setupHandlerTest(t)
	fx.authorize()

	want := []usecase.AddressInput{
		{Street: "Rua A", Number: "10", Neighborhood: "Centro"},
		{Street: "Rua B", Number: "20", Neighborhood: "Jardim"},
	}
	fx.addressUC.EXPECT().
		ReplaceAddresses(mock.Anything, fx.ownerID, want).
		Return(sampleAddresses(fx.ownerID), nil)

	body := `{"addresses":[
		{"street":"Rua A","number":"10","neighborhood":"Centro"},
		{"street":"Rua B","number":"20","neighborhood":"Jardim"}
	]}`
	rec, env := fx.do(t, http.MethodPut, "/api/v1/addresses", body)

	require.Equal(t, http.StatusOK, rec.Code)

	var list handler.AddressListResponse
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 2, list.Total)
}

func TestAddressHandler_ReplaceAddresses_ValidationFailed(t *testing.T) {
	fx := setupHandlerTest(t)
	fx.authorize()

	rec, env := fx.do(t, http.MethodPut, "/api/v1/addresses", `{"addresses":[{"number":"10"}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Equal(t, "addresses[0].street is required", env.Error.Details)
}

func TestAddressHandler_ReplaceAddresses_TooLarge(t *testing.T) {
	fx := setupHandlerTest(t)
	fx.authorize()

	fx.addressUC.EXPECT().
		ReplaceAddresses(mock.Anything, fx.ownerID, mock.Anything).
		Return(nil, domainerrors.ErrAddressBookTooLarge)

	rec, env := fx.do(t, http.MethodPut, "/api/v1/addresses", `{"addresses":[{"street":"Rua A"}]}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "ADDRESS_BOOK_TOO_LARGE", env.Error.Code)
}

func TestAddressHandler_AddAddress(t *testing.T) {
	fx := setupHandlerTest(t)
	fx.authorize()

	created := &entity.Address{ID: uuid.New(), OwnerID: fx.ownerID, Street: "Rua C", Number: "s/n", Neighborhood: "Vila", Position: 2}
	fx.addressUC.EXPECT().
		AddAddress(mock.Anything, fx.ownerID, usecase.AddressInput{Street: "Rua C", Number: "s/n", Neighborhood: "Vila"}).
		Return(created, nil)

	rec, env := fx.do(t, http.MethodPost, "/api/v1/addresses", `{"street":"Rua C","number":"s/n","neighborhood":"Vila"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var row handler.AddressRow
	require.NoError(t, json.Unmarshal(env.Data, &row))
	assert.Equal(t, created.ID, row.ID)
	assert.Equal(t, "Rua C, s/n", row.Title)
	assert.Equal(t, "Vila", row.Subtitle)
}

func TestAddressHandler_AddAddress_InvalidBody(t *testing.T) {
	fx := setupHandlerTest(t)
	fx.authorize()

	rec, env := fx.do(t, http.MethodPost, "/api/v1/addresses", `{"street":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestAddressHandler_DeleteAddress(t *testing.T) {
	addressID := uuid.New()

	tests := []struct {
		name     string
		target   string
		ucErr    error
		callsUC  bool
		wantCode int
		wantErr  string
	}{
		{name: "success", target: "/api/v1/addresses/" + addressID.String(), callsUC: true, wantCode: http.StatusNoContent},
		{name: "invalid id", target: "/api/v1/addresses/not-a-uuid", wantCode: http.StatusBadRequest, wantErr: "INVALID_ID"},
		{
			name:     "not found",
			target:   "/api/v1/addresses/" + addressID.String(),
			ucErr:    domainerrors.ErrAddressNotFound,
			callsUC:  true,
			wantCode: http.StatusNotFound,
			wantErr:  "ADDRESS_NOT_FOUND",
		},
		{
			name:     "owned by someone else",
			target:   "/api/v1/addresses/" + addressID.String(),
			ucErr:    domainerrors.ErrAddressOwnershipViolation,
			callsUC:  true,
			wantCode: http.StatusForbidden,
			wantErr:  "ADDRESS_OWNERSHIP_VIOLATION",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := setupHandlerTest(t)
			fx.authorize()

			if tt.callsUC {
				fx.addressUC.EXPECT().DeleteAddress(mock.Anything, fx.ownerID, addressID).Return(tt.ucErr)
			}

			rec, env := fx.do(t, http.MethodDelete, tt.target, "")

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantErr != "" {
				require.NotNil(t, env.Error)
				assert.Equal(t, tt.wantErr, env.Error.Code)
			}
		})
	}
}
