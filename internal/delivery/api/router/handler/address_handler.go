// Package handler contains the echo handlers of the address book API.
package handler

import (
	"log/slog"
	"net/http"

	"addressbook/internal/delivery/api/middleware"
	"addressbook/internal/delivery/api/response"
	domainerrors "addressbook/internal/domain/errors"
	logs "addressbook/internal/infra/log"
	"addressbook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AddressHandlerParams holds dependencies for AddressHandler, injected by Fx.
type AddressHandlerParams struct {
	fx.In

	AddressUC usecase.AddressSearchUsecase
	Logger    *slog.Logger
}

// AddressHandler serves the owner's address book and its search
type AddressHandler struct {
	addressUC usecase.AddressSearchUsecase
	logger    *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler
func NewAddressHandler(params AddressHandlerParams) *AddressHandler {
	return &AddressHandler{
		addressUC: params.AddressUC,
		logger:    params.Logger,
	}
}

// AddressRequest represents one address in a request body
type AddressRequest struct {
	Street       string `json:"street" validate:"required,max=255"`
	Number       string `json:"number" validate:"max=32"`
	Neighborhood string `json:"neighborhood" validate:"max=255"`
}

// ReplaceAddressesRequest represents the request body for replacing the whole address book
type ReplaceAddressesRequest struct {
	Addresses []AddressRequest `json:"addresses" validate:"dive"`
}

func (r AddressRequest) toInput() usecase.AddressInput {
	return usecase.AddressInput{
		Street:       r.Street,
		Number:       r.Number,
		Neighborhood: r.Neighborhood,
	}
}

// SearchAddresses handles GET /addresses?q=. A missing or empty q lists the whole book.
func (h *AddressHandler) SearchAddresses(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), "Invalid owner ID in token")
	}

	// q is passed through untouched; whitespace is part of the query.
	query := c.QueryParam("q")

	result, err := h.addressUC.SearchAddresses(c.Request().Context(), ownerID, query)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newSearchResponse(result))
}

// RefreshAddresses handles POST /addresses/refresh, reloading the book from storage
func (h *AddressHandler) RefreshAddresses(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), "Invalid owner ID in token")
	}

	addresses, err := h.addressUC.LoadAddresses(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newAddressListResponse(addresses))
}

// ReplaceAddresses handles PUT /addresses
func (h *AddressHandler) ReplaceAddresses(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), "Invalid owner ID in token")
	}

	var req ReplaceAddressesRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address book input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	inputs := make([]usecase.AddressInput, 0, len(req.Addresses))
	for _, address := range req.Addresses {
		inputs = append(inputs, address.toInput())
	}

	addresses, err := h.addressUC.ReplaceAddresses(c.Request().Context(), ownerID, inputs)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	logs.FromContext(c.Request().Context(), h.logger).Debug("Address book replaced via API",
		slog.Int("size", len(addresses)),
	)

	return response.Success(c, http.StatusOK, newAddressListResponse(addresses))
}

// AddAddress handles POST /addresses
func (h *AddressHandler) AddAddress(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), "Invalid owner ID in token")
	}

	var req AddressRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	address, err := h.addressUC.AddAddress(c.Request().Context(), ownerID, req.toInput())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newAddressRow(address))
}

// DeleteAddress handles DELETE /addresses/:id
func (h *AddressHandler) DeleteAddress(c echo.Context) error {
	ownerID, ok := middleware.GetOwnerID(c)
	if !ok {
		return response.Unauthorized(c, domainerrors.ErrInvalidToken.ErrorCode(), "Invalid owner ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid address ID")
	}

	if err := h.addressUC.DeleteAddress(c.Request().Context(), ownerID, addressID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
