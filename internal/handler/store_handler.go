package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/service"
)

// StoreHandler handles store endpoints.
type StoreHandler struct {
	storeService service.StoreService
}

// NewStoreHandler creates a new store handler.
func NewStoreHandler(storeService service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// CreateStoreRequest represents a store creation request.
type CreateStoreRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
}

// ListStores godoc
// @Summary List all stores ordered by name
// @Tags stores
// @Produce json
// @Success 200 {array} model.Store
// @Failure 500 {object} errors.ErrorResponse
// @Router /stores [get]
func (h *StoreHandler) ListStores(c echo.Context) error {
	stores, err := h.storeService.List(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, stores)
}

// CreateStore godoc
// @Summary Add a store (admin only)
// @Tags stores
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateStoreRequest true "Store data"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stores [post]
func (h *StoreHandler) CreateStore(c echo.Context) error {
	var req CreateStoreRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	store, err := h.storeService.Create(c.Request().Context(), req.Name, req.Email, req.Address)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "store added",
		"store":   store,
	})
}

// GetStore godoc
// @Summary Get a store with its rating summary
// @Tags stores
// @Produce json
// @Param id path int true "Store ID"
// @Success 200 {object} service.StoreDetail
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stores/{id} [get]
func (h *StoreHandler) GetStore(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid store id")
	}

	detail, err := h.storeService.Get(c.Request().Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, detail)
}
