package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AtharvaPatil999/Roxiler-coding-challenge/internal/service"
)

// RatingHandler handles rating endpoints.
type RatingHandler struct {
	ratingService service.RatingService
}

// NewRatingHandler creates a new rating handler.
func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// SubmitRatingRequest represents a rating submission.
type SubmitRatingRequest struct {
	UserID  uint `json:"user_id" validate:"required"`
	StoreID uint `json:"store_id" validate:"required"`
	Rating  int  `json:"rating"`
}

// SubmitRating godoc
// @Summary Submit or update a rating for a store
// @Tags ratings
// @Accept json
// @Produce json
// @Param request body SubmitRatingRequest true "Rating data"
// @Success 200 {object} map[string]interface{} "rating updated"
// @Success 201 {object} map[string]interface{} "rating submitted"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /ratings [post]
func (h *RatingHandler) SubmitRating(c echo.Context) error {
	var req SubmitRatingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rating, created, err := h.ratingService.Submit(c.Request().Context(), req.UserID, req.StoreID, req.Rating)
	if err != nil {
		return respondError(c, err)
	}

	if !created {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"message": "rating updated",
			"rating":  rating,
		})
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "rating submitted",
		"rating":  rating,
	})
}

// GetStoreRatings godoc
// @Summary List all ratings for a store
// @Tags ratings
// @Produce json
// @Param store_id path int true "Store ID"
// @Success 200 {array} model.Rating
// @Failure 500 {object} errors.ErrorResponse
// @Router /ratings/{store_id} [get]
func (h *RatingHandler) GetStoreRatings(c echo.Context) error {
	storeID, err := strconv.ParseUint(c.Param("store_id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid store id")
	}

	ratings, err := h.ratingService.ListForStore(c.Request().Context(), uint(storeID))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, ratings)
}
