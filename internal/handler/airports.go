package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/skysearch/internal/airports"
	"github.com/dharmasatrya/skysearch/internal/models"
)

type AirportHandler struct {
	resolver *airports.Resolver
}

func NewAirportHandler(resolver *airports.Resolver) *AirportHandler {
	return &AirportHandler{resolver: resolver}
}

// Search resolves a free-text query to airport records. An unknown query
// yields an empty list with HTTP 200.
func (h *AirportHandler) Search(c echo.Context) error {
	query := c.QueryParam("query")
	if query == "" {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "query is required",
			Code:    http.StatusBadRequest,
		})
	}

	records := h.resolver.Resolve(c.Request().Context(), query)
	if records == nil {
		records = []models.AirportRecord{}
	}
	return c.JSON(http.StatusOK, records)
}

// Nearby resolves airports around device coordinates, used by the client to
// prefill the origin field.
func (h *AirportHandler) Nearby(c echo.Context) error {
	lat, latErr := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if latErr != nil || lngErr != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: "lat and lng must be valid coordinates",
			Code:    http.StatusBadRequest,
		})
	}

	records := h.resolver.Nearby(c.Request().Context(), lat, lng)
	if records == nil {
		records = []models.AirportRecord{}
	}
	return c.JSON(http.StatusOK, records)
}
