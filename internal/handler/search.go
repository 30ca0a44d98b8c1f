package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dharmasatrya/skysearch/internal/models"
	"github.com/dharmasatrya/skysearch/internal/search"
)

type SearchHandler struct {
	orchestrator *search.Orchestrator
}

func NewSearchHandler(orch *search.Orchestrator) *SearchHandler {
	return &SearchHandler{orchestrator: orch}
}

// Search runs the full pipeline. Degraded outcomes are still HTTP 200 with
// the flags set; only a request that fails validation is a 400.
func (h *SearchHandler) Search(c echo.Context) error {
	var params models.SearchParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	outcome := h.orchestrator.SearchFlights(c.Request().Context(), params)
	if outcome.Phase == search.PhaseInvalid {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: outcome.Error,
			Code:    http.StatusBadRequest,
		})
	}

	return c.JSON(http.StatusOK, outcome)
}

// Mock serves generated flights regardless of mode, for demos and UI work.
func (h *SearchHandler) Mock(c echo.Context) error {
	var params models.SearchParams
	if err := c.Bind(&params); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	return c.JSON(http.StatusOK, h.orchestrator.MockFlights(params))
}

// Status reports whether the live flight source is configured.
func (h *SearchHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, models.StatusResponse{
		Configured: h.orchestrator.Configured(),
		Mode:       h.orchestrator.Mode().String(),
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
