package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qarenlabs/travelsearch/internal/models"
	"github.com/qarenlabs/travelsearch/internal/providers"
	"github.com/qarenlabs/travelsearch/internal/search"
)

type SearchHandler struct {
	orchestrator *search.Orchestrator
}

func NewSearchHandler(orch *search.Orchestrator) *SearchHandler {
	return &SearchHandler{orchestrator: orch}
}

func (h *SearchHandler) Search(c echo.Context) error {
	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	result, err := h.orchestrator.Search(c.Request().Context(), req)
	if err != nil {
		var vErr *models.ValidationError
		if errors.As(err, &vErr) {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   vErr.Code,
				Message: vErr.Message,
				Code:    http.StatusBadRequest,
			})
		}

		var pErr *providers.ProviderError
		if errors.As(err, &pErr) {
			return c.JSON(http.StatusBadGateway, models.ErrorResponse{
				Error:   "provider_error",
				Message: "Failed to fetch flight offers: " + pErr.Error(),
				Code:    http.StatusBadGateway,
			})
		}

		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "search_error",
			Message: "Failed to search flights: " + err.Error(),
			Code:    http.StatusInternalServerError,
		})
	}

	return c.JSON(http.StatusOK, result)
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
