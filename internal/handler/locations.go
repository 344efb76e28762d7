package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qarenlabs/travelsearch/internal/locations"
)

type LocationsHandler struct {
	client *locations.Client
}

func NewLocationsHandler(client *locations.Client) *LocationsHandler {
	return &LocationsHandler{client: client}
}

func (h *LocationsHandler) Suggest(c echo.Context) error {
	results := h.client.Suggest(c.Request().Context(), c.QueryParam("q"))
	return c.JSON(http.StatusOK, results)
}
