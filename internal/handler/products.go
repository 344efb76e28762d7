package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qarenlabs/travelsearch/internal/catalog"
	"github.com/qarenlabs/travelsearch/internal/models"
)

type ProductsHandler struct {
	catalog *catalog.Catalog
}

func NewProductsHandler(cat *catalog.Catalog) *ProductsHandler {
	return &ProductsHandler{catalog: cat}
}

type productSearchRequest struct {
	Domain   string         `json:"domain"`
	Filters  map[string]any `json:"filters"`
	Priority string         `json:"priority"`
}

func (h *ProductsHandler) Search(c echo.Context) error {
	var req productSearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	filters := catalog.ParseFilters(req.Filters)
	items := h.catalog.Search(req.Domain, filters, req.Priority)

	return c.JSON(http.StatusOK, map[string]any{
		"results": items,
		"total":   len(items),
	})
}
