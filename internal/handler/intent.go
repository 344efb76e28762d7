package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/qarenlabs/travelsearch/internal/intent"
	"github.com/qarenlabs/travelsearch/internal/models"
)

type IntentHandler struct {
	extractor *intent.Extractor
}

func NewIntentHandler(extractor *intent.Extractor) *IntentHandler {
	return &IntentHandler{extractor: extractor}
}

type intentRequest struct {
	Text string `json:"text"`
}

// Extract always answers 200: extraction degrades to an unknown intent
// instead of failing, so there is no error branch to expose.
func (h *IntentHandler) Extract(c echo.Context) error {
	var req intentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	result := h.extractor.Extract(c.Request().Context(), req.Text)
	return c.JSON(http.StatusOK, result)
}
