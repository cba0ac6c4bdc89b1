package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	apperrors "promocards/internal/errors"
	"promocards/internal/polish"
)

// PolishHandler handles the description-polishing endpoint.
type PolishHandler struct {
	polisher polish.Polisher
}

// NewPolishHandler creates a new polish handler.
func NewPolishHandler(polisher polish.Polisher) *PolishHandler {
	return &PolishHandler{polisher: polisher}
}

// PolishRequest represents a polish request.
type PolishRequest struct {
	Description string `json:"description" validate:"required"`
}

// PolishResponse represents a polish response.
type PolishResponse struct {
	Polished string `json:"polished"`
}

// Polish godoc
// @Summary Rewrite a card description via the text-generation endpoint
// @Tags polish
// @Accept json
// @Produce json
// @Param request body PolishRequest true "Description to rewrite"
// @Success 200 {object} PolishResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /polish [post]
func (h *PolishHandler) Polish(c echo.Context) error {
	var req PolishRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "Description is required"})
	}
	if err := c.Validate(&req); err != nil || strings.TrimSpace(req.Description) == "" {
		return c.JSON(http.StatusBadRequest, apperrors.ErrorResponse{Error: "Description is required"})
	}

	polished, err := h.polisher.Polish(c.Request().Context(), req.Description)
	if err != nil {
		log.WithError(err).Error("polish description")
		return c.JSON(http.StatusInternalServerError, apperrors.ErrorResponse{Error: "Failed to polish description"})
	}
	return c.JSON(http.StatusOK, PolishResponse{Polished: polished})
}
