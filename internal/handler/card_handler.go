package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	apperrors "promocards/internal/errors"
	"promocards/internal/service"
)

// CardHandler handles card endpoints.
type CardHandler struct {
	cards   service.CardService
	uploads *service.UploadValidator
}

// NewCardHandler creates a new card handler.
func NewCardHandler(cards service.CardService, uploads *service.UploadValidator) *CardHandler {
	return &CardHandler{cards: cards, uploads: uploads}
}

// DeleteResponse is the body returned by the delete endpoints.
type DeleteResponse struct {
	Success bool `json:"success"`
	Deleted *int `json:"deleted,omitempty"`
}

// ListCards godoc
// @Summary List active cards, newest first
// @Tags cards
// @Produce json
// @Success 200 {array} model.Card
// @Failure 500 {object} errors.ErrorResponse
// @Router /cards [get]
func (h *CardHandler) ListCards(c echo.Context) error {
	cards, err := h.cards.ListActive(c.Request().Context())
	if err != nil {
		log.WithError(err).Error("list active cards")
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, apperrors.ErrorResponse{Error: httpErr.Message})
	}
	return c.JSON(http.StatusOK, cards)
}

// CreateCard godoc
// @Summary Submit a new card with optional images
// @Tags cards
// @Accept mpfd
// @Produce json
// @Param businessName formData string true "Business name"
// @Param employeeName formData string true "Employee name"
// @Param webpageUrl formData string false "Webpage URL"
// @Param description formData string true "Description"
// @Param coverImage formData file false "Cover image"
// @Param productImages formData file false "Product images (max 10)"
// @Success 201 {object} model.Card
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cards [post]
func (h *CardHandler) CreateCard(c echo.Context) error {
	draft := service.CardDraft{
		BusinessName: c.FormValue("businessName"),
		EmployeeName: c.FormValue("employeeName"),
		WebpageURL:   c.FormValue("webpageUrl"),
		Description:  c.FormValue("description"),
	}

	var cover *service.Upload
	if fh, err := c.FormFile("coverImage"); err == nil {
		up, err := h.readUpload(fh)
		if err != nil {
			return h.respondError(c, err)
		}
		cover = up
	}

	var products []service.Upload
	if form, err := c.MultipartForm(); err == nil {
		files := form.File["productImages"]
		if len(files) > service.MaxProductImages {
			return h.respondError(c, apperrors.ErrTooManyImages)
		}
		for _, fh := range files {
			up, err := h.readUpload(fh)
			if err != nil {
				return h.respondError(c, err)
			}
			products = append(products, *up)
		}
	}

	card, err := h.cards.Submit(c.Request().Context(), draft, cover, products)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.JSON(http.StatusCreated, card)
}

// DeleteCard godoc
// @Summary Delete one card and its stored images
// @Tags cards
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {object} DeleteResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cards/{id} [delete]
func (h *CardHandler) DeleteCard(c echo.Context) error {
	// An id that does not parse cannot name an existing card.
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, apperrors.ErrorResponse{Error: apperrors.ErrCardNotFound.Error()})
	}

	if err := h.cards.DeleteOne(c.Request().Context(), id); err != nil {
		if !errors.Is(err, apperrors.ErrCardNotFound) {
			log.WithError(err).WithField("card_id", id).Error("delete card")
		}
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, apperrors.ErrorResponse{Error: httpErr.Message})
	}
	return c.JSON(http.StatusOK, DeleteResponse{Success: true})
}

// CleanupExpired godoc
// @Summary Delete every expired card and its stored images
// @Tags cards
// @Produce json
// @Success 200 {object} DeleteResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /cards/cleanup/expired [delete]
func (h *CardHandler) CleanupExpired(c echo.Context) error {
	deleted, err := h.cards.CleanupExpired(c.Request().Context())
	if err != nil {
		log.WithError(err).WithField("deleted", deleted).Error("cleanup expired cards")
		httpErr := apperrors.MapErrorToHTTP(err)
		return c.JSON(httpErr.StatusCode, apperrors.ErrorResponse{Error: httpErr.Message})
	}
	return c.JSON(http.StatusOK, DeleteResponse{Success: true, Deleted: &deleted})
}

// readUpload validates a multipart file and reads it into memory.
func (h *CardHandler) readUpload(fh *multipart.FileHeader) (*service.Upload, error) {
	contentType := fh.Header.Get("Content-Type")
	if err := h.uploads.Validate(contentType, fh.Size); err != nil {
		return nil, err
	}

	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, service.MaxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > service.MaxUploadSize {
		return nil, apperrors.ErrFileTooLarge
	}

	return &service.Upload{
		Filename:    fh.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}

// respondError maps a submission error. Upload and insert failures keep
// their message in the 500 body; the full chain is still logged server-side.
func (h *CardHandler) respondError(c echo.Context, err error) error {
	httpErr := apperrors.MapErrorToHTTP(err)
	msg := httpErr.Message
	if httpErr.StatusCode == http.StatusInternalServerError {
		log.WithError(err).Error("create card")
		msg = err.Error()
	}
	return c.JSON(httpErr.StatusCode, apperrors.ErrorResponse{Error: msg})
}
