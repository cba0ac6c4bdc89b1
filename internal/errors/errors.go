package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrCardNotFound is returned when a card does not exist.
	ErrCardNotFound = errors.New("Card not found")
	// ErrMissingField is returned when a required card field is empty.
	ErrMissingField = errors.New("businessName, employeeName and description are required")
	// ErrTooManyImages is returned when more than 10 product images are submitted.
	ErrTooManyImages = errors.New("a maximum of 10 product images is allowed")
	// ErrUnsupportedFileType is returned when an upload is not a JPEG or PNG.
	ErrUnsupportedFileType = errors.New("only JPEG and PNG images are allowed")
	// ErrFileTooLarge is returned when an upload exceeds the size limit.
	ErrFileTooLarge = errors.New("image exceeds the 10MB size limit")
	// ErrUploadFailed is returned when the object store rejects a write.
	ErrUploadFailed = errors.New("image upload failed")
	// ErrDeleteFailed is returned when the object store rejects a delete.
	ErrDeleteFailed = errors.New("image delete failed")
	// ErrPolishNotConfigured is returned when no text-generation credential is set.
	ErrPolishNotConfigured = errors.New("text polishing is not configured")
	// ErrPolishUpstream is returned when the text-generation call fails.
	ErrPolishUpstream = errors.New("text polishing request failed")
)

// ErrorResponse is the JSON body sent for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Client-input and
// not-found errors keep their message; everything else is a dependent-service
// failure and collapses to a generic 500 message.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrCardNotFound):
		return NewHTTPError(http.StatusNotFound, ErrCardNotFound.Error())
	case errors.Is(err, ErrMissingField),
		errors.Is(err, ErrTooManyImages),
		errors.Is(err, ErrUnsupportedFileType),
		errors.Is(err, ErrFileTooLarge):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
