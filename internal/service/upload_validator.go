package service

import (
	"strings"

	apperrors "promocards/internal/errors"
)

// MaxUploadSize is the per-file upload ceiling in bytes.
const MaxUploadSize = 10 << 20 // 10 MiB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// UploadValidator checks uploaded files before any bytes reach the object
// store.
type UploadValidator struct{}

// NewUploadValidator creates a new upload validator.
func NewUploadValidator() *UploadValidator {
	return &UploadValidator{}
}

// Validate rejects files that are not JPEG/PNG or exceed the size ceiling.
// The content type comparison is case-insensitive.
func (v *UploadValidator) Validate(contentType string, size int64) error {
	if !allowedImageTypes[strings.ToLower(contentType)] {
		return apperrors.ErrUnsupportedFileType
	}
	if size > MaxUploadSize {
		return apperrors.ErrFileTooLarge
	}
	return nil
}
