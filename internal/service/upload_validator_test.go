package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "promocards/internal/errors"
)

func TestUploadValidator_Validate(t *testing.T) {
	v := NewUploadValidator()

	tests := []struct {
		name        string
		contentType string
		size        int64
		wantErr     error
	}{
		{"jpeg ok", "image/jpeg", 1024, nil},
		{"jpg ok", "image/jpg", 1024, nil},
		{"png ok", "image/png", 1024, nil},
		{"uppercase type ok", "IMAGE/PNG", 1024, nil},
		{"exactly at limit", "image/jpeg", MaxUploadSize, nil},
		{"one byte over", "image/jpeg", MaxUploadSize + 1, apperrors.ErrFileTooLarge},
		{"gif rejected", "image/gif", 1024, apperrors.ErrUnsupportedFileType},
		{"webp rejected", "image/webp", 1024, apperrors.ErrUnsupportedFileType},
		{"empty type rejected", "", 1024, apperrors.ErrUnsupportedFileType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.contentType, tt.size)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
