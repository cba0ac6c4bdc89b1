package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testStore() *MinioStore {
	return &MinioStore{
		bucket:  "card-images",
		baseURL: "http://localhost:9000/card-images",
	}
}

func TestURLToStoragePath_InvertsPublicURL(t *testing.T) {
	s := testStore()

	filenames := []string{
		"1700000000000000000-a1b2c3d4.jpg",
		"cover.png",
		"nested/path.jpg",
	}
	for _, name := range filenames {
		assert.Equal(t, name, s.URLToStoragePath(s.PublicURL(name)))
	}
}

func TestURLToStoragePath_Idempotent(t *testing.T) {
	s := testStore()

	url := s.PublicURL("photo.jpg")
	path := s.URLToStoragePath(url)
	assert.Equal(t, path, s.URLToStoragePath(path))
}

func TestURLToStoragePath_NoMarkerReturnsInput(t *testing.T) {
	s := testStore()

	assert.Equal(t, "photo.jpg", s.URLToStoragePath("photo.jpg"))
	assert.Equal(t, "http://elsewhere/other-bucket/photo.jpg",
		s.URLToStoragePath("http://elsewhere/other-bucket/photo.jpg"))
}

func TestURLToStoragePath_CustomBaseURL(t *testing.T) {
	s := &MinioStore{
		bucket:  "card-images",
		baseURL: "https://cdn.example.com/card-images",
	}

	url := s.PublicURL("banner.png")
	assert.Equal(t, "https://cdn.example.com/card-images/banner.png", url)
	assert.Equal(t, "banner.png", s.URLToStoragePath(url))
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, "png", extensionFor("image/png"))
	assert.Equal(t, "png", extensionFor("IMAGE/PNG"))
	assert.Equal(t, "jpg", extensionFor("image/jpeg"))
	assert.Equal(t, "jpg", extensionFor("image/jpg"))
	assert.Equal(t, "jpg", extensionFor("application/octet-stream"))
}
