package storage

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	apperrors "promocards/internal/errors"
)

// ImageStore defines the object-store operations the card service needs.
type ImageStore interface {
	// UploadImage stores the image bytes under a fresh name and returns its
	// public URL.
	UploadImage(ctx context.Context, data []byte, mimeType string) (string, error)
	// DeleteImages batch-deletes the given storage paths. Empty input is a
	// no-op.
	DeleteImages(ctx context.Context, paths []string) error
	// URLToStoragePath converts a public URL back to the storage path it was
	// built from.
	URLToStoragePath(url string) string
}

// Options configures the MinIO-backed store.
type Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	// PublicBaseURL overrides the URL prefix served to clients. When empty
	// it is derived from Endpoint and Bucket.
	PublicBaseURL string
}

// MinioStore is an ImageStore backed by an S3-compatible object store.
type MinioStore struct {
	client  *minio.Client
	bucket  string
	baseURL string
}

// New connects to the object store.
func New(opts Options) (*MinioStore, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("connect object store: %w", err)
	}

	baseURL := strings.TrimRight(opts.PublicBaseURL, "/")
	if baseURL == "" {
		scheme := "http"
		if opts.UseSSL {
			scheme = "https"
		}
		baseURL = fmt.Sprintf("%s://%s/%s", scheme, opts.Endpoint, opts.Bucket)
	}

	return &MinioStore{
		client:  client,
		bucket:  opts.Bucket,
		baseURL: baseURL,
	}, nil
}

// UploadImage stores the bytes under a time-prefixed name with a random
// suffix and returns the public URL. The extension follows the MIME type:
// png for image/png, jpg for everything else.
func (s *MinioStore) UploadImage(ctx context.Context, data []byte, mimeType string) (string, error) {
	name := fmt.Sprintf("%d-%s.%s", time.Now().UnixNano(), uuid.NewString()[:8], extensionFor(mimeType))

	_, err := s.client.PutObject(ctx, s.bucket, name, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: mimeType})
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUploadFailed, err)
	}

	return s.PublicURL(name), nil
}

// DeleteImages removes the given paths in one batch. A nil or empty slice is
// a no-op.
func (s *MinioStore) DeleteImages(ctx context.Context, paths []string) error {
	if len(paths) == 0 {
		return nil
	}

	objects := make(chan minio.ObjectInfo, len(paths))
	for _, p := range paths {
		objects <- minio.ObjectInfo{Key: p}
	}
	close(objects)

	for result := range s.client.RemoveObjects(ctx, s.bucket, objects, minio.RemoveObjectsOptions{}) {
		if result.Err != nil {
			return fmt.Errorf("%w: %s: %v", apperrors.ErrDeleteFailed, result.ObjectName, result.Err)
		}
	}
	return nil
}

// PublicURL builds the public URL for a stored filename.
func (s *MinioStore) PublicURL(filename string) string {
	return s.baseURL + "/" + filename
}

// URLToStoragePath returns the path after the bucket segment of a public
// URL. A URL without that segment is returned unchanged so callers can feed
// raw paths through the same transform.
func (s *MinioStore) URLToStoragePath(url string) string {
	marker := "/" + s.bucket + "/"
	if i := strings.Index(url, marker); i >= 0 {
		return url[i+len(marker):]
	}
	return url
}

func extensionFor(mimeType string) string {
	if strings.EqualFold(mimeType, "image/png") {
		return "png"
	}
	return "jpg"
}
