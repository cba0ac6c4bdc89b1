package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "promocards/internal/errors"
	"promocards/internal/model"
	"promocards/internal/repository"
	"promocards/internal/storage"
)

// MaxProductImages is the most product images a single card may carry.
const MaxProductImages = 10

// CardDraft carries the text fields of a card submission.
type CardDraft struct {
	BusinessName string
	EmployeeName string
	WebpageURL   string
	Description  string
}

// Upload carries one validated file from the transport layer.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// CardService orchestrates card submission, listing and deletion against the
// record store and the object store.
type CardService interface {
	Submit(ctx context.Context, draft CardDraft, cover *Upload, products []Upload) (*model.Card, error)
	ListActive(ctx context.Context) ([]model.Card, error)
	DeleteOne(ctx context.Context, id uuid.UUID) error
	CleanupExpired(ctx context.Context) (int, error)
}

type cardService struct {
	repo   repository.CardRepository
	images storage.ImageStore
}

// NewCardService creates a new card service.
func NewCardService(repo repository.CardRepository, images storage.ImageStore) CardService {
	return &cardService{
		repo:   repo,
		images: images,
	}
}

// Submit validates the draft, uploads the images in order, then inserts the
// card. Any upload failure aborts the whole submission before the insert;
// images already uploaded for the same request are not rolled back, so a
// failed submission can leave orphaned objects behind.
func (s *cardService) Submit(ctx context.Context, draft CardDraft, cover *Upload, products []Upload) (*model.Card, error) {
	if strings.TrimSpace(draft.BusinessName) == "" ||
		strings.TrimSpace(draft.EmployeeName) == "" ||
		strings.TrimSpace(draft.Description) == "" {
		return nil, apperrors.ErrMissingField
	}
	if len(products) > MaxProductImages {
		return nil, apperrors.ErrTooManyImages
	}

	var coverURL *string
	if cover != nil {
		url, err := s.images.UploadImage(ctx, cover.Data, cover.ContentType)
		if err != nil {
			return nil, fmt.Errorf("upload cover image: %w", err)
		}
		coverURL = &url
	}

	productURLs := make(model.StringList, 0, len(products))
	for _, p := range products {
		url, err := s.images.UploadImage(ctx, p.Data, p.ContentType)
		if err != nil {
			return nil, fmt.Errorf("upload product image: %w", err)
		}
		productURLs = append(productURLs, url)
	}

	card := &model.Card{
		BusinessName:     draft.BusinessName,
		EmployeeName:     draft.EmployeeName,
		WebpageURL:       draft.WebpageURL,
		Description:      draft.Description,
		CoverImageURL:    coverURL,
		ProductImageURLs: productURLs,
	}
	if err := s.repo.Create(ctx, card); err != nil {
		return nil, fmt.Errorf("insert card: %w", err)
	}
	return card, nil
}

// ListActive returns the non-expired cards, newest first.
func (s *cardService) ListActive(ctx context.Context) ([]model.Card, error) {
	cards, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

// DeleteOne removes a card and its stored images. The storage delete runs
// first: if it fails the row is kept, so the record never outlives its
// images silently. The two steps are not transactional; a crash between them
// leaves a row pointing at deleted objects.
func (s *cardService) DeleteOne(ctx context.Context, id uuid.UUID) error {
	card, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrCardNotFound
		}
		return fmt.Errorf("get card: %w", err)
	}

	if paths := s.imagePaths(card); len(paths) > 0 {
		if err := s.images.DeleteImages(ctx, paths); err != nil {
			return fmt.Errorf("delete card images: %w", err)
		}
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	return nil
}

// CleanupExpired deletes every expired card and its images, one card at a
// time in the order the store returns them. A failure stops the batch and
// returns the count processed so far; remaining cards are picked up by the
// next invocation.
func (s *cardService) CleanupExpired(ctx context.Context) (int, error) {
	expired, err := s.repo.ListExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("list expired cards: %w", err)
	}

	deleted := 0
	for i := range expired {
		card := &expired[i]
		if err := s.images.DeleteImages(ctx, s.imagePaths(card)); err != nil {
			return deleted, fmt.Errorf("delete images for card %s: %w", card.ID, err)
		}
		if err := s.repo.DeleteByID(ctx, card.ID); err != nil {
			return deleted, fmt.Errorf("delete card %s: %w", card.ID, err)
		}
		deleted++
	}
	return deleted, nil
}

func (s *cardService) imagePaths(card *model.Card) []string {
	paths := make([]string, 0, len(card.ProductImageURLs)+1)
	if card.CoverImageURL != nil && *card.CoverImageURL != "" {
		paths = append(paths, s.images.URLToStoragePath(*card.CoverImageURL))
	}
	for _, u := range card.ProductImageURLs {
		paths = append(paths, s.images.URLToStoragePath(u))
	}
	return paths
}
