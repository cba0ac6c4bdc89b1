package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"promocards/internal/model"
)

// CardRepository defines card persistence operations.
type CardRepository interface {
	Create(ctx context.Context, card *model.Card) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Card, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	ListActive(ctx context.Context) ([]model.Card, error)
	ListExpired(ctx context.Context) ([]model.Card, error)
}

type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository.
func NewCardRepository(db *gorm.DB) CardRepository {
	return &cardRepository{db: db}
}

// Create inserts a new card. ID, CreatedAt and ExpiresAt are filled on the
// passed struct by the insert.
func (r *cardRepository) Create(ctx context.Context, card *model.Card) error {
	return r.db.WithContext(ctx).Create(card).Error
}

// FindByID finds a card by ID.
func (r *cardRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Card, error) {
	var card model.Card
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&card).Error; err != nil {
		return nil, err
	}
	return &card, nil
}

// DeleteByID removes a card row.
func (r *cardRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Card{}).Error
}

// ListActive returns cards that have not yet expired, newest first.
func (r *cardRepository) ListActive(ctx context.Context) ([]model.Card, error) {
	var cards []model.Card
	if err := r.db.WithContext(ctx).
		Where("expires_at > ?", time.Now()).
		Order("created_at DESC").
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}

// ListExpired returns cards whose expiry has passed, in no particular order.
func (r *cardRepository) ListExpired(ctx context.Context) ([]model.Card, error) {
	var cards []model.Card
	if err := r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Find(&cards).Error; err != nil {
		return nil, err
	}
	return cards, nil
}
