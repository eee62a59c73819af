package store

import (
	"context"

	"quotes/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QuoteStore struct{ db *gorm.DB }

func (s *Store) Quotes() *QuoteStore { return &QuoteStore{db: s.DB} }

func (q *QuoteStore) Create(ctx context.Context, quote *domain.Quote) error {
	if quote.ID == uuid.Nil {
		quote.ID = uuid.New()
	}
	return q.db.WithContext(ctx).Create(quote).Error
}

func (q *QuoteStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	var quote domain.Quote
	if err := q.db.WithContext(ctx).Preload("Creator").First(&quote, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &quote, nil
}

// List returns all quotes, newest first, with creators preloaded.
func (q *QuoteStore) List(ctx context.Context) ([]*domain.Quote, error) {
	var quotes []*domain.Quote
	if err := q.db.WithContext(ctx).Preload("Creator").
		Order("created_at DESC").Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

func (q *QuoteStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Quote, error) {
	var quotes []*domain.Quote
	if err := q.db.WithContext(ctx).Preload("Creator").
		Where("created_by = ?", userID).
		Order("created_at DESC").Find(&quotes).Error; err != nil {
		return nil, err
	}
	return quotes, nil
}

func (q *QuoteStore) Update(ctx context.Context, id uuid.UUID, text, author string) error {
	return q.db.WithContext(ctx).Model(&domain.Quote{}).
		Where("id = ?", id).
		Updates(map[string]any{"text": text, "author": author}).Error
}

func (q *QuoteStore) Delete(ctx context.Context, id uuid.UUID) error {
	return q.db.WithContext(ctx).Delete(&domain.Quote{}, "id = ?", id).Error
}

// DeleteByUser removes all quotes owned by userID. Used when an account is
// deleted so no orphaned quotes remain.
func (q *QuoteStore) DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	tx := q.db.WithContext(ctx).Delete(&domain.Quote{}, "created_by = ?", userID)
	return tx.RowsAffected, tx.Error
}
