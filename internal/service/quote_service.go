package service

import (
	"context"

	"quotes/internal/domain"
	"quotes/internal/dto"
)

type QuoteService interface {
	Create(ctx context.Context, actor *domain.User, r dto.QuoteRequest) (*dto.QuoteData, error)
	List(ctx context.Context) ([]dto.QuoteData, error)
	ListByUser(ctx context.Context, userID domain.UserID) ([]dto.QuoteData, error)
	Get(ctx context.Context, id domain.QuoteID) (*dto.QuoteData, error)
	Update(ctx context.Context, id domain.QuoteID, actor *domain.User, r dto.QuoteRequest) (*dto.QuoteData, error)
	Delete(ctx context.Context, id domain.QuoteID, actor *domain.User) (*dto.QuoteData, error)
}
