package impl

import (
	"context"
	"errors"

	"quotes/internal/domain"
	"quotes/internal/dto"
	"quotes/internal/store"

	"github.com/google/uuid"
)

type QuoteServiceImpl struct {
	Store dataStore
}

func NewQuoteServiceImpl(st *store.Store) *QuoteServiceImpl {
	return &QuoteServiceImpl{Store: gormStoreAdapter{store: st}}
}

func (s *QuoteServiceImpl) Create(ctx context.Context, actor *domain.User, r dto.QuoteRequest) (*dto.QuoteData, error) {
	if err := dto.Validate(r); err != nil {
		return nil, err
	}
	quote := &domain.Quote{
		ID:        uuid.New(),
		Text:      r.Text,
		Author:    r.Author,
		CreatedBy: actor.ID,
	}
	if err := s.Store.Quotes().Create(ctx, quote); err != nil {
		return nil, err
	}
	out := dto.NewQuoteData(quote)
	return &out, nil
}

func (s *QuoteServiceImpl) List(ctx context.Context) ([]dto.QuoteData, error) {
	quotes, err := s.Store.Quotes().List(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewQuoteList(quotes), nil
}

func (s *QuoteServiceImpl) ListByUser(ctx context.Context, userID domain.UserID) ([]dto.QuoteData, error) {
	quotes, err := s.Store.Quotes().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return dto.NewQuoteList(quotes), nil
}

func (s *QuoteServiceImpl) Get(ctx context.Context, id domain.QuoteID) (*dto.QuoteData, error) {
	quote, err := s.getQuote(ctx, id)
	if err != nil {
		return nil, err
	}
	out := dto.NewQuoteData(quote)
	return &out, nil
}

func (s *QuoteServiceImpl) Update(ctx context.Context, id domain.QuoteID, actor *domain.User, r dto.QuoteRequest) (*dto.QuoteData, error) {
	if err := dto.Validate(r); err != nil {
		return nil, err
	}
	quote, err := s.getQuote(ctx, id)
	if err != nil {
		return nil, err
	}
	// Owner check compares identifier values; the actor comes from the token
	// path and the quote from the store.
	if quote.CreatedBy != actor.ID {
		return nil, domain.WrapError(domain.KindForbidden, "You cannot edit this quote!", domain.ErrNotOwner)
	}
	if err := s.Store.Quotes().Update(ctx, quote.ID, r.Text, r.Author); err != nil {
		return nil, err
	}
	quote.Text = r.Text
	quote.Author = r.Author
	out := dto.NewQuoteData(quote)
	return &out, nil
}

func (s *QuoteServiceImpl) Delete(ctx context.Context, id domain.QuoteID, actor *domain.User) (*dto.QuoteData, error) {
	quote, err := s.getQuote(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote.CreatedBy != actor.ID {
		return nil, domain.WrapError(domain.KindForbidden, "You cannot delete this quote!", domain.ErrNotOwner)
	}
	if err := s.Store.Quotes().Delete(ctx, quote.ID); err != nil {
		return nil, err
	}
	out := dto.NewQuoteData(quote)
	return &out, nil
}

func (s *QuoteServiceImpl) getQuote(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	quote, err := s.Store.Quotes().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.WrapError(domain.KindNotFound, "Quote with this id cannot be found!", domain.ErrQuoteNotFound)
		}
		return nil, err
	}
	return quote, nil
}
