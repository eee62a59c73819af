package impl

import (
	"context"
	"errors"

	"quotes/internal/domain"
	"quotes/internal/store"

	"github.com/google/uuid"
)

// Narrow store contracts so services can be exercised against in-memory
// fakes in tests.

type dataStore interface {
	storeTx
	WithTx(ctx context.Context, fn func(tx storeTx) error) error
}

type storeTx interface {
	Users() userStore
	Quotes() quoteStore
}

type userStore interface {
	Create(ctx context.Context, usr *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	ActivateByTokenHash(ctx context.Context, tokenHash string) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error
	Delete(ctx context.Context, userID uuid.UUID) error
}

type quoteStore interface {
	Create(ctx context.Context, quote *domain.Quote) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Quote, error)
	List(ctx context.Context) ([]*domain.Quote, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*domain.Quote, error)
	Update(ctx context.Context, id uuid.UUID, text, author string) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type gormStoreAdapter struct {
	store *store.Store
}

func (g gormStoreAdapter) Users() userStore { return g.store.Users() }

func (g gormStoreAdapter) Quotes() quoteStore { return g.store.Quotes() }

func (g gormStoreAdapter) WithTx(ctx context.Context, fn func(tx storeTx) error) error {
	if g.store == nil {
		return errors.New("nil store")
	}
	return g.store.WithTx(ctx, func(tx *store.Store) error {
		return fn(gormTxAdapter{tx: tx})
	})
}

type gormTxAdapter struct {
	tx *store.Store
}

func (g gormTxAdapter) Users() userStore { return g.tx.Users() }

func (g gormTxAdapter) Quotes() quoteStore { return g.tx.Quotes() }
