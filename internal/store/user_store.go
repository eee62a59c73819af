package store

import (
	"context"
	"errors"

	"quotes/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserStore struct{ db *gorm.DB }

func (s *Store) Users() *UserStore { return &UserStore{db: s.DB} }

func (u *UserStore) Create(ctx context.Context, usr *domain.User) error {
	if usr.ID == uuid.Nil {
		usr.ID = uuid.New()
	}
	if err := u.db.WithContext(ctx).Create(usr).Error; err != nil {
		// Unique indexes on email and username back the application-level
		// duplicate checks.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

func (u *UserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	if err := u.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (u *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := u.db.WithContext(ctx).First(&user, "email = ?", email).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (u *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := u.db.WithContext(ctx).First(&user, "username = ?", username).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &user, nil
}

// ActivateByTokenHash flips the account to active and clears the stored token
// hash in one statement. The WHERE clause makes concurrent consumes of the
// same token race for a single row update; the loser sees zero rows.
func (u *UserStore) ActivateByTokenHash(ctx context.Context, tokenHash string) error {
	tx := u.db.WithContext(ctx).Model(&domain.User{}).
		Where("activation_token_hash = ? AND active = ?", tokenHash, false).
		Updates(map[string]any{"active": true, "activation_token_hash": nil})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (u *UserStore) UpdatePassword(ctx context.Context, userID uuid.UUID, passwordHash string) error {
	return u.db.WithContext(ctx).Model(&domain.User{}).
		Where("id = ?", userID).
		Update("password_hash", passwordHash).Error
}

func (u *UserStore) Delete(ctx context.Context, userID uuid.UUID) error {
	return u.db.WithContext(ctx).Delete(&domain.User{}, "id = ?", userID).Error
}
