package impl

import (
	"context"
	"errors"
	"log/slog"

	"quotes/internal/domain"
	"quotes/internal/dto"
	"quotes/internal/service"
	"quotes/internal/store"
)

type UserServiceImpl struct {
	Store           dataStore
	PasswordService service.PasswordService
}

func NewUserServiceImpl(st *store.Store, passwords service.PasswordService) *UserServiceImpl {
	return &UserServiceImpl{
		Store:           gormStoreAdapter{store: st},
		PasswordService: passwords,
	}
}

func (s *UserServiceImpl) GetByUsername(ctx context.Context, username string) (*dto.UserProfile, error) {
	user, err := s.Store.Users().GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, domain.WrapError(domain.KindNotFound, "User not found!", domain.ErrUserNotFound)
		}
		return nil, err
	}
	quotes, err := s.Store.Quotes().ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.UserProfile{
		UserData: dto.NewUserData(user),
		Quotes:   dto.NewQuoteList(quotes),
	}, nil
}

// ChangePassword rewrites the stored hash after re-verifying the old
// password. Only the account owner may do this.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, id domain.UserID, actor *domain.User, r dto.ChangePasswordRequest) error {
	if err := dto.Validate(r); err != nil {
		return err
	}

	user, err := s.Store.Users().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return domain.WrapError(domain.KindNotFound, "User not found!", domain.ErrUserNotFound)
		}
		return err
	}
	if user.ID != actor.ID {
		return domain.WrapError(domain.KindForbidden, "You are not authorized to update this user!", domain.ErrNotOwner)
	}
	if !s.PasswordService.Verify(r.OldPassword, user.PasswordHash) {
		return domain.Validation("Incorrect password!")
	}

	hash, err := s.PasswordService.Hash(r.NewPassword)
	if err != nil {
		return err
	}
	if err := s.Store.Users().UpdatePassword(ctx, user.ID, hash); err != nil {
		return err
	}

	slog.Info("password changed", "user_id", user.ID)
	return nil
}

// Delete removes the account and, in the same transaction, every quote it
// owns.
func (s *UserServiceImpl) Delete(ctx context.Context, id domain.UserID, actor *domain.User) (*dto.UserData, error) {
	var out dto.UserData
	err := s.Store.WithTx(ctx, func(tx storeTx) error {
		user, err := tx.Users().GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				return domain.WrapError(domain.KindNotFound, "User not found!", domain.ErrUserNotFound)
			}
			return err
		}
		if user.ID != actor.ID {
			return domain.WrapError(domain.KindForbidden, "You are not authorized to delete this user!", domain.ErrNotOwner)
		}

		removed, err := tx.Quotes().DeleteByUser(ctx, user.ID)
		if err != nil {
			return err
		}
		if err := tx.Users().Delete(ctx, user.ID); err != nil {
			return err
		}

		slog.Info("user deleted", "user_id", user.ID, "quotes_removed", removed)
		out = dto.NewUserData(user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
