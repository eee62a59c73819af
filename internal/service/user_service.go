package service

import (
	"context"

	"quotes/internal/domain"
	"quotes/internal/dto"
)

type UserService interface {
	GetByUsername(ctx context.Context, username string) (*dto.UserProfile, error)
	ChangePassword(ctx context.Context, id domain.UserID, actor *domain.User, r dto.ChangePasswordRequest) error
	Delete(ctx context.Context, id domain.UserID, actor *domain.User) (*dto.UserData, error)
}
