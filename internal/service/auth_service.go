package service

import (
	"context"

	"quotes/internal/dto"
)

type AuthService interface {
	Register(ctx context.Context, r dto.RegisterRequest) (*dto.UserData, error)
	Activate(ctx context.Context, rawToken string) error
	Login(ctx context.Context, r dto.LoginRequest) (string, error)
}
