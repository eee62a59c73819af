package service

import (
	"quotes/internal/domain"
)

// TokenClaims is the identity a verified session token resolves to.
type TokenClaims struct {
	UserID    domain.UserID
	FirstName string
	LastName  string
	Username  string
	Email     string
}

type TokenService interface {
	Issue(user *domain.User) (string, error)
	Verify(token string) (*TokenClaims, error)
}
