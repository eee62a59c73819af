package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"quotes/internal/domain"
	"quotes/internal/store"

	"quotes/internal/service"
)

type ctxKey int

const userCtxKey ctxKey = iota

// UserFromContext returns the authenticated user attached by RequireAuth, or
// nil on public routes.
func UserFromContext(ctx context.Context) *domain.User {
	u, _ := ctx.Value(userCtxKey).(*domain.User)
	return u
}

type userLoader interface {
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
}

// AuthGuard resolves a bearer token into an authenticated user. Every private
// route passes through it; handlers behind it can assume a non-nil context
// user.
type AuthGuard struct {
	Tokens service.TokenService
	Users  userLoader
}

func NewAuthGuard(tokens service.TokenService, users userLoader) *AuthGuard {
	return &AuthGuard{Tokens: tokens, Users: users}
}

func (g *AuthGuard) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			writeError(w, domain.Auth("Not authorized to access this page!"))
			return
		}

		claims, err := g.Tokens.Verify(token)
		if err != nil {
			writeError(w, domain.WrapError(domain.KindAuth, "Not authorized to access this page!", err))
			return
		}

		// The token is only a claim; the account must still exist.
		user, err := g.Users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrRecordNotFound) {
				writeError(w, domain.WrapError(domain.KindNotFound, "User does not exist.", domain.ErrUserNotFound))
				return
			}
			writeError(w, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userCtxKey, user)))
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", false
	}
	return token, true
}
