package impl

import (
	"errors"
	"time"

	"quotes/internal/domain"
	"quotes/internal/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenConfig struct {
	Issuer     string
	TTL        time.Duration // session lifetime, 1h in production
	SigningKey []byte        // HS256 secret
}

type sessionClaims struct {
	FirstName string `json:"fname"`
	LastName  string `json:"lname"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	jwt.RegisteredClaims
}

type TokenServiceImpl struct {
	cfg TokenConfig
}

func NewTokenServiceHS256(cfg TokenConfig) *TokenServiceImpl {
	return &TokenServiceImpl{cfg: cfg}
}

func (t *TokenServiceImpl) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := sessionClaims{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Username:  user.Username,
		Email:     user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    t.cfg.Issuer,
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.cfg.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			ID:        uuid.New().String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.cfg.SigningKey)
}

// Verify parses and validates a session token. Expiry is checked with no
// clock-skew leeway; a token is invalid the instant it expires.
func (t *TokenServiceImpl) Verify(tokenStr string) (*service.TokenClaims, error) {
	claims := &sessionClaims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	tok, err := parser.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return t.cfg.SigningKey, nil
	})
	switch {
	case err == nil && tok.Valid:
		// fall through to claim extraction
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, domain.WrapError(domain.KindAuth, "token expired", err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return nil, domain.WrapError(domain.KindAuth, "malformed token", err)
	default:
		return nil, domain.WrapError(domain.KindAuth, "invalid token", err)
	}
	if t.cfg.Issuer != "" && claims.Issuer != t.cfg.Issuer {
		return nil, domain.Auth("invalid token")
	}
	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, domain.WrapError(domain.KindAuth, "invalid token subject", err)
	}
	return &service.TokenClaims{
		UserID:    userID,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Username:  claims.Username,
		Email:     claims.Email,
	}, nil
}
