package impl

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"quotes/internal/domain"
	"quotes/internal/dto"
	"quotes/internal/observability/metrics"
	"quotes/internal/service"
	"quotes/internal/store"

	"github.com/google/uuid"
)

type AuthServiceImpl struct {
	Store           dataStore
	PasswordService service.PasswordService
	TokenService    service.TokenService
	Activation      service.ActivationService
	Email           service.EmailService
	ActivationURL   func(rawToken string) string
}

func NewAuthServiceImpl(
	st *store.Store,
	passwords service.PasswordService,
	tokens service.TokenService,
	activation service.ActivationService,
	email service.EmailService,
	activationURL func(rawToken string) string,
) *AuthServiceImpl {
	return &AuthServiceImpl{
		Store:           gormStoreAdapter{store: st},
		PasswordService: passwords,
		TokenService:    tokens,
		Activation:      activation,
		Email:           email,
		ActivationURL:   activationURL,
	}
}

// Register creates an inactive account and emails the activation link. The
// insert and the email send share one transaction: if the mail cannot be
// handed to the transport, the registration is rolled back instead of leaving
// an account nobody can activate.
func (a *AuthServiceImpl) Register(ctx context.Context, r dto.RegisterRequest) (*dto.UserData, error) {
	result := "success"
	defer func() {
		metrics.RegistrationsTotal.WithLabelValues(result).Inc()
	}()

	if err := dto.Validate(r); err != nil {
		result = "invalid"
		return nil, err
	}
	email := strings.ToLower(strings.TrimSpace(r.Email))

	var out dto.UserData
	err := a.Store.WithTx(ctx, func(tx storeTx) error {
		// 1) duplicate checks ahead of the unique indexes for friendly errors
		if _, err := tx.Users().GetByEmail(ctx, email); err == nil {
			return domain.Conflict("Email already in use. Please use a different email!")
		} else if !errors.Is(err, store.ErrRecordNotFound) {
			return err
		}
		if _, err := tx.Users().GetByUsername(ctx, r.Username); err == nil {
			return domain.Conflict("This username is taken. Choose another username!")
		} else if !errors.Is(err, store.ErrRecordNotFound) {
			return err
		}

		// 2) hash password, mint activation token
		hash, err := a.PasswordService.Hash(r.Password)
		if err != nil {
			return err
		}
		rawToken, tokenHash, err := a.Activation.Generate()
		if err != nil {
			return err
		}

		// 3) persist the inactive account
		u := &domain.User{
			ID:                  uuid.New(),
			FirstName:           r.FirstName,
			LastName:            r.LastName,
			Username:            r.Username,
			Email:               email,
			PasswordHash:        hash,
			Active:              false,
			ActivationTokenHash: &tokenHash,
		}
		if err := tx.Users().Create(ctx, u); err != nil {
			if errors.Is(err, store.ErrDuplicateKey) {
				return domain.Conflict("Email already in use. Please use a different email!")
			}
			return err
		}

		// 4) send the activation email; a failure aborts the registration
		if err := a.Email.SendActivation(ctx, u.Email, u.FullName(), a.ActivationURL(rawToken)); err != nil {
			return domain.WrapError(domain.KindServer, "There was an error sending the email. Please try again!", err)
		}

		out = dto.NewUserData(u)
		return nil
	})
	if err != nil {
		result = "failure"
		return nil, err
	}

	slog.Info("user registered", "user_id", out.ID, "username", out.Username)
	return &out, nil
}

// Activate consumes a raw activation token. The store applies the lookup and
// the state change as one atomic update, so a token can be consumed at most
// once even under concurrent requests.
func (a *AuthServiceImpl) Activate(ctx context.Context, rawToken string) error {
	result := "success"
	defer func() {
		metrics.ActivationsTotal.WithLabelValues(result).Inc()
	}()

	if rawToken == "" {
		result = "invalid"
		return domain.Validation("Invalid activation token!")
	}
	err := a.Store.Users().ActivateByTokenHash(ctx, a.Activation.Hash(rawToken))
	if err != nil {
		result = "failure"
		if errors.Is(err, store.ErrRecordNotFound) {
			return domain.WrapError(domain.KindValidation, "Invalid activation token!", domain.ErrInvalidActivationToken)
		}
		return err
	}
	return nil
}

// Login exchanges email+password for a signed session token. Unknown email
// and wrong password produce the same error so accounts cannot be enumerated.
func (a *AuthServiceImpl) Login(ctx context.Context, r dto.LoginRequest) (string, error) {
	result := "success"
	defer func() {
		metrics.LoginsTotal.WithLabelValues(result).Inc()
	}()

	if r.Email == "" || r.Password == "" {
		result = "invalid"
		return "", domain.Validation("Email and password fields are required.")
	}

	user, err := a.Store.Users().GetByEmail(ctx, strings.ToLower(strings.TrimSpace(r.Email)))
	if err != nil {
		result = "failure"
		return "", domain.WrapError(domain.KindAuth, "Invalid credentials!", domain.ErrInvalidCredentials)
	}
	if !a.PasswordService.Verify(r.Password, user.PasswordHash) {
		result = "failure"
		return "", domain.WrapError(domain.KindAuth, "Invalid credentials!", domain.ErrInvalidCredentials)
	}
	if !user.Active {
		result = "inactive"
		return "", domain.WrapError(domain.KindValidation,
			"User is not active. Please activate your account and try again.", domain.ErrUserNotActive)
	}

	token, err := a.TokenService.Issue(user)
	if err != nil {
		result = "failure"
		return "", err
	}

	metrics.TokensIssuedTotal.WithLabelValues("login", "success").Inc()
	slog.Info("user logged in", "user_id", user.ID, "username", user.Username)
	return token, nil
}
