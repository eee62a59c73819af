package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"quotes/internal/config"
	"quotes/internal/domain"
	"quotes/internal/mail"
	"quotes/internal/observability/logging"
	"quotes/internal/observability/metrics"
	impl "quotes/internal/service/impl"
	"quotes/internal/store"
	httpx "quotes/internal/transport/http"
	"quotes/pkg/db"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "dev"
	}

	logger := logging.NewLogger(logging.Config{
		ServiceName: "quotes",
		Environment: env,
		Level:       os.Getenv("LOG_LEVEL"),
	})
	slog.SetDefault(logger)

	logger.Info("starting service")

	cfg := config.Load()
	metrics.MustRegister("quotes")

	gdb, err := db.Open(db.Config{DSN: cfg.DatabaseURL, LogSQL: cfg.LogSQL})
	if err != nil {
		logger.Error("db open", "error", err)
		os.Exit(1)
	}
	if err := gdb.AutoMigrate(&domain.User{}, &domain.Quote{}); err != nil {
		logger.Error("db migrate", "error", err)
		os.Exit(1)
	}

	st := store.New(gdb)

	passwords := impl.NewPasswordServiceBcrypt(impl.DefaultBcryptCost)
	tokens := impl.NewTokenServiceHS256(impl.TokenConfig{
		Issuer:     cfg.Issuer,
		TTL:        cfg.TokenTTL,
		SigningKey: []byte(cfg.SigningKey),
	})
	activation := impl.NewActivationService()
	mailer := mail.NewSMTPMailer(mail.Config{
		Host:     cfg.MailHost,
		Port:     cfg.MailPort,
		Username: cfg.MailUsername,
		Password: cfg.MailPassword,
		From:     cfg.MailFrom,
	})

	authSvc := impl.NewAuthServiceImpl(st, passwords, tokens, activation, mailer, func(rawToken string) string {
		return cfg.FrontendURL + "/verifyUser/" + rawToken
	})
	userSvc := impl.NewUserServiceImpl(st, passwords)
	quoteSvc := impl.NewQuoteServiceImpl(st)

	guard := httpx.NewAuthGuard(tokens, st.Users())
	router := httpx.NewRouter(&httpx.Handler{
		Auth:   authSvc,
		Users:  userSvc,
		Quotes: quoteSvc,
	}, guard, httpx.RouterConfig{
		CORSOrigins:    cfg.CORSOrigins,
		RateLimit:      cfg.RateLimit,
		RequestTimeout: cfg.RequestTimeout,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("quotes api listening", "addr", srv.Addr, "issuer", cfg.Issuer)
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
