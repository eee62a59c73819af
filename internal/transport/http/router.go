package http

import (
	"net/http"
	"time"

	obsmw "quotes/internal/observability/middleware"
	"quotes/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handler struct {
	Auth   service.AuthService
	Users  service.UserService
	Quotes service.QuoteService
}

type RouterConfig struct {
	CORSOrigins    []string
	RateLimit      int           // requests per minute per IP, 0 disables
	RequestTimeout time.Duration // 0 disables
}

func NewRouter(h *Handler, guard *AuthGuard, cfg RouterConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	if cfg.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.RequestTimeout))
	}
	if cfg.RateLimit > 0 {
		r.Use(httprate.LimitByIP(cfg.RateLimit, 1*time.Minute))
	}
	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-Id"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	r.Use(obsmw.WithRequestLog)
	r.Use(obsmw.WithMetrics(func(req *http.Request) string {
		return chi.RouteContext(req.Context()).RoutePattern()
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1/users", func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Get("/activateAccount/{token}", h.activateAccount)
		r.Get("/{username}", h.getUserByUsername)

		r.Group(func(r chi.Router) {
			r.Use(guard.RequireAuth)
			r.Get("/me", h.me)
			r.Patch("/{id}", h.updateUser)
			r.Delete("/{id}", h.deleteUser)
		})
	})

	r.Route("/api/v1/quotes", func(r chi.Router) {
		r.Get("/", h.listQuotes)
		r.Get("/{id}", h.getQuote)
		r.Get("/user/{userId}", h.listQuotesByUser)

		r.Group(func(r chi.Router) {
			r.Use(guard.RequireAuth)
			r.Post("/", h.createQuote)
			r.Patch("/{id}", h.updateQuote)
			r.Delete("/{id}", h.deleteQuote)
		})
	})

	return r
}
