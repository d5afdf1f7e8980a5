package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/talx-hub/tour-points/internal/api/middlewares"
	"github.com/talx-hub/tour-points/internal/metrics"
	"github.com/talx-hub/tour-points/internal/service/config"
)

type CustomRouter struct {
	router  *chi.Mux
	logger  *slog.Logger
	cfg     *config.Config
	metrics *metrics.Metrics
}

func New(cfg *config.Config, m *metrics.Metrics, log *slog.Logger) *CustomRouter {
	router := &CustomRouter{
		router:  chi.NewRouter(),
		logger:  log,
		cfg:     cfg,
		metrics: m,
	}

	return router
}

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type PointsHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	GetHistory(w http.ResponseWriter, r *http.Request)
	Purchase(w http.ResponseWriter, r *http.Request)
}

type LocationHandler interface {
	Verify(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type AdminHandler interface {
	Credit(w http.ResponseWriter, r *http.Request)
	Debit(w http.ResponseWriter, r *http.Request)
	Refund(w http.ResponseWriter, r *http.Request)
	Reward(w http.ResponseWriter, r *http.Request)
}

type HealthHandler interface {
	Ping(w http.ResponseWriter, r *http.Request)
}

type Handler interface {
	AuthHandler
	PointsHandler
	LocationHandler
	AdminHandler
	HealthHandler
}

func (cr *CustomRouter) SetRouter(h Handler) {
	allowJSON := middleware.AllowContentType("application/json")

	cr.router.Use(middleware.RequestID)
	cr.router.Use(middlewares.Logging(cr.logger))
	cr.router.Use(cr.metrics.Middleware)

	cr.router.Route("/api/user", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(allowJSON)
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middlewares.Authentication([]byte(cr.cfg.SecretKey), cr.logger))

			r.Route("/points", func(r chi.Router) {
				r.Get("/balance", h.GetBalance)
				r.Get("/history", h.GetHistory)
				r.With(allowJSON).Post("/purchase", h.Purchase)
			})

			r.Route("/locations", func(r chi.Router) {
				r.With(allowJSON).Post("/verify", h.Verify)
				r.Get("/history", h.History)
			})
		})
	})

	cr.router.Route("/api/admin", func(r chi.Router) {
		r.Use(middlewares.AdminToken(cr.cfg.AdminToken, cr.logger))
		r.Use(allowJSON)

		r.Route("/points", func(r chi.Router) {
			r.Post("/credit", h.Credit)
			r.Post("/debit", h.Debit)
			r.Post("/refund", h.Refund)
		})
		r.Post("/rewards", h.Reward)
	})

	cr.router.Get("/ping", h.Ping)
	cr.router.Method(http.MethodGet, "/metrics", cr.metrics.Handler())

	cr.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w,
			http.StatusText(http.StatusMethodNotAllowed),
			http.StatusMethodNotAllowed)
	})
}

func (cr *CustomRouter) GetRouter() *chi.Mux {
	return cr.router
}
