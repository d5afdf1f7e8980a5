package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/talx-hub/tour-points/internal/model"
)

type HealthChecker interface {
	Healthy(ctx context.Context) error
}

type HealthHandler struct {
	logger  *slog.Logger
	checker HealthChecker
}

func NewHealthHandler(checker HealthChecker, log *slog.Logger) *HealthHandler {
	return &HealthHandler{
		logger:  log,
		checker: checker,
	}
}

func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	if err := h.checker.Healthy(r.Context()); err != nil {
		h.logger.LogAttrs(r.Context(),
			slog.LevelError,
			"storage is unhealthy",
			slog.Any(model.KeyLoggerError, err),
		)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
