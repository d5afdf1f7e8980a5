package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/talx-hub/tour-points/internal/api/dto"
	"github.com/talx-hub/tour-points/internal/model/points"
	"github.com/talx-hub/tour-points/internal/service/reward"
)

type AdminLedger interface {
	Credit(ctx context.Context,
		userID string, amount int64, reason points.Reason, description, relatedID string,
	) (points.Entry, error)
	Debit(ctx context.Context,
		userID string, amount int64, reason points.Reason, description, relatedID string,
	) (points.Entry, error)
	Refund(ctx context.Context,
		userID string, amount int64, reason points.Reason, description, relatedID string,
	) (points.Entry, error)
}

type RewardService interface {
	Reward(ctx context.Context, userID string, event reward.Event, relatedID string,
	) (points.Entry, error)
}

type postingFunc func(ctx context.Context,
	userID string, amount int64, reason points.Reason, description, relatedID string,
) (points.Entry, error)

// AdminHandler exposes the raw ledger operations to internal callers.
type AdminHandler struct {
	logger    *slog.Logger
	ledger    AdminLedger
	rewards   RewardService
	validator *dto.Validator
}

func NewAdminHandler(ledger AdminLedger, rewards RewardService, log *slog.Logger) *AdminHandler {
	return &AdminHandler{
		logger:    log,
		ledger:    ledger,
		rewards:   rewards,
		validator: dto.NewValidator(),
	}
}

func (h *AdminHandler) Credit(w http.ResponseWriter, r *http.Request) {
	h.post(w, r, h.ledger.Credit)
}

func (h *AdminHandler) Debit(w http.ResponseWriter, r *http.Request) {
	h.post(w, r, h.ledger.Debit)
}

func (h *AdminHandler) Refund(w http.ResponseWriter, r *http.Request) {
	h.post(w, r, h.ledger.Refund)
}

func (h *AdminHandler) Reward(w http.ResponseWriter, r *http.Request) {
	var req dto.RewardRequest
	details, err := decodeAndValidate(r, h.validator, &req)
	if err != nil {
		writeError(r.Context(), h.logger, w, http.StatusBadRequest, "invalid reward request", details)
		return
	}

	e, err := h.rewards.Reward(r.Context(), req.UserID, reward.Event(req.Event), req.RelatedID)
	if err != nil {
		writeLedgerError(r.Context(), h.logger, w, err)
		return
	}
	writeJSON(r.Context(), h.logger, w, http.StatusCreated, dto.NewEntryResponse(e))
}

func (h *AdminHandler) post(w http.ResponseWriter, r *http.Request, apply postingFunc) {
	var req dto.PostingRequest
	details, err := decodeAndValidate(r, h.validator, &req)
	if err != nil {
		writeError(r.Context(), h.logger, w, http.StatusBadRequest, "invalid posting request", details)
		return
	}

	e, err := apply(r.Context(),
		req.UserID,
		req.Amount,
		points.Reason(req.Reason),
		req.Description,
		req.RelatedID,
	)
	if err != nil {
		writeLedgerError(r.Context(), h.logger, w, err)
		return
	}
	writeJSON(r.Context(), h.logger, w, http.StatusCreated, dto.NewEntryResponse(e))
}
