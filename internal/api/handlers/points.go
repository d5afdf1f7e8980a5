package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/talx-hub/tour-points/internal/api/dto"
	"github.com/talx-hub/tour-points/internal/model/points"
	"github.com/talx-hub/tour-points/internal/serviceerrs"
)

type PointsService interface {
	CurrentBalance(ctx context.Context, userID string) (int64, error)
	History(ctx context.Context, userID string, page, size int) ([]points.Entry, error)
	Purchase(ctx context.Context,
		userID, productID, productName string, pointsRequired int64,
	) (points.Entry, error)
}

type PointsHandler struct {
	userRetriever
	logger    *slog.Logger
	ledger    PointsService
	validator *dto.Validator
	pageSize  int
}

func NewPointsHandler(ledger PointsService, pageSize int, log *slog.Logger) *PointsHandler {
	return &PointsHandler{
		logger:    log,
		ledger:    ledger,
		validator: dto.NewValidator(),
		pageSize:  pageSize,
	}
}

func (h *PointsHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r.Context())
	if err != nil {
		writeInternal(r.Context(), h.logger, w, "balance request without user", err)
		return
	}

	balance, err := h.ledger.CurrentBalance(r.Context(), userID)
	if err != nil {
		writeInternal(r.Context(), h.logger, w, "failed to resolve balance", err)
		return
	}
	writeJSON(r.Context(), h.logger, w, http.StatusOK, dto.BalanceResponse{Balance: balance})
}

func (h *PointsHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r.Context())
	if err != nil {
		writeInternal(r.Context(), h.logger, w, "history request without user", err)
		return
	}

	page, err := queryInt(r, "page", 1)
	if err != nil {
		writeError(r.Context(), h.logger, w, http.StatusBadRequest, "page must be a number", nil)
		return
	}
	size, err := queryInt(r, "size", h.pageSize)
	if err != nil {
		writeError(r.Context(), h.logger, w, http.StatusBadRequest, "size must be a number", nil)
		return
	}

	entries, err := h.ledger.History(r.Context(), userID, page, size)
	if errors.Is(err, serviceerrs.ErrPageOutOfRange) {
		writeError(r.Context(), h.logger, w, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if err != nil {
		writeInternal(r.Context(), h.logger, w, "failed to load history", err)
		return
	}
	if len(entries) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	resp := make([]dto.EntryResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.NewEntryResponse(e))
	}
	writeJSON(r.Context(), h.logger, w, http.StatusOK, resp)
}

func (h *PointsHandler) Purchase(w http.ResponseWriter, r *http.Request) {
	userID, err := h.userID(r.Context())
	if err != nil {
		writeInternal(r.Context(), h.logger, w, "purchase request without user", err)
		return
	}

	var req dto.PurchaseRequest
	details, err := decodeAndValidate(r, h.validator, &req)
	if err != nil {
		writeError(r.Context(), h.logger, w, http.StatusBadRequest, "invalid purchase request", details)
		return
	}

	e, err := h.ledger.Purchase(r.Context(), userID, req.ProductID, req.ProductName, req.Points)
	if err != nil {
		writeLedgerError(r.Context(), h.logger, w, err)
		return
	}
	writeJSON(r.Context(), h.logger, w, http.StatusCreated, dto.NewEntryResponse(e))
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback, nil
	}
	return strconv.Atoi(raw)
}
