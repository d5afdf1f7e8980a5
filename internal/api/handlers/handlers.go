package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/talx-hub/tour-points/internal/api/dto"
	"github.com/talx-hub/tour-points/internal/model"
	"github.com/talx-hub/tour-points/internal/serviceerrs"
)

const msgInternalError = "internal server error"

type userRetriever struct{}

func (userRetriever) userID(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(model.KeyContextUserID).(string)
	if !ok || userID == "" {
		return "", errors.New("failed to retrieve userID from request context")
	}
	return userID, nil
}

func writeJSON(ctx context.Context, log *slog.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set(model.HeaderContentType, "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.LogAttrs(ctx,
			slog.LevelError,
			"failed to encode response",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}

func writeError(ctx context.Context, log *slog.Logger,
	w http.ResponseWriter, status int, msg string, details map[string]string,
) {
	writeJSON(ctx, log, w, status, dto.ErrorResponse{Error: msg, Details: details})
}

// writeInternal logs err and answers with a generic message; raw errors
// never reach the client.
func writeInternal(ctx context.Context, log *slog.Logger, w http.ResponseWriter, msg string, err error) {
	log.LogAttrs(ctx,
		slog.LevelError,
		msg,
		slog.Any(model.KeyLoggerError, err),
	)
	writeError(ctx, log, w, http.StatusInternalServerError, msgInternalError, nil)
}

func decodeAndValidate(r *http.Request, v *dto.Validator, dst any) (map[string]string, error) {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return nil, fmt.Errorf("failed to decode request body: %w", err)
	}
	return v.Struct(dst)
}

// writeLedgerError maps ledger errors to HTTP answers.
func writeLedgerError(ctx context.Context, log *slog.Logger, w http.ResponseWriter, err error) {
	var fundsErr *serviceerrs.InsufficientFundsError
	switch {
	case errors.As(err, &fundsErr):
		writeJSON(ctx, log, w, http.StatusPaymentRequired, dto.InsufficientFundsResponse{
			Error:     serviceerrs.ErrInsufficientFunds.Error(),
			Balance:   fundsErr.Balance,
			Requested: fundsErr.Requested,
			Shortfall: fundsErr.Shortfall(),
		})
	case errors.Is(err, serviceerrs.ErrBalanceOverflow):
		writeError(ctx, log, w, http.StatusUnprocessableEntity,
			serviceerrs.ErrBalanceOverflow.Error(), nil)
	case errors.Is(err, serviceerrs.ErrInvalidAmount),
		errors.Is(err, serviceerrs.ErrInvalidReason),
		errors.Is(err, serviceerrs.ErrEmptyUserID),
		errors.Is(err, serviceerrs.ErrUnknownRewardEvent):
		writeError(ctx, log, w, http.StatusBadRequest, err.Error(), nil)
	default:
		writeInternal(ctx, log, w, "ledger operation failed", err)
	}
}
