package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/talx-hub/tour-points/internal/api/dto"
	"github.com/talx-hub/tour-points/internal/model"
	"github.com/talx-hub/tour-points/internal/model/user"
	"github.com/talx-hub/tour-points/internal/serviceerrs"
	"github.com/talx-hub/tour-points/internal/utils/auth"
)

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	Exists(ctx context.Context, loginHash string) bool
	FindByLogin(ctx context.Context, loginHash string) (user.User, error)
}

type AuthHandler struct {
	logger *slog.Logger
	repo   UserRepository
	secret string
}

func NewAuthHandler(repo UserRepository, log *slog.Logger, secret string) *AuthHandler {
	return &AuthHandler{
		logger: log,
		repo:   repo,
		secret: secret,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "failed to decode request", http.StatusBadRequest)
		return
	}
	if err := req.IsValid(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	loginHash := auth.HashLogin(req.Login)
	if h.repo.Exists(r.Context(), loginHash) {
		http.Error(w, "login already exists", http.StatusConflict)
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.LogAttrs(r.Context(),
			slog.LevelError,
			"failed to hash password",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	u := &user.User{
		LoginHash:    loginHash,
		PasswordHash: string(passwordHash),
	}
	if err = h.repo.Create(r.Context(), u); err != nil {
		if errors.Is(err, serviceerrs.ErrAlreadyExists) {
			http.Error(w, "login already exists", http.StatusConflict)
			return
		}
		h.logger.LogAttrs(r.Context(),
			slog.LevelError,
			"failed to create user",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	h.setToken(w, r, u.ID)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.UserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "failed to decode request", http.StatusBadRequest)
		return
	}
	if req.Login == "" || req.Password == "" {
		http.Error(w, "wrong login or password", http.StatusUnauthorized)
		return
	}

	u, err := h.repo.FindByLogin(r.Context(), auth.HashLogin(req.Login))
	if err != nil {
		if errors.Is(err, serviceerrs.ErrNotFound) {
			http.Error(w, "wrong login or password", http.StatusUnauthorized)
			return
		}
		h.logger.LogAttrs(r.Context(),
			slog.LevelError,
			"failed to find user",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, msgInternalError, http.StatusInternalServerError)
		return
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password))
	if err != nil {
		http.Error(w, "wrong login or password", http.StatusUnauthorized)
		return
	}

	h.setToken(w, r, u.ID)
}

func (h *AuthHandler) setToken(w http.ResponseWriter, r *http.Request, userID string) {
	cookie, err := auth.Authenticate(userID, []byte(h.secret))
	if err != nil {
		h.logger.LogAttrs(r.Context(),
			slog.LevelError,
			"failed to build token",
			slog.Any(model.KeyLoggerError, err),
		)
		http.Error(w, msgInternalError, http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &cookie)
	w.WriteHeader(http.StatusOK)
}
