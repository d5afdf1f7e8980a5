package repo

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/talx-hub/tour-points/internal/model"
	"github.com/talx-hub/tour-points/internal/model/user"
	"github.com/talx-hub/tour-points/internal/repo/internal/db"
	"github.com/talx-hub/tour-points/internal/serviceerrs"
)

type UserRepository struct {
	DB
}

func NewUserRepository(pool connectionPool, log *slog.Logger) *UserRepository {
	return &UserRepository{
		DB{
			pool: pool,
			log:  log,
		},
	}
}

// Create stores the user and sets u.ID.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	createLogic := func() (string, error) {
		queries := db.New(r.pool)
		id, err := queries.InsertUser(ctx, db.InsertUserParams{
			LoginHash:    u.LoginHash,
			PasswordHash: u.PasswordHash,
		})
		if isUniqueViolation(err) {
			return "", fmt.Errorf("failed to insert user: %w", serviceerrs.ErrAlreadyExists)
		}
		if err != nil {
			return "", fmt.Errorf("failed to insert user: %w", err)
		}
		return id, nil
	}

	id, err := WithRetry[string](createLogic, 0)
	if err != nil {
		return err //nolint: wrapcheck // error from wrapped function
	}
	u.ID = id
	return nil
}

func (r *UserRepository) Exists(ctx context.Context, loginHash string) bool {
	existsLogic := func() (bool, error) {
		queries := db.New(r.pool)
		exists, err := queries.ExistsUser(ctx, loginHash)
		if err != nil {
			r.log.LogAttrs(ctx,
				slog.LevelError,
				"failed to check if loginHash exists in DB",
				slog.Any(model.KeyLoggerError, err),
			)
			return false, nil
		}
		return exists, nil
	}

	exists, _ := WithRetry[bool](existsLogic, 0)
	return exists
}

func (r *UserRepository) FindByLogin(ctx context.Context, loginHash string,
) (user.User, error) {
	findByLoginLogic := func() (user.User, error) {
		queries := db.New(r.pool)
		u, err := queries.FindUserByLogin(ctx, loginHash)
		if err != nil {
			return user.User{}, notFound(err, "failed to find user by login")
		}
		return user.User{
			ID:           u.ID,
			LoginHash:    u.LoginHash,
			PasswordHash: u.PasswordHash,
		}, nil
	}

	return WithRetry[user.User](findByLoginLogic, 0)
}
