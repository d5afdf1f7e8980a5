// Package memory keeps users, ledger entries and location checks in process
// memory. It is used when no database is configured.
package memory

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/talx-hub/tour-points/internal/model/location"
	"github.com/talx-hub/tour-points/internal/model/points"
	"github.com/talx-hub/tour-points/internal/model/user"
	"github.com/talx-hub/tour-points/internal/serviceerrs"
)

type Store struct {
	users     map[string]user.User
	entries   map[string][]points.Entry
	perms     map[string][]location.Permission
	userLocks map[string]*sync.Mutex
	now       func() time.Time
	mu        sync.RWMutex
	locksMu   sync.Mutex
	lastID    int64
}

func New() *Store {
	return &Store{
		users:     make(map[string]user.User),
		entries:   make(map[string][]points.Entry),
		perms:     make(map[string][]location.Permission),
		userLocks: make(map[string]*sync.Mutex),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *Store) userLock(userID string) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	if _, ok := s.userLocks[userID]; !ok {
		s.userLocks[userID] = &sync.Mutex{}
	}
	return s.userLocks[userID]
}

// Append holds the user's lock across the balance read, the guard call and
// the append.
func (s *Store) Append(ctx context.Context, p points.Posting, guard points.Guard,
) (points.Entry, error) {
	if err := ctx.Err(); err != nil {
		return points.Entry{}, fmt.Errorf("failed to append entry: %w", err)
	}

	lock := s.userLock(p.UserID)
	lock.Lock()
	defer lock.Unlock()

	s.mu.RLock()
	history := s.entries[p.UserID]
	var (
		balance int64
		last    time.Time
	)
	if n := len(history); n > 0 {
		balance = history[n-1].BalanceAfter
		last = history[n-1].CreatedAt
	}
	s.mu.RUnlock()

	if guard != nil {
		if err := guard(balance); err != nil {
			return points.Entry{}, err
		}
	}
	balanceAfter, err := p.NextBalance(balance)
	if err != nil {
		return points.Entry{}, err
	}

	// entries of one user never go back in time, so the slice tail is the
	// latest entry
	createdAt := s.now()
	if createdAt.Before(last) {
		createdAt = last
	}
	e := points.Entry{
		CreatedAt:    createdAt,
		ID:           uuid.NewString(),
		UserID:       p.UserID,
		Kind:         p.Kind,
		Reason:       p.Reason,
		Description:  p.Description,
		RelatedID:    p.RelatedID,
		Amount:       p.Amount,
		BalanceAfter: balanceAfter,
	}

	s.mu.Lock()
	s.entries[p.UserID] = append(s.entries[p.UserID], e)
	s.mu.Unlock()

	return e, nil
}

func (s *Store) LastEntry(_ context.Context, userID string) (points.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.entries[userID]
	if len(history) == 0 {
		return points.Entry{}, fmt.Errorf("no entries for user %s: %w", userID, serviceerrs.ErrNotFound)
	}
	return history[len(history)-1], nil
}

func (s *Store) ListEntries(_ context.Context, userID string, limit, offset int,
) ([]points.Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.entries[userID]
	if offset < 0 || offset >= len(history) || limit <= 0 {
		return []points.Entry{}, nil
	}
	result := make([]points.Entry, 0, min(limit, len(history)-offset))
	for i := len(history) - 1 - offset; i >= 0 && len(result) < limit; i-- {
		result = append(result, history[i])
	}
	return result, nil
}

// Create sets u.ID to the next numeric id.
func (s *Store) Create(_ context.Context, u *user.User) error {
	if u.LoginHash == "" || u.PasswordHash == "" {
		return fmt.Errorf("failed to create user: %w", serviceerrs.ErrUnexpected)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.LoginHash]; ok {
		return fmt.Errorf("failed to create user: %w", serviceerrs.ErrAlreadyExists)
	}
	s.lastID++
	u.ID = strconv.FormatInt(s.lastID, 10)
	s.users[u.LoginHash] = *u
	return nil
}

func (s *Store) Exists(_ context.Context, loginHash string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.users[loginHash]
	return ok
}

func (s *Store) FindByLogin(_ context.Context, loginHash string) (user.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[loginHash]
	if !ok {
		return user.User{}, fmt.Errorf("failed to find user by login: %w", serviceerrs.ErrNotFound)
	}
	return u, nil
}

func (s *Store) SavePermission(_ context.Context, p *location.Permission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = uuid.NewString()
	p.CreatedAt = s.now()
	s.perms[p.UserID] = append(s.perms[p.UserID], *p)
	return nil
}

func (s *Store) ListPermissions(_ context.Context, userID string,
) ([]location.Permission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := s.perms[userID]
	result := make([]location.Permission, 0, len(records))
	for i := len(records) - 1; i >= 0; i-- {
		result = append(result, records[i])
	}
	return result, nil
}

// Healthy is always nil; it lets the store stand in for the DB health check.
func (s *Store) Healthy(context.Context) error {
	return nil
}
