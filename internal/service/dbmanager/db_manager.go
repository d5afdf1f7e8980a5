package dbmanager

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers pgx5:// scheme
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/talx-hub/tour-points/internal/model"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

type DBManager struct {
	log  *slog.Logger
	pool *pgxpool.Pool
	err  error
	dsn  string
}

func New(dsn string, log *slog.Logger) *DBManager {
	return &DBManager{
		log:  log,
		pool: nil,
		err:  nil,
		dsn:  dsn,
	}
}

func (m *DBManager) Connect(ctx context.Context) *DBManager {
	if m.err != nil {
		return m
	}

	cfg, err := pgxpool.ParseConfig(m.dsn)
	if err != nil {
		m.err = fmt.Errorf("failed to parse DSN: %w", err)
		return m
	}
	cfg.MinConns = 1
	cfg.MaxConns = 10
	cfg.ConnConfig.Tracer = &queryTracer{m.log}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		m.err = fmt.Errorf("failed to init pgxpool: %w", err)
		return m
	}

	m.pool = pool
	return m
}

func (m *DBManager) ApplyMigrations(_ context.Context) *DBManager {
	if m.err != nil {
		return m
	}

	migrationsURL, err := toMigrateURL(m.dsn)
	if err != nil {
		m.err = err
		return m
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		m.err = fmt.Errorf("failed to open embedded migrations: %w", err)
		return m
	}
	mg, err := migrate.NewWithSourceInstance("iofs", src, migrationsURL)
	if err != nil {
		m.err = fmt.Errorf("failed to init migrations: %w", err)
		return m
	}
	defer func() {
		srcErr, dbErr := mg.Close()
		if closeErr := errors.Join(srcErr, dbErr); closeErr != nil {
			m.log.LogAttrs(context.TODO(),
				slog.LevelError,
				"failed to close migrations",
				slog.Any(model.KeyLoggerError, closeErr),
			)
		}
	}()

	if err = mg.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		m.err = fmt.Errorf("failed to apply migrations: %w", err)
		return m
	}

	return m
}

func (m *DBManager) Ping(ctx context.Context) *DBManager {
	if m.err != nil {
		return m
	}
	if err := m.pool.Ping(ctx); err != nil {
		m.err = fmt.Errorf("failed to ping the DB: %w", err)
	}
	return m
}

// Healthy pings the pool without touching the stored chain error.
func (m *DBManager) Healthy(ctx context.Context) error {
	if m.pool == nil {
		return errors.New("DB pool is not initialized")
	}
	if err := m.pool.Ping(ctx); err != nil {
		return fmt.Errorf("failed to ping the DB: %w", err)
	}
	return nil
}

func (m *DBManager) Error() error {
	return m.err
}

func (m *DBManager) GetPool(_ context.Context) (*pgxpool.Pool, error) {
	if m.pool == nil {
		return nil, errors.New("DB pool is not initialized")
	}
	return m.pool, nil
}

func (m *DBManager) Close() {
	if m.pool == nil {
		return
	}

	m.pool.Close()
	m.log.LogAttrs(context.TODO(),
		slog.LevelInfo,
		"connection to DB closed",
	)
}

func toMigrateURL(dsn string) (string, error) {
	u, err := url.Parse(dsn)
	if err != nil {
		return "", fmt.Errorf("failed to parse DSN for migrations: %w", err)
	}
	switch u.Scheme {
	case "postgres", "postgresql":
		u.Scheme = "pgx5"
		return u.String(), nil
	default:
		return "", fmt.Errorf("unsupported DSN scheme %q for migrations", u.Scheme)
	}
}
