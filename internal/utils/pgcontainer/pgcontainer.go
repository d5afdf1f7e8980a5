// Package pgcontainer runs a disposable Postgres container for integration
// tests.
package pgcontainer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/talx-hub/tour-points/internal/model"
)

const (
	defaultTag     = "16-alpine"
	pgPort         = "5432/tcp"
	userName       = "postgres"
	userPassword   = "postgres"
	dbName         = "postgres"
	maxWait        = 30 * time.Second
	defaultTimeout = 3 * time.Second
)

// ErrDockerUnavailable is returned when no docker daemon can be reached.
var ErrDockerUnavailable = errors.New("docker is unavailable")

type PGContainer struct {
	log      *slog.Logger
	pool     *dockertest.Pool
	resource *dockertest.Resource
	hostPort string
}

func New(log *slog.Logger) *PGContainer {
	return &PGContainer{log: log}
}

func imageTag() string {
	// .env is optional; POSTGRES_TAG may come from the environment directly.
	_ = godotenv.Load(".env")
	if tag := os.Getenv("POSTGRES_TAG"); tag != "" {
		return tag
	}
	return defaultTag
}

func (c *PGContainer) RunContainer() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDockerUnavailable, err)
	}
	if err = pool.Client.Ping(); err != nil {
		return fmt.Errorf("%w: %w", ErrDockerUnavailable, err)
	}
	c.pool = pool

	resource, err := pool.RunWithOptions(
		&dockertest.RunOptions{
			Repository: "postgres",
			Tag:        imageTag(),
			Env: []string{
				"POSTGRES_USER=" + userName,
				"POSTGRES_PASSWORD=" + userPassword,
				"POSTGRES_DB=" + dbName,
			},
			ExposedPorts: []string{pgPort},
		},
		func(config *docker.HostConfig) {
			config.AutoRemove = true
			config.RestartPolicy = docker.RestartPolicy{Name: "no"}
		},
	)
	if err != nil {
		return fmt.Errorf("failed to run postgres container: %w", err)
	}
	c.resource = resource
	c.hostPort = resource.GetHostPort(pgPort)

	pool.MaxWait = maxWait
	if err = pool.Retry(func() error {
		ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
		defer cancel()
		conn, err := pgx.Connect(ctx, c.GetDSN())
		if err != nil {
			return fmt.Errorf("failed to connect to the DB: %w", err)
		}
		return conn.Close(ctx)
	}); err != nil {
		return fmt.Errorf("retry failed: %w", err)
	}

	return nil
}

func (c *PGContainer) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=disable",
		userName,
		userPassword,
		c.hostPort,
		dbName,
	)
}

func (c *PGContainer) Close() {
	if c.pool == nil || c.resource == nil {
		return
	}
	if err := c.pool.Purge(c.resource); err != nil {
		c.log.LogAttrs(context.TODO(),
			slog.LevelError,
			"failed to purge the postgres container",
			slog.Any(model.KeyLoggerError, err),
		)
	}
}
