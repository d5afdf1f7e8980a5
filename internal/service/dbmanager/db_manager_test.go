package dbmanager

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talx-hub/tour-points/internal/utils/pgcontainer"
)

const testDefaultTimeout = 10 * time.Second

var getDSN func() string

func TestMain(m *testing.M) {
	code, err := runMain(m)
	if err != nil {
		log.Fatal(err)
	}
	os.Exit(code)
}

func runMain(m *testing.M) (int, error) {
	pg := pgcontainer.New(slog.Default())
	err := pg.RunContainer()
	defer pg.Close()
	if errors.Is(err, pgcontainer.ErrDockerUnavailable) {
		log.Printf("skipping DB manager tests: %v", err)
		return 0, nil
	}
	if err != nil {
		return 1, err
	}
	getDSN = pg.GetDSN

	return m.Run(), nil
}

func TestDBManager_Connect(t *testing.T) {
	dsn := getDSN()
	db := New(dsn, slog.Default())
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	defer cancel()

	db.Connect(ctx)
	if err := db.Error(); err != nil {
		t.Errorf("failed to connect to test DB using dsn %s: %v", dsn, err)
	}
}

func TestDBManager_Ping(t *testing.T) {
	dsn := getDSN()
	db := New(dsn, slog.Default())
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	defer cancel()

	db.Connect(ctx).Ping(ctx)
	if err := db.Error(); err != nil {
		t.Errorf("failed to ping test DB using dsn %s: %v", dsn, err)
	}
	assert.NoError(t, db.Healthy(ctx))
}

func TestDBManager_ApplyMigrations(t *testing.T) {
	dsn := getDSN()
	db := New(dsn, slog.Default())
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	defer cancel()

	db.Connect(ctx).Ping(ctx).ApplyMigrations(ctx).ApplyMigrations(ctx)
	if err := db.Error(); err != nil {
		t.Errorf("failed to apply mirgrations to test db using dsn %s: %v", dsn, err)
	}

	pool, err := db.GetPool(ctx)
	require.NoError(t, err)
	var exists bool
	err = pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = 'point_entries')`,
	).Scan(&exists)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDBManager_GetPool_from_nil(t *testing.T) {
	db := New(getDSN(), slog.Default())
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	defer cancel()
	p, err := db.GetPool(ctx)
	assert.Nil(t, p)
	assert.Error(t, err)
	assert.Error(t, db.Healthy(ctx))
}

func TestDBManager_bad_DSN(t *testing.T) {
	db := New("::not a dsn::", slog.Default())
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), testDefaultTimeout)
	defer cancel()

	db.Connect(ctx).Ping(ctx).ApplyMigrations(ctx)
	assert.Error(t, db.Error())
}

func TestToMigrateURL(t *testing.T) {
	tests := []struct {
		dsn     string
		want    string
		wantErr bool
	}{
		{"postgres://u:p@localhost:5432/db?sslmode=disable", "pgx5://u:p@localhost:5432/db?sslmode=disable", false},
		{"postgresql://u:p@localhost/db", "pgx5://u:p@localhost/db", false},
		{"mysql://u:p@localhost/db", "", true},
		{"host=localhost user=u", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.dsn, func(t *testing.T) {
			got, err := toMigrateURL(tt.dsn)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
