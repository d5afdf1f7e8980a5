package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/talx-hub/tour-points/internal/api/handlers"
	"github.com/talx-hub/tour-points/internal/metrics"
	"github.com/talx-hub/tour-points/internal/model"
	"github.com/talx-hub/tour-points/internal/repo"
	"github.com/talx-hub/tour-points/internal/repo/memory"
	"github.com/talx-hub/tour-points/internal/router"
	"github.com/talx-hub/tour-points/internal/service/config"
	"github.com/talx-hub/tour-points/internal/service/dbmanager"
	"github.com/talx-hub/tour-points/internal/service/events"
	"github.com/talx-hub/tour-points/internal/service/ledger"
	"github.com/talx-hub/tour-points/internal/service/location"
	"github.com/talx-hub/tour-points/internal/service/reward"
	"github.com/talx-hub/tour-points/internal/service/workerpool"
	"github.com/talx-hub/tour-points/internal/utils/logger"
	"github.com/talx-hub/tour-points/internal/utils/semaphore"
)

const (
	connectTO  = 2 * time.Second
	shutdownTO = 5 * time.Second
)

var ErrNoSecretKey = errors.New("SECRET_KEY is not set")

type storage struct {
	users     handlers.UserRepository
	ledger    ledger.Store
	locations location.Store
	health    handlers.HealthChecker
	close     func()
}

// initStorage falls back to the in-memory store when no DSN is configured.
func initStorage(ctx context.Context, cfg *config.Config, log *slog.Logger) (*storage, error) {
	if cfg.DatabaseURI == "" {
		log.LogAttrs(ctx, slog.LevelWarn,
			"DATABASE_URI is empty, ledger is kept in memory")
		s := memory.New()
		return &storage{
			users:     s,
			ledger:    s,
			locations: s,
			health:    s,
			close:     func() {},
		}, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTO)
	defer cancel()
	dbManager := dbmanager.New(cfg.DatabaseURI, log).
		Connect(connectCtx).
		ApplyMigrations(connectCtx).
		Ping(connectCtx)
	if err := dbManager.Error(); err != nil {
		dbManager.Close()
		return nil, fmt.Errorf("db connection error: %w", err)
	}

	pool, err := dbManager.GetPool(connectCtx)
	if err != nil {
		dbManager.Close()
		return nil, fmt.Errorf("failed to get DB pool: %w", err)
	}

	return &storage{
		users:     repo.NewUserRepository(pool, log),
		ledger:    repo.NewLedgerRepository(pool, log),
		locations: repo.NewLocationRepository(pool, log),
		health:    dbManager,
		close:     dbManager.Close,
	}, nil
}

type publisher interface {
	ledger.Publisher
	io.Closer
}

func initPublisher(cfg *config.Config) publisher {
	if len(cfg.KafkaBrokers) == 0 {
		return events.NoopPublisher{}
	}
	return events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaLedgerTopic)
}

// startRewardConsumer feeds reward events from Kafka to the worker pool.
// The returned func stops both and waits for in-flight rewards.
func startRewardConsumer(ctx context.Context,
	cfg *config.Config,
	policy *reward.Policy,
	log *slog.Logger,
) func() {
	if len(cfg.KafkaBrokers) == 0 {
		return func() {}
	}

	workers := cfg.RewardWorkers
	if workers <= 0 {
		workers = model.DefaultRewardWorkers
	}
	jobs := make(chan workerpool.Job, model.DefaultChannelCapacity)
	var wg sync.WaitGroup
	pool := workerpool.New(
		policy,
		semaphore.New(model.DefaultRewardInflight),
		&wg,
		jobs,
		nil,
	)
	stopWorkers := pool.Start(ctx, workers)

	consumer := events.NewRewardConsumer(
		cfg.KafkaBrokers, cfg.KafkaRewardTopic, cfg.KafkaGroupID, jobs, log)
	consumerCtx, stopConsumer := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := consumer.Run(consumerCtx); err != nil {
			log.LogAttrs(ctx, slog.LevelError,
				"reward consumer stopped",
				slog.Any(model.KeyLoggerError, err))
		}
	}()

	return func() {
		stopConsumer()
		<-done
		if err := consumer.Close(); err != nil {
			log.LogAttrs(ctx, slog.LevelWarn,
				"failed to close reward consumer",
				slog.Any(model.KeyLoggerError, err))
		}
		stopWorkers()
		wg.Wait()
	}
}

func initService(ctx context.Context, cfg *config.Config, log *slog.Logger,
) (*http.Server, func(), error) {
	store, err := initStorage(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)

	pub := initPublisher(cfg)
	ledgerService := ledger.New(store.ledger, pub, m, log)
	policy := reward.NewPolicy(ledgerService, m)
	locationService := location.New(store.locations, policy, m, log)
	stopRewards := startRewardConsumer(ctx, cfg, policy, log)

	rr := router.New(cfg, m, log)
	rr.SetRouter(&struct {
		*handlers.AuthHandler
		*handlers.PointsHandler
		*handlers.LocationHandler
		*handlers.AdminHandler
		*handlers.HealthHandler
	}{
		AuthHandler:     handlers.NewAuthHandler(store.users, log, cfg.SecretKey),
		PointsHandler:   handlers.NewPointsHandler(ledgerService, cfg.HistoryPageSize, log),
		LocationHandler: handlers.NewLocationHandler(locationService, log),
		AdminHandler:    handlers.NewAdminHandler(ledgerService, policy, log),
		HealthHandler:   handlers.NewHealthHandler(store.health, log),
	})

	srv := &http.Server{
		Addr:              cfg.RunAddr,
		Handler:           rr.GetRouter(),
		ReadHeaderTimeout: connectTO,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	cleanup := func() {
		stopRewards()
		if err := pub.Close(); err != nil {
			log.LogAttrs(ctx, slog.LevelWarn,
				"failed to close ledger publisher",
				slog.Any(model.KeyLoggerError, err))
		}
		store.close()
	}
	return srv, cleanup, nil
}

// Run serves until ctx is cancelled, then shuts the server down and releases
// the storage and Kafka clients. It refuses to start without a signing key.
func Run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	ctx = logger.WithContext(ctx, log)
	if cfg.SecretKey == "" {
		return ErrNoSecretKey
	}

	srv, cleanup, err := initService(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("failed to init service: %w", err)
	}
	defer cleanup()

	serveErr := make(chan error, 1)
	go func() {
		log.LogAttrs(ctx, slog.LevelInfo, "server started", slog.String("addr", cfg.RunAddr))
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err = <-serveErr:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTO)
	defer cancel()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	log.LogAttrs(ctx, slog.LevelInfo, "server stopped")
	return nil
}

func RunServer() {
	cfg := config.NewBuilder(slog.Default()).
		FromDotEnv().
		FromEnv().
		FromFlags().
		GetConfig()
	log := logger.New(logger.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Run(ctx, cfg, log); err != nil {
		log.LogAttrs(ctx,
			slog.LevelError,
			"service stopped with error",
			slog.Any(model.KeyLoggerError, err),
		)
		stop()
		os.Exit(1)
	}
}
