package config

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"

	"github.com/talx-hub/tour-points/internal/model"
)

type Config struct {
	RunAddr          string   `env:"RUN_ADDRESS"        envDefault:"localhost:8080"`
	DatabaseURI      string   `env:"DATABASE_URI"       envDefault:""`
	SecretKey        string   `env:"SECRET_KEY"         envDefault:""`
	LogLevel         string   `env:"LOG_LEVEL"          envDefault:"info"`
	AdminToken       string   `env:"ADMIN_TOKEN"        envDefault:""`
	KafkaBrokers     []string `env:"KAFKA_BROKERS"      envSeparator:","`
	KafkaLedgerTopic string   `env:"KAFKA_LEDGER_TOPIC" envDefault:"points.ledger"`
	KafkaRewardTopic string   `env:"KAFKA_REWARD_TOPIC" envDefault:"points.rewards"`
	KafkaGroupID     string   `env:"KAFKA_GROUP_ID"     envDefault:"tour-points"`
	RewardWorkers    int      `env:"REWARD_WORKERS"     envDefault:"8"`
	HistoryPageSize  int      `env:"HISTORY_PAGE_SIZE"  envDefault:"20"`
}

type Builder struct {
	cfg *Config
	log *slog.Logger
}

func NewBuilder(log *slog.Logger) *Builder {
	return &Builder{
		cfg: &Config{
			RunAddr:         "",
			DatabaseURI:     "",
			SecretKey:       "",
			LogLevel:        "",
			AdminToken:      "",
			RewardWorkers:   model.DefaultRewardWorkers,
			HistoryPageSize: model.DefaultHistoryPageSize,
		},
		log: log,
	}
}

// FromDotEnv preloads variables from the given files (".env" when none are
// given) into the process environment. Variables that are already set win.
// A missing file is not an error.
func (b *Builder) FromDotEnv(files ...string) *Builder {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		err := godotenv.Load(f)
		if err == nil || errors.Is(err, fs.ErrNotExist) {
			continue
		}
		b.log.LogAttrs(context.Background(),
			slog.LevelWarn,
			"failed to load dotenv file",
			slog.String("file", f),
			slog.Any(model.KeyLoggerError, err),
		)
	}
	return b
}

func (b *Builder) FromEnv() *Builder {
	if err := env.Parse(b.cfg); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "Failed to parse config", slog.Any(model.KeyLoggerError, err))
	}
	return b
}

func (b *Builder) FromFlags() *Builder {
	return b.FromFlagSet(flag.CommandLine, os.Args[1:])
}

func (b *Builder) FromFlagSet(flagSet *flag.FlagSet, args []string) *Builder {
	brokers := strings.Join(b.cfg.KafkaBrokers, ",")

	flagSet.StringVar(&b.cfg.RunAddr, "a", b.cfg.RunAddr, "Run address")
	flagSet.StringVar(&b.cfg.DatabaseURI, "d", b.cfg.DatabaseURI, "Database URI, in-memory store when empty")
	flagSet.StringVar(&b.cfg.SecretKey, "k", b.cfg.SecretKey, "Secret key")
	flagSet.StringVar(&b.cfg.LogLevel, "l", b.cfg.LogLevel, "Log level")
	flagSet.StringVar(&b.cfg.AdminToken, "t", b.cfg.AdminToken, "Admin token, admin API is disabled when empty")
	flagSet.StringVar(&brokers, "b", brokers, "Comma separated Kafka brokers")
	flagSet.IntVar(&b.cfg.RewardWorkers, "w", b.cfg.RewardWorkers, "Reward worker count")
	flagSet.IntVar(&b.cfg.HistoryPageSize, "s", b.cfg.HistoryPageSize, "History page size")

	if err := flagSet.Parse(args); err != nil {
		b.log.LogAttrs(context.Background(),
			slog.LevelError, "Failed to parse flags", slog.Any(model.KeyLoggerError, err))
	}
	b.cfg.KafkaBrokers = splitBrokers(brokers)
	return b
}

func (b *Builder) GetConfig() *Config {
	return b.cfg
}

func splitBrokers(raw string) []string {
	var brokers []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			brokers = append(brokers, s)
		}
	}
	return brokers
}
