package config

import (
	"fmt"
	"log"
	"net"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Storage backends.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Bag sequence backends.
const (
	SequenceMemory   = "memory"
	SequenceRedis    = "redis"
	SequencePostgres = "postgres"
)

// Config stores service settings.
type Config struct {
	Port     int    `env:"PORT" envDefault:"8080"`
	Storage  string `env:"STORAGE_BACKEND" envDefault:"memory"`
	SeedFile string `env:"SEED_FILE"`

	DB        DB        `envPrefix:"POSTGRES_"`
	Redis     Redis     `envPrefix:"REDIS_"`
	Kafka     Kafka     `envPrefix:"KAFKA_"`
	Handover  Handover  `envPrefix:"HANDOVER_"`
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`
	Admin     Admin     `envPrefix:"ADMIN_"`
	Log       Log       `envPrefix:"LOG_"`
}

// DB stores Postgres connection settings.
type DB struct {
	Host           string `env:"HOST" envDefault:"127.0.0.1"`
	Port           string `env:"PORT" envDefault:"5432"`
	User           string `env:"USER" envDefault:"dispatch"`
	Pass           string `env:"PASSWORD" envDefault:"dispatch"`
	Name           string `env:"DB" envDefault:"dispatch"`
	SSLMode        string `env:"SSLMODE" envDefault:"disable"`
	ConnectRetries int    `env:"CONNECT_RETRIES" envDefault:"10"`
}

// DSN builds a postgres:// connection string.
func (d DB) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Pass),
		Host:     net.JoinHostPort(d.Host, d.Port),
		Path:     "/" + d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}

// Redis stores Redis settings used by the bag number sequence.
type Redis struct {
	Addr           string `env:"ADDR"`
	Password       string `env:"PASSWORD"`
	DB             int    `env:"DB" envDefault:"0"`
	BagSequenceKey string `env:"BAG_SEQUENCE_KEY" envDefault:"dispatch:bag_seq"`
}

// Kafka stores broker settings. Empty Brokers disables Kafka.
type Kafka struct {
	Brokers     []string `env:"BROKERS" envSeparator:","`
	GroupID     string   `env:"GROUP_ID" envDefault:"service-dispatch"`
	OrdersTopic string   `env:"ORDERS_TOPIC" envDefault:"orders.events"`
	BagsTopic   string   `env:"BAGS_TOPIC" envDefault:"handover.bags"`

	PublishAttempts  int           `env:"PUBLISH_ATTEMPTS" envDefault:"3"`
	PublishBaseDelay time.Duration `env:"PUBLISH_BASE_DELAY" envDefault:"100ms"`
	PublishMaxDelay  time.Duration `env:"PUBLISH_MAX_DELAY" envDefault:"2s"`
}

// Enabled reports whether brokers are configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

// Handover stores reconciliation session settings.
type Handover struct {
	SessionTTL       time.Duration `env:"SESSION_TTL" envDefault:"30m"`
	SweepInterval    time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
	OperationTimeout time.Duration `env:"OPERATION_TIMEOUT" envDefault:"3s"`
	BagSequence      string        `env:"BAG_SEQUENCE" envDefault:"memory"`
}

// RateLimit stores per-client HTTP rate limit settings.
type RateLimit struct {
	Enabled    bool          `env:"ENABLED" envDefault:"false"`
	Rate       float64       `env:"RATE" envDefault:"20"`
	Burst      int           `env:"BURST" envDefault:"40"`
	TTL        time.Duration `env:"TTL" envDefault:"10m"`
	MaxBuckets int           `env:"MAX_BUCKETS" envDefault:"10000"`
}

// Admin stores the pprof/metrics listener settings. Empty Addr disables it.
type Admin struct {
	Addr string `env:"ADDR"`
	User string `env:"USER"`
	Pass string `env:"PASS"`
}

// Log stores logger settings.
type Log struct {
	Backend string `env:"BACKEND" envDefault:"slog"`
	Level   string `env:"LEVEL" envDefault:"info"`
}

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil && !os.IsNotExist(err) {
		log.Printf("warning: .env not loaded: %v", err)
	}
	return LoadArgs(os.Args[1:])
}

// LoadArgs reads the environment and then applies command-line args.
func LoadArgs(args []string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	fs := pflag.NewFlagSet("service-dispatch", pflag.ContinueOnError)
	fs.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	fs.StringVar(&cfg.Storage, "storage", cfg.Storage, "storage backend: memory or postgres")
	fs.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "YAML seed file for the memory store")
	fs.StringVar(&cfg.Admin.Addr, "admin-addr", cfg.Admin.Addr, "admin listener address, empty to disable")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	c.Storage = strings.ToLower(strings.TrimSpace(c.Storage))
	if c.Storage != StorageMemory && c.Storage != StoragePostgres {
		return fmt.Errorf("invalid storage backend: %q", c.Storage)
	}
	switch c.Handover.BagSequence {
	case SequenceMemory:
	case SequenceRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("bag sequence %q requires REDIS_ADDR", c.Handover.BagSequence)
		}
	case SequencePostgres:
		if c.Storage != StoragePostgres {
			return fmt.Errorf("bag sequence %q requires postgres storage", c.Handover.BagSequence)
		}
	default:
		return fmt.Errorf("invalid bag sequence backend: %q", c.Handover.BagSequence)
	}
	if c.Handover.SessionTTL <= 0 || c.Handover.SweepInterval <= 0 || c.Handover.OperationTimeout <= 0 {
		return fmt.Errorf("handover durations must be positive")
	}
	if c.Kafka.PublishAttempts < 1 {
		return fmt.Errorf("invalid kafka publish attempts: %d", c.Kafka.PublishAttempts)
	}
	if c.Log.Backend != "slog" && c.Log.Backend != "zap" {
		return fmt.Errorf("invalid log backend: %q", c.Log.Backend)
	}
	return nil
}
