package config

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the server configuration. Empty DSN selects the in-memory store,
// empty Redis address the in-process lock and empty Ollama URL disables replies.
type Config struct {
	HTTPAddr string `env:"UNBOUNDED_HTTP_ADDR" envDefault:":8080"`
	LogLevel string `env:"UNBOUNDED_LOG_LEVEL" envDefault:"info"`

	DatabaseDSN       string        `env:"UNBOUNDED_DB_DSN"`
	DBMaxOpenConns    int           `env:"UNBOUNDED_DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns    int           `env:"UNBOUNDED_DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime time.Duration `env:"UNBOUNDED_DB_CONN_MAX_LIFETIME" envDefault:"30m"`
	AutoMigrate       bool          `env:"UNBOUNDED_DB_AUTO_MIGRATE" envDefault:"true"`

	RedisAddr     string        `env:"UNBOUNDED_REDIS_ADDR"`
	RedisPassword string        `env:"UNBOUNDED_REDIS_PASSWORD"`
	RedisDB       int           `env:"UNBOUNDED_REDIS_DB" envDefault:"0"`
	LockTTL       time.Duration `env:"UNBOUNDED_LOCK_TTL" envDefault:"30s"`

	OllamaURL     string        `env:"OLLAMA_API_URL"`
	OllamaModel   string        `env:"MODEL_NAME" envDefault:"llama2"`
	OllamaTimeout time.Duration `env:"OLLAMA_TIMEOUT" envDefault:"30s"`
	PromptDir     string        `env:"UNBOUNDED_PROMPT_DIR"`
	HistoryLimit  int           `env:"UNBOUNDED_HISTORY_LIMIT" envDefault:"10"`

	SweepInterval    time.Duration `env:"UNBOUNDED_SWEEP_INTERVAL" envDefault:"0s"`
	SweepConcurrency int           `env:"UNBOUNDED_SWEEP_CONCURRENCY" envDefault:"8"`
	SweepMinIdle     time.Duration `env:"UNBOUNDED_SWEEP_MIN_IDLE" envDefault:"1h"`

	OtelEndpoint string `env:"UNBOUNDED_OTEL_ENDPOINT"`
	OtelEnabled  bool   `env:"UNBOUNDED_OTEL_ENABLED" envDefault:"true"`
}

func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case strings.TrimSpace(c.HTTPAddr) == "":
		return errors.Join(ErrInvalidConfig, errors.New("UNBOUNDED_HTTP_ADDR is empty"))
	case c.LockTTL <= 0:
		return errors.Join(ErrInvalidConfig, errors.New("UNBOUNDED_LOCK_TTL must be positive"))
	case c.SweepInterval < 0:
		return errors.Join(ErrInvalidConfig, errors.New("UNBOUNDED_SWEEP_INTERVAL must not be negative"))
	case c.HistoryLimit < 0:
		return errors.Join(ErrInvalidConfig, errors.New("UNBOUNDED_HISTORY_LIMIT must not be negative"))
	}
	return nil
}
