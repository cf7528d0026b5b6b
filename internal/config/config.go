package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Planner  PlannerConfig  `yaml:"planner"`
	Command  CommandConfig  `yaml:"command"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// PlannerConfig holds settings for the external action-planning service.
// Timeout bounds the single planning call; a timed-out call fails the whole
// command before anything executes.
type PlannerConfig struct {
	APIKey  string        `yaml:"api_key" env:"PLANNER_API_KEY" env-required:"true"`
	Model   string        `yaml:"model"   env:"PLANNER_MODEL"   env-default:"claude-sonnet-4-5"`
	Timeout time.Duration `yaml:"timeout" env:"PLANNER_TIMEOUT" env-default:"30s"`
}

// CommandConfig holds natural-language pipeline settings.
type CommandConfig struct {
	// MaxActions caps candidate plan length; longer plans are rejected.
	MaxActions int `yaml:"max_actions" env:"COMMAND_MAX_ACTIONS" env-default:"10"`

	// SimilarityThreshold is the minimum normalized similarity score for a
	// fuzzy subject/event name match, in (0, 1].
	SimilarityThreshold float64 `yaml:"similarity_threshold" env:"COMMAND_SIMILARITY_THRESHOLD" env-default:"0.72"`

	// MaxCommandLength caps the raw command text accepted from the caller.
	MaxCommandLength int `yaml:"max_command_length" env:"COMMAND_MAX_LENGTH" env-default:"2000"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
