// Package config loads server settings from the environment, an optional
// .env file and an optional YAML file named by CONFIG_PATH.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const ConfigPathEnv = "CONFIG_PATH"

type Config struct {
	Server ServerConfig `yaml:"server"`
	Log    LogConfig    `yaml:"log"`
	Limits LimitsConfig `yaml:"limits"`
}

type ServerConfig struct {
	Port            string        `yaml:"port" env:"PORT" env-default:"8080"`
	GinMode         string        `yaml:"gin_mode" env:"GIN_MODE" env-default:"release"`
	AllowOrigins    []string      `yaml:"allow_origins" env:"CORS_ALLOW_ORIGINS" env-separator:"," env-default:"http://localhost:3000"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"10s"`
}

type LogConfig struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

type LimitsConfig struct {
	MaxKeystreamLength int `yaml:"max_keystream_length" env:"MAX_KEYSTREAM_LENGTH" env-default:"10000"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("cannot load .env file: %w", err)
	}

	var cfg Config
	if path := os.Getenv(ConfigPathEnv); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("cannot load config file %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("cannot read config from environment: %w", err)
	}

	if cfg.Limits.MaxKeystreamLength < 1 {
		return nil, fmt.Errorf("max_keystream_length must be positive, got %d", cfg.Limits.MaxKeystreamLength)
	}
	if _, err := cfg.Log.SlogLevel(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}

// NewLogger builds the process logger. Format "json" selects the JSON
// handler, anything else the text handler.
func NewLogger(l LogConfig, w io.Writer) *slog.Logger {
	level, err := l.SlogLevel()
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(l.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
