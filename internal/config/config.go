// Package config loads the effectdemo settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Settings configures the effectdemo CLI.
type Settings struct {
	LogLevel string `env:"EFFECTDEMO_LOG_LEVEL" envDefault:"info"`
	DevLog   bool   `env:"EFFECTDEMO_DEV_LOG" envDefault:"false"`
	MemoSize int    `env:"EFFECTDEMO_MEMO_SIZE" envDefault:"128"`
	Trace    bool   `env:"EFFECTDEMO_TRACE" envDefault:"false"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load returns Settings populated from the environment and validated.
func Load() (Settings, error) {
	var s Settings
	if err := ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks value ranges that env tags cannot express.
func (s Settings) Validate() error {
	if s.MemoSize < 0 {
		return fmt.Errorf("memo size must be >= 0, got %d", s.MemoSize)
	}
	if _, err := zapcore.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Logger builds the zap logger described by s.
func (s Settings) Logger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(s.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	if s.DevLog {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.OutputPaths = []string{"stderr"}
	return cfg.Build()
}
