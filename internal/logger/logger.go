// Package logger builds the zap logger from configuration.
package logger

import (
	"strings"

	"flashcards/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ParseLevel maps debug, info, warn and error (any case) to zap levels.
// Anything else falls back to info and reports false.
func ParseLevel(level string) (zapcore.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn", "warning":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	}
	return zapcore.InfoLevel, false
}

// New builds a production JSON logger writing to cfg.Path, or to stderr when
// the path is empty.
func New(cfg config.LogConfig) (*zap.Logger, error) {
	level, known := ParseLevel(cfg.Level)

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.EncoderConfig.TimeKey = "time"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if cfg.Path != "" {
		zcfg.OutputPaths = []string{cfg.Path}
		zcfg.ErrorOutputPaths = []string{cfg.Path}
	}

	logger, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	if !known {
		logger.Warn("Invalid log level configured, using info", zap.String("configured_level", cfg.Level))
	}
	return logger, nil
}

// NewForTerminal is New for programs that own the terminal: without a log
// file nothing is written at all.
func NewForTerminal(cfg config.LogConfig) (*zap.Logger, error) {
	if cfg.Path == "" {
		return zap.NewNop(), nil
	}
	return New(cfg)
}
