// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logutil holds the process-wide zap logger used by pmfstat.
package logutil

import (
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig describes where and how log entries are written.
type LogConfig struct {
	// Level is a zap level name. Empty means info.
	Level string `toml:"level"`

	// Format is "console" or "json". Empty means console.
	Format string `toml:"format"`

	// Filename, if set, sends logs to a rotated file instead of
	// stderr. MaxSize is in megabytes.
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
}

// global is the installed logger and, for file loggers, the file
// behind it.
type global struct {
	logger *zap.Logger
	file   io.Closer
}

var globalLogger atomic.Pointer[global]

func init() {
	logger, err := (&LogConfig{}).Build()
	if err != nil {
		panic(err)
	}
	globalLogger.Store(&global{logger: logger})
}

// GetGlobalLogger returns the logger installed by SetupLogger, or a
// console logger at info level on stderr if SetupLogger was never
// called.
func GetGlobalLogger() *zap.Logger {
	return globalLogger.Load().logger
}

// SetupLogger builds a logger from cfg and installs it as the global
// logger. The previous logger is synced, and its log file, if any, is
// closed. On error the previous logger stays installed.
func SetupLogger(cfg *LogConfig) error {
	logger, file, err := cfg.build()
	if err != nil {
		return err
	}
	old := globalLogger.Swap(&global{logger: logger, file: file})
	_ = old.logger.Sync()
	if old.file != nil {
		return old.file.Close()
	}
	return nil
}

// Build returns a new logger for cfg. A file logger's file is never
// closed; use SetupLogger to have it closed on replacement.
func (cfg *LogConfig) Build() (*zap.Logger, error) {
	logger, _, err := cfg.build()
	return logger, err
}

func (cfg *LogConfig) build() (*zap.Logger, io.Closer, error) {
	level, err := cfg.getLevel()
	if err != nil {
		return nil, nil, err
	}
	encoder, err := cfg.getEncoder()
	if err != nil {
		return nil, nil, err
	}
	syncer, file := cfg.getSyncer()
	core := zapcore.NewCore(encoder, syncer, level)
	return zap.New(core, cfg.getOptions()...), file, nil
}

func (cfg *LogConfig) getLevel() (zap.AtomicLevel, error) {
	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return zap.AtomicLevel{}, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	return level, nil
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}

func (cfg *LogConfig) getEncoder() (zapcore.Encoder, error) {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	switch cfg.Format {
	case "", "console":
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encCfg), nil
	case "json":
		return zapcore.NewJSONEncoder(encCfg), nil
	default:
		return nil, fmt.Errorf("unsupported log format: %s", cfg.Format)
	}
}

// getSyncer returns the log destination and, for a log file, the
// rotating writer that must be closed when the logger is replaced.
func (cfg *LogConfig) getSyncer() (zapcore.WriteSyncer, io.Closer) {
	if cfg.Filename == "" {
		return zapcore.Lock(os.Stderr), nil
	}
	file := &lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
	}
	return zapcore.AddSync(file), file
}

func Debug(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Debug(msg, fields...)
}

func Info(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Info(msg, fields...)
}

func Warn(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Warn(msg, fields...)
}

func Error(msg string, fields ...zap.Field) {
	GetGlobalLogger().WithOptions(zap.AddCallerSkip(1)).Error(msg, fields...)
}
