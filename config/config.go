/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads typebridge settings from the environment, optionally
// seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config holds the settings shared by the datastores and the CLI.
type Config struct {
	AWSAccessKey string `env:"AWS_ACCESS_KEY"`
	AWSSecretKey string `env:"AWS_SECRET_KEY"`
	AWSRegion    string `env:"AWS_REGION" envDefault:"us-east-1"`
	TableName    string `env:"AWS_DDB_TABLE"`

	// IndexMapFile points to a YAML file of index maps keyed by type name.
	IndexMapFile string `env:"TYPEBRIDGE_INDEX_MAPS"`

	LogLevel  string `env:"TYPEBRIDGE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"TYPEBRIDGE_LOG_FORMAT" envDefault:"json"`

	// LogFile sends logs to a rotated file instead of stderr.
	LogFile       string `env:"TYPEBRIDGE_LOG_FILE"`
	LogMaxSizeMB  int    `env:"TYPEBRIDGE_LOG_MAX_SIZE_MB" envDefault:"10"`
	LogMaxBackups int    `env:"TYPEBRIDGE_LOG_MAX_BACKUPS" envDefault:"3"`
	LogMaxAgeDays int    `env:"TYPEBRIDGE_LOG_MAX_AGE_DAYS" envDefault:"7"`
	LogCompress   bool   `env:"TYPEBRIDGE_LOG_COMPRESS"`
}

// Load reads .env files (default ".env") into the process environment without
// overriding variables already set, then parses the environment. Missing
// files are ignored.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Logger builds a zap logger from LogLevel and LogFormat ("json" or "console").
// When LogFile is set the output goes through a lumberjack rotator.
func (c Config) Logger() (*zap.Logger, error) {
	level := zapcore.InfoLevel
	if c.LogLevel != "" {
		parsed, err := zapcore.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
		}
		level = parsed
	}

	var zc zap.Config
	switch strings.ToLower(c.LogFormat) {
	case "", "json":
		zc = zap.NewProductionConfig()
	case "console":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	if c.LogFile != "" {
		return c.fileLogger(zc), nil
	}

	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func (c Config) fileLogger(zc zap.Config) *zap.Logger {
	var encoder zapcore.Encoder
	if zc.Encoding == "json" {
		encoder = zapcore.NewJSONEncoder(zc.EncoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(zc.EncoderConfig)
	}

	ws := zapcore.AddSync(&lumberjack.Logger{
		Filename:   c.LogFile,
		MaxSize:    max(c.LogMaxSizeMB, 1),
		MaxBackups: max(c.LogMaxBackups, 0),
		MaxAge:     max(c.LogMaxAgeDays, 0),
		Compress:   c.LogCompress,
	})

	core := zapcore.NewCore(encoder, ws, zc.Level)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zap.ErrorLevel))
}
