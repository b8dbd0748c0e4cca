// Package config loads runtime settings for the landedcost binaries from an
// optional YAML file and LANDEDCOST_* environment variables.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/landedcost/internal/calculator"
)

// Environment variables read by Load. They override values from the file.
const (
	EnvLogLevel    = "LANDEDCOST_LOG_LEVEL"
	EnvDutyTable   = "LANDEDCOST_DUTY_TABLE"
	EnvGRPCAddr    = "LANDEDCOST_GRPC_ADDR"
	EnvMetricsAddr = "LANDEDCOST_METRICS_ADDR"
)

// Config holds settings shared by the CLI and the server.
type Config struct {
	// LogLevel is a zerolog level name (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`

	// DutyTablePath replaces the embedded Zambian specific-duty table when set.
	DutyTablePath string `yaml:"duty_table"`

	// GRPCAddr is the listen address of the calculator gRPC service.
	GRPCAddr string `yaml:"grpc_addr"`

	// MetricsAddr is the listen address of the Prometheus /metrics endpoint.
	// An empty value disables the endpoint.
	MetricsAddr string `yaml:"metrics_addr"`

	// Rates overrides individual statutory rates; omitted keys keep their defaults.
	Rates calculator.Rates `yaml:"rates"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel:    "info",
		GRPCAddr:    ":50051",
		MetricsAddr: ":9090",
		Rates:       calculator.DefaultRates(),
	}
}

// Load builds a Config from the defaults, the YAML file at path (skipped when
// path is empty) and the environment, in that order. Unknown YAML keys are
// rejected so misspelt rate names do not silently fall back to defaults.
func Load(path string, logger zerolog.Logger) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
		logger.Debug().Str("path", path).Msg("config file loaded")
	}

	applyEnv(&cfg, logger)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays LANDEDCOST_* variables. Invalid values are logged and ignored.
func applyEnv(cfg *Config, logger zerolog.Logger) {
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(v)); err == nil {
			cfg.LogLevel = strings.ToLower(v)
		} else {
			logger.Warn().Str("env_var", EnvLogLevel).Str("value", v).Msg("invalid log level, using configured value")
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvDutyTable)); v != "" {
		cfg.DutyTablePath = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvGRPCAddr)); v != "" {
		cfg.GRPCAddr = v
	}
	if v, ok := os.LookupEnv(EnvMetricsAddr); ok {
		cfg.MetricsAddr = strings.TrimSpace(v)
	}
}

// Validate checks the log level, the listen address and every rate.
func (c Config) Validate() error {
	var errs []error
	if lvl, err := zerolog.ParseLevel(c.LogLevel); err != nil || lvl == zerolog.NoLevel {
		errs = append(errs, fmt.Errorf("log_level %q is not a valid level", c.LogLevel))
	}
	if strings.TrimSpace(c.GRPCAddr) == "" {
		errs = append(errs, errors.New("grpc_addr is required"))
	}
	if err := c.Rates.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("rates: %w", err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Level returns the parsed log level, defaulting to info.
func (c Config) Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lvl
}
