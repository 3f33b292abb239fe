// Package config loads and validates service configuration. Values are
// layered: built-in defaults, then base.yaml, then {profile}.yaml, then
// APP_-prefixed environment variables.
package config

import "time"

// Config holds all configuration for the service and the club generator.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Client     ClientConfig     `koanf:"client"`
	Generator  GeneratorConfig  `koanf:"generator"`
	Validation ValidationConfig `koanf:"validation"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	RequestTimeout  time.Duration `koanf:"request_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	// MaxBodyBytes caps inbound request bodies.
	MaxBodyBytes int64 `koanf:"max_body_bytes"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the outbound chat-completions API used to
// generate clubs.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig throttles outbound requests. A zero RequestsPerSecond
// disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// GeneratorConfig controls club generation through the chat API.
type GeneratorConfig struct {
	Model  string `koanf:"model"`
	APIKey string `koanf:"api_key"`
	// Default counts requested when a caller leaves them unset.
	Companies  int    `koanf:"companies"`
	Members    int    `koanf:"members"`
	Events     int    `koanf:"events"`
	OutputPath string `koanf:"output_path"`
}

// ValidationConfig bounds batch validation.
type ValidationConfig struct {
	BatchWorkers int `koanf:"batch_workers"`
	MaxBatchSize int `koanf:"max_batch_size"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// Telemetry exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)
