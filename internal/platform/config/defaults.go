package config

const (
	defaultServerPort   = 8080
	defaultMaxBodyBytes = 1 << 20

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultRateLimitRPS   = 2.0
	defaultRateLimitBurst = 4

	defaultGeneratorCompanies = 3
	defaultGeneratorMembers   = 5
	defaultGeneratorEvents    = 3

	defaultBatchWorkers = 8
	defaultMaxBatchSize = 500
)

// defaults returns the built-in configuration values, loaded before any file.
func defaults() map[string]any {
	return map[string]any{
		"server.host":             "0.0.0.0",
		"server.port":             defaultServerPort,
		"server.read_timeout":     "5s",
		"server.write_timeout":    "90s",
		"server.idle_timeout":     "120s",
		"server.request_timeout":  "60s",
		"server.shutdown_timeout": "15s",
		"server.max_body_bytes":   defaultMaxBodyBytes,

		"log.level":  "info",
		"log.format": "json",

		"client.base_url":                        "https://api.openai.com",
		"client.timeout":                         "60s",
		"client.retry.max_attempts":              defaultRetryMaxAttempts,
		"client.retry.initial_interval":          "500ms",
		"client.retry.max_interval":              "10s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  defaultRateLimitRPS,
		"client.rate_limit.burst_size":           defaultRateLimitBurst,

		"generator.model":       "gpt-4o-mini",
		"generator.api_key":     "",
		"generator.companies":   defaultGeneratorCompanies,
		"generator.members":     defaultGeneratorMembers,
		"generator.events":      defaultGeneratorEvents,
		"generator.output_path": "club.json",

		"validation.batch_workers":  defaultBatchWorkers,
		"validation.max_batch_size": defaultMaxBatchSize,

		"telemetry.enabled":      false,
		"telemetry.exporter":     ExporterStdout,
		"telemetry.endpoint":     "",
		"telemetry.service_name": "club-records",
	}
}
