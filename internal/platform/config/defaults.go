package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultLoginRate  = 1.0
	defaultLoginBurst = 5
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "10s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "8s",

		"log.level":  "info",
		"log.format": "json",

		"database.dsn":              "workflow.db",
		"database.migrate_on_start": true,

		"auth.jwt_secret":       "",
		"auth.issuer":           "workflowmanagement",
		"auth.access_token_ttl": "1h",
		"auth.password_pepper":  "",
		"auth.login_rate":       defaultLoginRate,
		"auth.login_burst":      defaultLoginBurst,

		"notifier.enabled":                                false,
		"notifier.client.base_url":                        "http://localhost:8081",
		"notifier.client.timeout":                         "5s",
		"notifier.client.retry.max_attempts":              defaultRetryMaxAttempts,
		"notifier.client.retry.initial_interval":          "100ms",
		"notifier.client.retry.max_interval":              "2s",
		"notifier.client.retry.multiplier":                defaultRetryMultiplier,
		"notifier.client.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"notifier.client.circuit_breaker.timeout":         "30s",
		"notifier.client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"notifier.client.rate_limit.requests_per_second":  0,
		"notifier.client.rate_limit.burst_size":           0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "workflowmanagement",
	}
}
