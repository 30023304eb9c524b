package config

import (
	"fmt"
	"net/url"
	"strings"
)

func validateConfig(config *Config) error {
	if err := validateServerConfig(&config.Server); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}
	if err := validateDatabaseConfig(&config.Database); err != nil {
		return fmt.Errorf("database config validation failed: %w", err)
	}
	if err := validateDigestConfig(&config.Digest); err != nil {
		return fmt.Errorf("digest config validation failed: %w", err)
	}
	if err := validateSubscriptionConfig(&config.Subscription); err != nil {
		return fmt.Errorf("subscription config validation failed: %w", err)
	}
	if err := validateBillingConfig(&config.Billing); err != nil {
		return fmt.Errorf("billing config validation failed: %w", err)
	}
	if err := validateLoggingConfig(&config.Logging); err != nil {
		return fmt.Errorf("logging config validation failed: %w", err)
	}
	if err := validateOTelConfig(&config.OTel); err != nil {
		return fmt.Errorf("otel config validation failed: %w", err)
	}
	return nil
}

func validateServerConfig(config *ServerConfig) error {
	if config.Port < 1 || config.Port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", config.Port)
	}
	if config.ReadTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ReadTimeout: %v", config.ReadTimeout)
	}
	if config.WriteTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got WriteTimeout: %v", config.WriteTimeout)
	}
	if config.IdleTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got IdleTimeout: %v", config.IdleTimeout)
	}
	if config.ShutdownTimeout <= 0 {
		return fmt.Errorf("timeout values must be positive, got ShutdownTimeout: %v", config.ShutdownTimeout)
	}
	return nil
}

func validateDatabaseConfig(config *DatabaseConfig) error {
	if config.MaxConnections < 1 {
		return fmt.Errorf("max connections must be at least 1, got %d", config.MaxConnections)
	}
	if config.MinConnections < 0 || config.MinConnections > config.MaxConnections {
		return fmt.Errorf("min connections must be between 0 and %d, got %d", config.MaxConnections, config.MinConnections)
	}
	if config.ConnectionTimeout <= 0 {
		return fmt.Errorf("connection timeout must be positive, got %v", config.ConnectionTimeout)
	}
	return nil
}

func validateDigestConfig(config *DigestConfig) error {
	if err := validateAbsoluteURL(config.SiteURL); err != nil {
		return fmt.Errorf("site url: %w", err)
	}
	if config.FetchTimeout <= 0 {
		return fmt.Errorf("fetch timeout must be positive, got %v", config.FetchTimeout)
	}
	if config.IndexCacheTTL < 0 {
		return fmt.Errorf("index cache ttl must not be negative, got %v", config.IndexCacheTTL)
	}
	if config.ListLimit < 1 {
		return fmt.Errorf("list limit must be at least 1, got %d", config.ListLimit)
	}
	if config.SlugCacheSize < 0 {
		return fmt.Errorf("slug cache size must not be negative, got %d", config.SlugCacheSize)
	}
	if config.SlugCacheSize > 0 && config.SlugCacheTTL <= 0 {
		return fmt.Errorf("slug cache ttl must be positive when the cache is enabled, got %v", config.SlugCacheTTL)
	}
	return nil
}

func validateSubscriptionConfig(config *SubscriptionConfig) error {
	if config.LookupTimeout <= 0 {
		return fmt.Errorf("lookup timeout must be positive, got %v", config.LookupTimeout)
	}
	for _, email := range config.AdminEmails {
		if !strings.Contains(email, "@") {
			return fmt.Errorf("admin email must contain @, got %q", email)
		}
	}
	return nil
}

func validateBillingConfig(config *BillingConfig) error {
	if err := validateAbsoluteURL(config.StripeAPIURL); err != nil {
		return fmt.Errorf("stripe api url: %w", err)
	}
	if err := validateAbsoluteURL(config.DefaultReturnURL); err != nil {
		return fmt.Errorf("default return url: %w", err)
	}
	if config.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %v", config.RequestTimeout)
	}
	if config.RateLimitPerMinute < 1 || config.RateLimitBurst < 1 {
		return fmt.Errorf("rate limit must be at least 1/min with burst 1, got %d/min burst %d", config.RateLimitPerMinute, config.RateLimitBurst)
	}
	return nil
}

func validateLoggingConfig(config *LoggingConfig) error {
	switch strings.ToLower(config.Level) {
	case "debug", "info", "warn", "warning", "error":
		return nil
	default:
		return fmt.Errorf("invalid log level: %s", config.Level)
	}
}

func validateOTelConfig(config *OTelConfig) error {
	if config.SampleRatio < 0 || config.SampleRatio > 1 {
		return fmt.Errorf("sample ratio must be between 0 and 1, got %v", config.SampleRatio)
	}
	return nil
}

func validateAbsoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("host is required, got %q", raw)
	}
	return nil
}
