package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server       ServerConfig       `json:"server"`
	Database     DatabaseConfig     `json:"database"`
	Redis        RedisConfig        `json:"redis"`
	Digest       DigestConfig       `json:"digest"`
	Subscription SubscriptionConfig `json:"subscription"`
	Billing      BillingConfig      `json:"billing"`
	Auth         AuthConfig         `json:"auth"`
	Catalog      CatalogConfig      `json:"catalog"`
	Logging      LoggingConfig      `json:"logging"`
	OTel         OTelConfig         `json:"otel"`
}

type ServerConfig struct {
	Port            int           `json:"port" env:"SERVER_PORT" default:"9000"`
	ReadTimeout     time.Duration `json:"read_timeout" env:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `json:"write_timeout" env:"SERVER_WRITE_TIMEOUT" default:"30s"`
	IdleTimeout     time.Duration `json:"idle_timeout" env:"SERVER_IDLE_TIMEOUT" default:"120s"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" default:"10s"`
	AllowedOrigins  []string      `json:"allowed_origins" env:"SERVER_ALLOWED_ORIGINS" default:"https://allaboutxrp.com"`
}

type DatabaseConfig struct {
	URL               string        `json:"-" env:"DATABASE_URL"`
	Host              string        `json:"host" env:"DB_HOST" default:"localhost"`
	Port              int           `json:"port" env:"DB_PORT" default:"5432"`
	User              string        `json:"user" env:"DB_USER" default:"allaboutxrp"`
	Password          string        `json:"-" env:"DB_PASSWORD"`
	PasswordFile      string        `json:"-" env:"DB_PASSWORD_FILE"`
	Name              string        `json:"name" env:"DB_NAME" default:"allaboutxrp"`
	SSLMode           string        `json:"ssl_mode" env:"DB_SSL_MODE" default:"disable"`
	MaxConnections    int           `json:"max_connections" env:"DB_MAX_CONNECTIONS" default:"10"`
	MinConnections    int           `json:"min_connections" env:"DB_MIN_CONNECTIONS" default:"1"`
	ConnectionTimeout time.Duration `json:"connection_timeout" env:"DB_CONNECTION_TIMEOUT" default:"10s"`
}

// ConnString prefers DATABASE_URL and falls back to the discrete settings.
func (d DatabaseConfig) ConnString() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode)
}

type RedisConfig struct {
	Enabled bool   `json:"enabled" env:"REDIS_ENABLED" default:"false"`
	URL     string `json:"-" env:"REDIS_URL" default:"redis://localhost:6379/0"`
}

type DigestConfig struct {
	SiteURL       string        `json:"site_url" env:"SITE_URL" default:"https://allaboutxrp.com"`
	FetchTimeout  time.Duration `json:"fetch_timeout" env:"DIGEST_FETCH_TIMEOUT" default:"5s"`
	IndexCacheTTL time.Duration `json:"index_cache_ttl" env:"DIGEST_INDEX_CACHE_TTL" default:"5m"`
	ListLimit     int           `json:"list_limit" env:"DIGEST_LIST_LIMIT" default:"104"`
	SlugCacheSize int           `json:"slug_cache_size" env:"DIGEST_SLUG_CACHE_SIZE" default:"256"`
	SlugCacheTTL  time.Duration `json:"slug_cache_ttl" env:"DIGEST_SLUG_CACHE_TTL" default:"1m"`
}

type SubscriptionConfig struct {
	LookupTimeout time.Duration `json:"lookup_timeout" env:"SUBSCRIPTION_LOOKUP_TIMEOUT" default:"2s"`
	AdminEmails   []string      `json:"-" env:"ADMIN_EMAILS"`
	RetryAfter    time.Duration `json:"retry_after" env:"SUBSCRIPTION_RETRY_AFTER" default:"2s"`
}

type BillingConfig struct {
	StripeSecretKey     string        `json:"-" env:"STRIPE_SECRET_KEY"`
	StripeSecretKeyFile string        `json:"-" env:"STRIPE_SECRET_KEY_FILE"`
	StripeAPIURL        string        `json:"stripe_api_url" env:"STRIPE_API_URL" default:"https://api.stripe.com"`
	DefaultReturnURL    string        `json:"default_return_url" env:"BILLING_DEFAULT_RETURN_URL" default:"https://allaboutxrp.com/digest"`
	RequestTimeout      time.Duration `json:"request_timeout" env:"BILLING_REQUEST_TIMEOUT" default:"10s"`
	RateLimitPerMinute  int           `json:"rate_limit_per_minute" env:"BILLING_RATE_LIMIT_PER_MINUTE" default:"10"`
	RateLimitBurst      int           `json:"rate_limit_burst" env:"BILLING_RATE_LIMIT_BURST" default:"3"`
}

// Configured reports whether a Stripe key is available.
func (b BillingConfig) Configured() bool {
	return b.StripeSecretKey != ""
}

type AuthConfig struct {
	ViewerTokenSecret     string `json:"-" env:"VIEWER_TOKEN_SECRET"`
	ViewerTokenSecretFile string `json:"-" env:"VIEWER_TOKEN_SECRET_FILE"`
	ViewerTokenIssuer     string `json:"viewer_token_issuer" env:"VIEWER_TOKEN_ISSUER" default:"allaboutxrp-auth"`
	ViewerTokenAudience   string `json:"viewer_token_audience" env:"VIEWER_TOKEN_AUDIENCE" default:"allaboutxrp-backend"`
	ViewerTokenHeader     string `json:"viewer_token_header" env:"VIEWER_TOKEN_HEADER" default:"X-Viewer-Token"`
}

type CatalogConfig struct {
	Path string `json:"path" env:"CATALOG_PATH" default:"catalog/content.yaml"`
}

type LoggingConfig struct {
	Level string `json:"level" env:"LOG_LEVEL" default:"info"`
}

type OTelConfig struct {
	Enabled        bool    `json:"enabled" env:"OTEL_ENABLED" default:"false"`
	ServiceName    string  `json:"service_name" env:"OTEL_SERVICE_NAME" default:"allaboutxrp-backend"`
	ServiceVersion string  `json:"service_version" env:"SERVICE_VERSION" default:"dev"`
	Environment    string  `json:"environment" env:"DEPLOYMENT_ENV" default:"development"`
	Endpoint       string  `json:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" default:"http://localhost:4318"`
	SampleRatio    float64 `json:"sample_ratio" env:"OTEL_TRACES_SAMPLER_ARG" default:"1.0"`
}

// NewConfig loads an optional .env file, then the environment, then validates.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	config := &Config{}
	if err := loadFromEnvironment(config); err != nil {
		return nil, err
	}

	// Docker secrets take precedence over plain env values.
	readSecretFile(config.Database.PasswordFile, &config.Database.Password)
	readSecretFile(config.Billing.StripeSecretKeyFile, &config.Billing.StripeSecretKey)
	readSecretFile(config.Auth.ViewerTokenSecretFile, &config.Auth.ViewerTokenSecret)

	normalizeEmails(config.Subscription.AdminEmails)

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// Load is an alias for NewConfig
func Load() (*Config, error) {
	return NewConfig()
}

func readSecretFile(path string, dst *string) {
	if path == "" {
		return
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return
	}
	*dst = strings.TrimSpace(string(content))
}

func normalizeEmails(emails []string) {
	for i, e := range emails {
		emails[i] = strings.ToLower(strings.TrimSpace(e))
	}
}
