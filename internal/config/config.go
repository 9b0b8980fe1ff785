// Package config manages environment variables.
//
// It reads variables from the process environment (and an optional `.env`
// file), loads them into structured Go types, and validates that required
// values are present so the rest of the application can rely on them.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide defaults for optional blocks (observability, rate limiting, auth TTL).
package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process environment before anything below reads it.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix every configuration variable must carry.
//
// Nesting uses the "." delimiter after the prefix:
//
//	SHRINE_SERVER.PORT       -> server.port       -> Config.Server.Port
//	SHRINE_DATABASE.HOST     -> database.host     -> Config.Database.Host
//	SHRINE_AUTH.SECRET_KEY   -> auth.secret_key   -> Config.Auth.SecretKey
const EnvPrefix = "SHRINE_"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from.
// The `validate:"..."` tags are enforced by go-playground/validator.
//
// Observability and RateLimit are pointers because they are optional.
// If not provided, defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Auth          AuthConfig           `koanf:"auth" validate:"required"`
	Integration   IntegrationConfig    `koanf:"integration"`
	RateLimit     *RateLimitConfig     `koanf:"rate_limit"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
// Used to tag logs and to switch behavior (e.g. SQL tracing in "local").
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters and pool tuning.
//
// URL takes priority (hosted databases usually hand out a single
// connection string). When it is empty, the individual fields are required
// and a DSN is built from them.
type DatabaseConfig struct {
	URL             string `koanf:"url"`
	Host            string `koanf:"host" validate:"required_without=URL"`
	Port            int    `koanf:"port" validate:"required_without=URL"`
	User            string `koanf:"user" validate:"required_without=URL"`
	Password        string `koanf:"password" validate:"required_without=URL"`
	Name            string `koanf:"name" validate:"required_without=URL"`
	SSLMode         string `koanf:"ssl_mode" validate:"required_without=URL"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
}

// DSN returns the connection string for the configured database.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}

	// Joins host + port (handles IPv6 brackets) and URL-encodes the
	// password so characters like '@' or ':' do not break the DSN.
	hostPort := net.JoinHostPort(d.Host, strconv.Itoa(d.Port))
	encodedPassword := url.QueryEscape(d.Password)

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		d.User,
		encodedPassword,
		hostPort,
		d.Name,
		d.SSLMode,
	)
}

// RedisConfig contains Redis connection details.
// Address is "host:port". Empty disables Redis-backed features.
type RedisConfig struct {
	Address string `koanf:"address"`
}

// AuthConfig stores admin authentication settings.
//
// AdminUsername/AdminPassword seed the single admin account the first time
// the service starts against an empty admins table.
type AuthConfig struct {
	SecretKey     string        `koanf:"secret_key" validate:"required,min=16"`
	TokenTTL      time.Duration `koanf:"token_ttl"`
	AdminUsername string        `koanf:"admin_username"`
	AdminPassword string        `koanf:"admin_password" validate:"required_with=AdminUsername"`
}

// IntegrationConfig holds third-party service credentials.
//
// Office notifications for new prayer requests are sent only when both
// ResendAPIKey and NotificationEmail are set.
type IntegrationConfig struct {
	ResendAPIKey      string `koanf:"resend_api_key"`
	NotificationEmail string `koanf:"notification_email" validate:"omitempty,email"`
	FromEmail         string `koanf:"from_email"`
}

// NotificationsEnabled reports whether office notification emails can be sent.
func (i IntegrationConfig) NotificationsEnabled() bool {
	return i.ResendAPIKey != "" && i.NotificationEmail != ""
}

// RateLimitConfig throttles the public submission endpoints per client IP.
type RateLimitConfig struct {
	RequestsPerSecond float64       `koanf:"requests_per_second" validate:"gt=0"`
	Burst             int           `koanf:"burst" validate:"min=1"`
	ExpiresIn         time.Duration `koanf:"expires_in"`
}

// DefaultRateLimitConfig allows a short burst of submissions, then one every two seconds.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		RequestsPerSecond: 0.5,
		Burst:             5,
		ExpiresIn:         3 * time.Minute,
	}
}

// DefaultTokenTTL is used when SHRINE_AUTH.TOKEN_TTL is not set.
const DefaultTokenTTL = 24 * time.Hour

// LoadConfig loads configuration from environment variables, unmarshals it
// into Config, applies defaults, validates it, and returns the result.
//
// Behavior summary:
//   - Loads env vars with prefix SHRINE_
//   - Converts env keys into koanf keys using "." nesting
//   - Unmarshals into Config
//   - Injects default observability / rate limit / token TTL if missing
//   - Validates struct tags and observability rules
//
// Errors are returned rather than exiting, so the caller decides how to die.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	// env.Provider parameters:
	//   1) prefix: only env vars with this prefix are read
	//   2) delimiter: "." marks nesting
	//   3) key-mapping func: drops the prefix and lowercases the rest
	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	mainConfig := &Config{}
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, fmt.Errorf("could not unmarshal main config: %w", err)
	}

	applyDefaults(mainConfig)

	if err := validator.New().Struct(mainConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, fmt.Errorf("invalid observability config: %w", err)
	}

	return mainConfig, nil
}

// applyDefaults fills optional blocks that were not provided.
func applyDefaults(cfg *Config) {
	if cfg.Observability == nil {
		cfg.Observability = DefaultObservabilityConfig()
	}

	// Service name is fixed so dashboards don't fragment; environment always
	// follows the primary env.
	cfg.Observability.ServiceName = "shrine-api"
	cfg.Observability.Environment = cfg.Primary.Env

	if cfg.RateLimit == nil {
		cfg.RateLimit = DefaultRateLimitConfig()
	}
	if cfg.RateLimit.ExpiresIn <= 0 {
		cfg.RateLimit.ExpiresIn = DefaultRateLimitConfig().ExpiresIn
	}

	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = DefaultTokenTTL
	}

	if cfg.Integration.FromEmail == "" {
		cfg.Integration.FromEmail = "Shrine Office <onboarding@resend.dev>"
	}
}
