package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var ErrEmptyEnvironmentVariable = errors.New("empty environment variable")

// Config holds the configuration of one service binary. Sections that a
// binary does not use are left zero-valued.
type Config struct {
	Database  DatabaseConfig
	Auth      AuthConfig
	Services  ServicesConfig
	Kafka     KafkaConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Server    ServerConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Username string
	Password string
	Name     string
}

// AuthConfig holds token signing configuration
type AuthConfig struct {
	JWTSecret        string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
}

// ServicesConfig holds the base URLs of the backend services and the web app
type ServicesConfig struct {
	AuthServerURL     string
	EventServerURL    string
	AuthServerTimeout time.Duration
	WebAppURI         string
}

// KafkaConfig holds decision event streaming configuration.
// An empty broker list disables publishing.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// RedisConfig holds Redis connection settings for the gateway rate limiter
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// RateLimitConfig holds the per-caller request budget of the gateway
type RateLimitConfig struct {
	RequestsPerMinute int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// LoadAuthServer reads the configuration of the auth-server
func LoadAuthServer() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	var err error
	if err = loadDatabase(&cfg.Database); err != nil {
		return nil, err
	}
	if err = loadTokens(&cfg.Auth); err != nil {
		return nil, err
	}
	if cfg.Auth.JWTRefreshSecret, err = requireEnv("JWT_REFRESH_SECRET"); err != nil {
		return nil, err
	}
	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	if cfg.Server.Port, err = getIntWithDefault("AUTH_SERVER_PORT", 3001); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEventServer reads the configuration of the event-server
func LoadEventServer() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	var err error
	if err = loadDatabase(&cfg.Database); err != nil {
		return nil, err
	}
	if cfg.Services.AuthServerURL, err = requireEnv("AUTH_SERVER_URL"); err != nil {
		return nil, err
	}
	cfg.Services.AuthServerURL = strings.TrimRight(cfg.Services.AuthServerURL, "/")
	if cfg.Services.AuthServerTimeout, err = getDurationWithDefault("AUTH_SERVER_TIMEOUT", 3*time.Second); err != nil {
		return nil, err
	}
	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	// Kafka is optional for the event-server
	cfg.Kafka.Brokers = splitList(os.Getenv("KAFKA_BROKERS"))
	cfg.Kafka.Topic = getEnvWithDefault("KAFKA_TOPIC", "reward-request-decisions")

	if cfg.Server.Port, err = getIntWithDefault("EVENT_SERVER_PORT", 3002); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadGateway reads the configuration of the gateway-server
func LoadGateway() (*Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg := &Config{}
	var err error
	if cfg.Auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return nil, err
	}
	if cfg.Services.AuthServerURL, err = requireEnv("AUTH_SERVER_URL"); err != nil {
		return nil, err
	}
	if cfg.Services.EventServerURL, err = requireEnv("EVENT_SERVER_URL"); err != nil {
		return nil, err
	}
	cfg.Services.WebAppURI = getEnvWithDefault("WEBAPP_URI", "http://localhost:3000")

	// Redis configuration
	cfg.Redis.Enabled = getEnvWithDefault("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Host = getEnvWithDefault("REDIS_HOST", "localhost")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if cfg.Redis.Port, err = getIntWithDefault("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.Redis.DB, err = getIntWithDefault("REDIS_DB", 0); err != nil {
		return nil, err
	}

	if cfg.RateLimit.RequestsPerMinute, err = getIntWithDefault("RATE_LIMIT_RPM", 120); err != nil {
		return nil, err
	}

	if cfg.Server.Port, err = getIntWithDefault("GATEWAY_PORT", 3000); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConnectionString returns the Postgres connection URL
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s/%s", c.Username, c.Password, c.Host, c.Name)
}

// Load env.local in non-production environments
func loadEnvFile() error {
	if os.Getenv("GO_ENV") != "production" {
		if err := godotenv.Load("env.local"); err != nil {
			return fmt.Errorf("failed to load env.local: %w", err)
		}
	}
	return nil
}

func loadDatabase(db *DatabaseConfig) error {
	var err error
	if db.Host, err = requireEnv("DB_HOST"); err != nil {
		return err
	}
	if db.Username, err = requireEnv("DB_USERNAME"); err != nil {
		return err
	}
	if db.Password, err = requireEnv("DB_PASSWORD"); err != nil {
		return err
	}
	if db.Name, err = requireEnv("DB_NAME"); err != nil {
		return err
	}
	return nil
}

func loadTokens(auth *AuthConfig) error {
	var err error
	if auth.JWTSecret, err = requireEnv("JWT_SECRET"); err != nil {
		return err
	}
	if auth.AccessTokenTTL, err = getDurationWithDefault("ACCESS_TOKEN_TTL", 24*time.Hour); err != nil {
		return err
	}
	if auth.RefreshTokenTTL, err = getDurationWithDefault("REFRESH_TOKEN_TTL", 7*24*time.Hour); err != nil {
		return err
	}
	return nil
}

// requireEnv returns the value of an environment variable or an error if not set
func requireEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set: %w", key, ErrEmptyEnvironmentVariable)
	}
	return value, nil
}

// getEnvWithDefault returns the value of an environment variable or a default value
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntWithDefault(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}

func getDurationWithDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return value, nil
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
