package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Admin    AdminConfig
	Cart     CartConfig
	Storage  StorageConfig
	Telegram TelegramConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
	MaxConnIdleTime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AdminConfig holds the shared secret gating the admin endpoints.
type AdminConfig struct {
	Secret string
}

// CartConfig holds session-cart persistence configuration.
type CartConfig struct {
	DataDir string
}

// StorageConfig holds S3 configuration for product images.
type StorageConfig struct {
	Enabled       bool
	Bucket        string
	Region        string
	KeyPrefix     string // path prefix within the bucket (e.g. "products/")
	PublicBaseURL string // base of public object URLs; derived from bucket/region when empty
}

// TelegramConfig holds the order-notification webhook credentials.
// Notifications are skipped with a logged error when either value is absent.
type TelegramConfig struct {
	BotToken string
	ChatID   string
}

// Load loads configuration from environment variables. A .env file in the
// working directory is applied first when present.
func Load() (*Config, error) {
	// Missing .env is the normal case in production.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "pureperfumes"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
			MaxConnIdleTime: getEnvAsInt("DB_MAX_CONN_IDLE_TIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Admin: AdminConfig{
			Secret: getEnv("ADMIN_SECRET", ""),
		},
		Cart: CartConfig{
			DataDir: getEnv("CART_DATA_DIR", "data/carts"),
		},
		Storage: StorageConfig{
			Enabled:       getEnvAsBool("S3_ENABLED", false),
			Bucket:        getEnv("S3_BUCKET", ""),
			Region:        getEnv("S3_REGION", "us-east-1"),
			KeyPrefix:     getEnv("S3_KEY_PREFIX", "products/"),
			PublicBaseURL: getEnv("S3_PUBLIC_BASE_URL", ""),
		},
		Telegram: TelegramConfig{
			BotToken: getEnv("TG_BOT_TOKEN", ""),
			ChatID:   getEnv("TG_CHAT_ID", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}

	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	if c.Admin.Secret == "" {
		return fmt.Errorf("admin secret is required")
	}

	if c.Cart.DataDir == "" {
		return fmt.Errorf("cart data directory is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	if c.Storage.Enabled {
		if c.Storage.Bucket == "" {
			return fmt.Errorf("S3 bucket is required when S3 is enabled")
		}
		if c.Storage.Region == "" {
			return fmt.Errorf("S3 region is required when S3 is enabled")
		}
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Enabled reports whether notification credentials are fully configured.
func (c *TelegramConfig) Enabled() bool {
	return c.BotToken != "" && c.ChatID != ""
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
