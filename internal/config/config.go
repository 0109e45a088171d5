package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port        string `yaml:"port" env:"SERVER_PORT"`
		Mode        string `yaml:"mode" env:"SERVER_MODE"`
		StoragePath string `yaml:"storage_path" env:"SERVER_STORAGE_PATH"`
	} `yaml:"server"`

	// Storage selects the durable key/value backend holding the catalog
	// and session documents.
	Storage struct {
		Backend string `yaml:"backend" env:"STORAGE_BACKEND"` // file | postgres | redis | memory
		Path    string `yaml:"path" env:"STORAGE_PATH"`       // file backend directory
		Table   string `yaml:"table" env:"STORAGE_TABLE"`     // postgres kv table name
	} `yaml:"storage"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		Password string `yaml:"password" env:"REDIS_PASSWORD"`
		DB       int    `yaml:"db" env:"REDIS_DB"`
		Prefix   string `yaml:"prefix" env:"REDIS_PREFIX"`
	} `yaml:"redis"`

	JWT struct {
		Secret                string `yaml:"secret" env:"JWT_SECRET"`
		AccessTokenExpiration string `yaml:"access_token_expiration" env:"JWT_ACCESS_TOKEN_EXPIRATION"`
		Issuer                string `yaml:"issuer" env:"JWT_ISSUER"`
	} `yaml:"jwt"`

	// Assistant configures the generative helper collaborator. A missing
	// API key is not a startup error; the service degrades to a fixed
	// unavailable message instead.
	Assistant struct {
		APIKey  string `yaml:"api_key" env:"GEMINI_API_KEY"`
		BaseURL string `yaml:"base_url" env:"GEMINI_BASE_URL"`
		Model   string `yaml:"model" env:"GEMINI_MODEL"`
		Timeout string `yaml:"timeout" env:"GEMINI_TIMEOUT"`
	} `yaml:"assistant"`

	Upload struct {
		MaxSizeMB int64 `yaml:"max_size_mb" env:"UPLOAD_MAX_SIZE_MB"`
	} `yaml:"upload"`

	// Accounts configures the static identity provider. The admin account
	// carries a bcrypt hash; student logins are caller-asserted per the
	// mock identity model.
	Accounts struct {
		Admin struct {
			Name         string `yaml:"name" env:"ADMIN_NAME"`
			Email        string `yaml:"email" env:"ADMIN_EMAIL"`
			PasswordHash string `yaml:"password_hash" env:"ADMIN_PASSWORD_HASH"`
		} `yaml:"admin"`
	} `yaml:"accounts"`

	Contact struct {
		Name   string `yaml:"name" env:"CONTACT_NAME"`
		Mobile string `yaml:"mobile" env:"CONTACT_MOBILE"`
		Email  string `yaml:"email" env:"CONTACT_EMAIL"`
	} `yaml:"contact"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; defaults plus env cover a bare run
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := processStructFields(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.StoragePath = "uploads"

	config.Storage.Backend = "file"
	config.Storage.Path = "data"
	config.Storage.Table = "documents"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "studyhub"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.Redis.Addr = "localhost:6379"
	config.Redis.Prefix = "studyhub"

	config.JWT.AccessTokenExpiration = "24h"
	config.JWT.Issuer = "studyhub.app"

	config.Assistant.BaseURL = "https://generativelanguage.googleapis.com"
	config.Assistant.Model = "gemini-2.5-flash"
	config.Assistant.Timeout = "30s"

	config.Upload.MaxSizeMB = 25

	config.Accounts.Admin.Name = "Sagar Shinde"
	config.Accounts.Admin.Email = "admin@studyhub.local"

	config.Contact.Name = "Sagar Shinde"
	config.Contact.Mobile = "9359179510"
	config.Contact.Email = "sagarshinde3657@gmail.com"

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	switch config.Storage.Backend {
	case "file", "postgres", "redis", "memory":
	default:
		return fmt.Errorf("unknown storage backend %q", config.Storage.Backend)
	}

	if config.JWT.Secret == "" {
		return fmt.Errorf("JWT secret is required")
	}

	if _, err := time.ParseDuration(config.JWT.AccessTokenExpiration); err != nil {
		return fmt.Errorf("invalid JWT access token expiration format: %w", err)
	}

	if _, err := time.ParseDuration(config.Assistant.Timeout); err != nil {
		return fmt.Errorf("invalid assistant timeout format: %w", err)
	}

	if config.Upload.MaxSizeMB <= 0 {
		return fmt.Errorf("upload max size must be positive")
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}
