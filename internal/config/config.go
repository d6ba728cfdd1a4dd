// Package config loads server configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Store  StoreConfig
	Auth   AuthConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port       string // listen port
	StaticPath string // directory served for non-API routes
}

// StoreConfig contains menu storage settings.
type StoreConfig struct {
	Path string // SQLite database file path; empty means in-memory
}

// AuthConfig contains the admin identity and token settings.
type AuthConfig struct {
	AdminUsername string
	AdminPassword string        // plaintext secret, compared literally
	AdminHash     string        // optional bcrypt hash; takes precedence over AdminPassword
	JWTSecret     string        // token signing secret
	TokenTTL      time.Duration // session token lifetime
}

// Load reads configuration from a .env file (if present) and the
// environment. Defaults reproduce the legacy deployment so the existing
// admin page keeps working out of the box.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "1h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}

	return &Config{
		Server: ServerConfig{
			Port:       getEnv("PORT", "3000"),
			StaticPath: getEnv("STATIC_PATH", "./public"),
		},
		Store: StoreConfig{
			Path: getEnv("DB_PATH", ""),
		},
		Auth: AuthConfig{
			AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
			AdminHash:     getEnv("ADMIN_PASSWORD_HASH", ""),
			JWTSecret:     getEnv("JWT_SECRET", "your-secret-key"),
			TokenTTL:      ttl,
		},
	}, nil
}

// String returns a printable form of the config with secrets masked.
func (c *Config) String() string {
	store := c.Store.Path
	if store == "" {
		store = "memory"
	}
	return fmt.Sprintf("Config{Port: %s, Static: %s, Store: %s, Auth: ***}",
		c.Server.Port, c.Server.StaticPath, store)
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
