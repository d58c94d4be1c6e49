package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Redis   RedisConfig
	Auth    AuthConfig
	Catalog CatalogConfig
	App     AppConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

// RedisConfig configures the optional event fan-out. An empty Addr disables it.
type RedisConfig struct {
	Addr          string
	Password      string
	DB            int
	ChannelPrefix string
}

type AuthConfig struct {
	// LooseLogin accepts any non-empty email and password for a known role.
	LooseLogin      bool
	CredentialsFile string
}

type CatalogConfig struct {
	SeedFile string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
	DefaultLang string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:5173"}),
		},
		Redis: RedisConfig{
			Addr:          getEnv("REDIS_ADDR", ""),
			Password:      getEnv("REDIS_PASSWORD", ""),
			DB:            getEnvAsInt("REDIS_DB", 0),
			ChannelPrefix: getEnv("REDIS_CHANNEL_PREFIX", "ugchub:events:"),
		},
		Auth: AuthConfig{
			LooseLogin:      getEnvAsBool("AUTH_LOOSE_LOGIN", false),
			CredentialsFile: getEnv("AUTH_CREDENTIALS_FILE", ""),
		},
		Catalog: CatalogConfig{
			SeedFile: getEnv("CATALOG_SEED_FILE", ""),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			DefaultLang: getEnv("DEFAULT_LANG", "es"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Redis.Addr != "" && c.Redis.ChannelPrefix == "" {
		return fmt.Errorf("REDIS_CHANNEL_PREFIX is required when REDIS_ADDR is set")
	}

	switch c.App.DefaultLang {
	case "es", "en":
	default:
		return fmt.Errorf("DEFAULT_LANG must be one of es, en; got %q", c.App.DefaultLang)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean for %s, using default: %t", key, defaultValue)
		return defaultValue
	}

	return value
}

func getEnvAsList(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
