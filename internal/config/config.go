package config

import (
	"strconv"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

// DatabaseConfig holds PostgreSQL database connection settings.
// URL, when set, takes precedence over the individual components.
type DatabaseConfig struct {
	URL                string
	Host               string
	Port               string
	User               string
	Password           string
	Name               string
	SSLMode            string
	MaxOpenConns       int
	MaxIdleConns       int
	ConnMaxLifetimeSec int
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Port     string
	Debug    bool
	Timezone string
	Database DatabaseConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	k := koanf.New(".")
	// Keys are kept verbatim (DB_HOST stays DB_HOST); the env provider only
	// errors on a broken callback, so the result is ignored.
	_ = k.Load(env.Provider("", ".", func(s string) string { return s }), nil)

	return &AppConfig{
		Port:     getEnv(k, "PORT", "8080"),
		Debug:    getEnvBool(k, "APP_DEBUG", false),
		Timezone: getEnv(k, "APP_TIMEZONE", "UTC"),
		Database: DatabaseConfig{
			URL:                getEnv(k, "DATABASE_URL", ""),
			Host:               getEnv(k, "DB_HOST", ""),
			Port:               getEnv(k, "DB_PORT", "5432"),
			User:               getEnv(k, "DB_USER", ""),
			Password:           getEnv(k, "DB_PASSWORD", ""),
			Name:               getEnv(k, "DB_NAME", ""),
			SSLMode:            getEnv(k, "DB_SSLMODE", "disable"),
			MaxOpenConns:       getEnvInt(k, "DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:       getEnvInt(k, "DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetimeSec: getEnvInt(k, "DB_CONN_MAX_LIFETIME_SEC", 300),
		},
	}
}

func getEnv(k *koanf.Koanf, key, def string) string {
	if v := k.String(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(k *koanf.Koanf, key string, def bool) bool {
	if v := k.String(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(k *koanf.Koanf, key string, def int) int {
	if v := k.String(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
