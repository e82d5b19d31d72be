package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Log struct {
		Level     string
		Format    string
		Component string
		Source    bool
	}

	DB struct {
		Driver string // "sqlite" (default) or "mysql"
		DSN    string
	}

	Redis struct {
		Addr     string
		Password string
		DB       int
	}

	HTTP struct {
		Host string
		Port string
		// PublicBaseURL, when set, overrides the scheme://host taken from
		// the incoming request when photo URLs are built. Useful behind a
		// reverse proxy or TLS terminator.
		PublicBaseURL string
	}

	Uploads struct {
		Dir      string
		MaxBytes int64
	}
}

func New() *Config {
	cfg := &Config{}

	// Logger
	cfg.Log.Level = getEnvDefault("LOG_LEVEL", "info")
	cfg.Log.Format = getEnvDefault("LOG_FORMAT", "text")
	cfg.Log.Component = getEnvDefault("LOG_COMPONENT", "http_server")
	cfg.Log.Source = isTruthy(os.Getenv("LOG_SOURCE"))

	// Database
	cfg.DB.Driver = strings.ToLower(getEnvDefault("DB_DRIVER", "sqlite"))
	switch cfg.DB.Driver {
	case "mysql":
		cfg.DB.DSN = getEnvDefault("MYSQL_DSN",
			"root:root@tcp(localhost:3306)/petswipe?parseTime=true&charset=utf8mb4&loc=UTC")
	default:
		cfg.DB.DSN = getEnvDefault("SQLITE_PATH", "database.db")
	}

	// Redis
	cfg.Redis.Addr = getEnvDefault("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnvDefault("REDIS_PASSWORD", "")
	if dbStr := getEnvDefault("REDIS_DB", "0"); dbStr != "" {
		if dbInt, err := strconv.Atoi(dbStr); err == nil {
			cfg.Redis.DB = dbInt
		}
	}

	// HTTP
	cfg.HTTP.Host = getEnvDefault("HTTP_HOST", "0.0.0.0")
	cfg.HTTP.Port = getEnvDefault("HTTP_PORT", "3001")
	cfg.HTTP.PublicBaseURL = strings.TrimSuffix(os.Getenv("HTTP_PUBLIC_BASE_URL"), "/")

	// Uploads
	cfg.Uploads.Dir = getEnvDefault("UPLOADS_DIR", "uploads")
	cfg.Uploads.MaxBytes = 5 << 20
	if sizeStr := os.Getenv("UPLOADS_MAX_BYTES"); sizeStr != "" {
		if size, err := strconv.ParseInt(sizeStr, 10, 64); err == nil && size > 0 {
			cfg.Uploads.MaxBytes = size
		}
	}

	return cfg
}

func getEnvDefault(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	}
	return false
}
