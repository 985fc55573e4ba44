package config

import (
	"fmt"
	"os"
	"strconv"
)

// DatabaseConfig holds the jsis_records PostgreSQL connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// SMTPConfig holds the outbound mail settings. An empty User means no
// authentication, relaying through the local MTA.
type SMTPConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	FromEmail    string
	FromName     string
	SupportEmail string
}

// Config ejsis-server (HTTP API + report pipeline) configuration.
type Config struct {
	HTTP struct {
		Addr string
	}
	DBEnabled bool
	Database  DatabaseConfig
	Redis     struct {
		Enabled  bool
		Addr     string
		Password string
		DB       int
	}
	SMTP SMTPConfig
	Dirs struct {
		Uploads string
		Output  string
		Assets  string
	}
	Log struct {
		Level  string
		Format string
	}
}

func Load() *Config {
	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	// Default to true: without a DB the server falls back to the
	// in-memory repo so local `go run` still works end to end.
	cfg.DBEnabled = getEnv("DB_ENABLED", "true") == "true"
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "ejsis_data")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = parseInt(getEnv("DB_MAX_CONNS", "10"), 10)
	cfg.Database.MaxIdle = parseInt(getEnv("DB_MAX_IDLE", "5"), 5)

	cfg.Redis.Enabled = getEnv("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.SMTP.Host = getEnv("SMTP_HOST", "localhost")
	cfg.SMTP.Port = parseInt(getEnv("SMTP_PORT", "25"), 25)
	cfg.SMTP.User = getEnv("SMTP_USER", "")
	cfg.SMTP.Password = getEnv("SMTP_PASS", "")
	cfg.SMTP.FromEmail = getEnv("FROM_EMAIL", "noreply@ejsis.example.com")
	cfg.SMTP.FromName = getEnv("FROM_NAME", "eJSIS System")
	cfg.SMTP.SupportEmail = getEnv("SUPPORT_EMAIL", "")

	cfg.Dirs.Uploads = getEnv("UPLOAD_DIR", "uploads")
	cfg.Dirs.Output = getEnv("OUTPUT_DIR", "temp")
	cfg.Dirs.Assets = getEnv("ASSETS_DIR", "assets")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}
