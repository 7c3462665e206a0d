package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Env    string
	Server ServerConfig
	DB     DBConfig
	News   NewsConfig
	Stocks StocksConfig
	Worker WorkerConfig
	OTel   bool
}

type ServerConfig struct {
	Port           string
	RateLimitRPS   float64
	RateLimitBurst int
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	MaxConns int32
	MinConns int32
}

func (c DBConfig) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.User, c.Password, c.Host, c.Port, c.Name)
}

type NewsConfig struct {
	BaseURL        string
	APIKey         string
	FetchLimit     int
	TimeoutSeconds int
}

type StocksConfig struct {
	CacheTTLMinutes int
}

type WorkerConfig struct {
	Enabled         bool
	IntervalSeconds int
}

func Load() *Config {
	return &Config{
		Env: getEnv("ENV", "development"),
		Server: ServerConfig{
			Port:           getEnv("PORT", "9020"),
			RateLimitRPS:   getEnvFloat64("RATE_LIMIT_RPS", 10),
			RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 30),
		},
		DB: DBConfig{
			Host:     getEnv("DB_HOST", "news-db"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "news_user"),
			Password: getSecret("DB_PASSWORD", "DB_PASSWORD_FILE", "news_password"),
			Name:     getEnv("DB_NAME", "news_db"),
			MaxConns: int32(getEnvInt("DB_MAX_CONNS", 10)),
			MinConns: int32(getEnvInt("DB_MIN_CONNS", 2)),
		},
		News: NewsConfig{
			BaseURL:        getEnv("NEWS_API_URL", "https://newsapi.org"),
			APIKey:         getSecret("NEWS_API_KEY", "NEWS_API_KEY_FILE", ""),
			FetchLimit:     getEnvInt("NEWS_FETCH_LIMIT", 20),
			TimeoutSeconds: getEnvInt("NEWS_TIMEOUT_SECONDS", 10),
		},
		Stocks: StocksConfig{
			CacheTTLMinutes: getEnvInt("STOCK_CACHE_TTL_MINUTES", 5),
		},
		Worker: WorkerConfig{
			Enabled:         getEnvBool("NEWS_WORKER_ENABLED", true),
			IntervalSeconds: getEnvInt("NEWS_UPDATE_INTERVAL", 300),
		},
		OTel: getEnvBool("OTEL_LOGS_ENABLED", false),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getSecret(envKey, fileEnvKey, fallback string) string {
	if value, ok := os.LookupEnv(envKey); ok {
		return value
	}

	if filePath, ok := os.LookupEnv(fileEnvKey); ok {
		content, err := os.ReadFile(filePath)
		if err == nil {
			return strings.TrimSpace(string(content))
		}
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvFloat64(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
