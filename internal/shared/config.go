package shared

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MetricsAddr    string
	SessionBackend string
	RedisAddr      string
	RedisPass      string
	RedisDB        int
	SessionTTL     time.Duration
	ChatRPS        float64
	ChatBurst      int
}

// Load reads configuration from the environment, with an optional .env file
// for local development. Missing keys fall back to sane defaults.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		AppEnv:         env("APP_ENV", "prod"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ":9100"),
		SessionBackend: env("SESSION_BACKEND", "memory"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisPass:      env("REDIS_PASSWORD", ""),
		RedisDB:        envInt("REDIS_DB", 0),
		SessionTTL:     time.Duration(envInt("SESSION_TTL_SECONDS", 1800)) * time.Second,
		ChatRPS:        envFloat("CHAT_RPS", 5),
		ChatBurst:      envInt("CHAT_BURST", 10),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envFloat(k string, def float64) float64 {
	if v := os.Getenv(k); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
