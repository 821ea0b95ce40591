package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	ServerPort  string
	CORSOrigins []string

	// Redis
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int

	// JWT
	JWTSecret string
	TokenTTL  time.Duration

	// Console
	ToastDuration      time.Duration
	SessionIdleTimeout time.Duration
	DefaultTheme       string
	FixturesPath       string
	TicketFare         float64

	// Rate limiting
	RateLimit       int
	RateLimitWindow time.Duration
}

func Load() (*Config, error) {
	// Try to load .env file, but don't fail if it doesn't exist
	_ = godotenv.Load()

	redisDB, err := getEnvInt("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}
	tokenTTL, err := getEnvDuration("TOKEN_TTL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	toastDuration, err := getEnvDuration("TOAST_DURATION", 5*time.Second)
	if err != nil {
		return nil, err
	}
	idleTimeout, err := getEnvDuration("SESSION_IDLE_TIMEOUT", 2*time.Hour)
	if err != nil {
		return nil, err
	}
	rateLimit, err := getEnvInt("RATE_LIMIT", 120)
	if err != nil {
		return nil, err
	}
	rateWindow, err := getEnvDuration("RATE_LIMIT_WINDOW", time.Minute)
	if err != nil {
		return nil, err
	}
	fare, err := strconv.ParseFloat(getEnv("TICKET_FARE", "30"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TICKET_FARE: %w", err)
	}

	config := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),

		RedisHost:     getEnv("REDIS_HOST", ""),
		RedisPort:     getEnv("REDIS_PORT", "6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,

		JWTSecret: getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
		TokenTTL:  tokenTTL,

		ToastDuration:      toastDuration,
		SessionIdleTimeout: idleTimeout,
		DefaultTheme:       getEnv("DEFAULT_THEME", "light"),
		FixturesPath:       getEnv("FIXTURES_PATH", ""),
		TicketFare:         fare,

		RateLimit:       rateLimit,
		RateLimitWindow: rateWindow,
	}

	if config.DefaultTheme != "light" && config.DefaultTheme != "dark" {
		return nil, fmt.Errorf("invalid DEFAULT_THEME %q: want light or dark", config.DefaultTheme)
	}

	return config, nil
}

// RedisEnabled reports whether a Redis host was configured. Without one the
// console falls back to in-memory preferences and skips rate limiting.
func (c *Config) RedisEnabled() bool {
	return c.RedisHost != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
