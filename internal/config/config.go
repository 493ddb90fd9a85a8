package config

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

type Config struct {
	BaseURL        string
	RequestTimeout time.Duration
	TableCount     int
	RedisAddr      string
	TokenKey       string
	TokenTTL       time.Duration
}

// Load reads .env if present and falls back to real environment variables.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using environment variables")
	}

	return Config{
		BaseURL:        getEnv("JAVABITE_API_URL", "http://localhost:8080/api"),
		RequestTimeout: getDuration("JAVABITE_REQUEST_TIMEOUT", 15*time.Second),
		TableCount:     getInt("JAVABITE_TABLE_COUNT", 6),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		TokenKey:       getEnv("JAVABITE_TOKEN_KEY", "javabite:session-token"),
		TokenTTL:       getDuration("JAVABITE_TOKEN_TTL", 7*24*time.Hour),
	}
}

// MustInitRedis connects to the token store backend; only called when
// REDIS_ADDR is configured.
func MustInitRedis(addr string) *redis.Client {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	return client
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
