package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	Env          string
	MongoURI     string
	MongoDB      string
	RedisURL     string
	CartTTL      time.Duration
	JWTSecret    string
	PaymentDelay time.Duration
}

// Load reads configuration from the environment, with a .env file as a
// development convenience.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port:         getEnv("PORT", "8080"),
		Env:          getEnv("ENV", "development"),
		MongoURI:     getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDB:      getEnv("MONGO_DB", "food_delivery"),
		RedisURL:     getEnv("REDIS_URL", "redis://localhost:6379"),
		CartTTL:      getDuration("CART_TTL_HOURS", time.Hour*24*7),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret"),
		PaymentDelay: getDurationMS("PAYMENT_DELAY_MS", 1500*time.Millisecond),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if hours, err := strconv.Atoi(val); err == nil && hours > 0 {
			return time.Duration(hours) * time.Hour
		}
	}
	return defaultVal
}

func getDurationMS(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if ms, err := strconv.Atoi(val); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultVal
}
