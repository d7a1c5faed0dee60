package config

import (
	"os"      // For environment variables
	"strconv" // For string to int conversion
	"time"    // For durations

	"github.com/joho/godotenv" // For loading .env files
	"github.com/sirupsen/logrus"
)

const (
	defaultAppPort        = "8080"           // Port used when APP_PORT is empty
	defaultSessionTTL     = 24 * time.Hour   // Session lifetime
	defaultProductListTTL = 60 * time.Second // Product list cache lifetime
	defaultHashIterations = 600000           // PBKDF2 rounds
)

// Config holds the application configuration
type Config struct {
	AppPort         string        // Application port
	DBUser          string        // Database user
	DBPassword      string        // Database password
	DBHost          string        // Database host
	DBPort          string        // Database port
	DBName          string        // Database name
	SessionSecret   string        // Session token signing key
	SessionTTL      time.Duration // Session lifetime
	HashIterations  int           // PBKDF2 rounds for new password hashes
	ProductCacheTTL time.Duration // Lifetime of cached product lists
	RedisAddr       string        // Redis server address
	RedisPass       string        // Redis password
	RedisDB         int           // Redis database number
	IsProd          bool          // Is production environment
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	_ = godotenv.Load() // Load .env file if present
	return &Config{
		AppPort:         envString("APP_PORT", defaultAppPort),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          os.Getenv("DB_PORT"),
		DBName:          os.Getenv("DB_NAME"),
		SessionSecret:   os.Getenv("SESSION_SECRET"),
		SessionTTL:      envDuration("SESSION_TTL", defaultSessionTTL),
		HashIterations:  envInt("PASSWORD_HASH_ITERATIONS", defaultHashIterations),
		ProductCacheTTL: envDuration("PRODUCT_CACHE_TTL", defaultProductListTTL),
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		RedisPass:       os.Getenv("REDIS_PASS"),
		RedisDB:         envInt("REDIS_DB", 0),
		IsProd:          os.Getenv("IS_PROD") == "true",
	}
}

// DSN builds the MySQL data source name
func (c *Config) DSN() string {
	return c.DBUser + ":" + c.DBPassword + "@tcp(" + c.DBHost + ":" + c.DBPort + ")/" + c.DBName + "?parseTime=true"
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logrus.WithFields(logrus.Fields{"key": key, "value": v}).Warn("invalid integer, using default")
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		logrus.WithFields(logrus.Fields{"key": key, "value": v}).Warn("invalid duration, using default")
		return fallback
	}
	return d
}
