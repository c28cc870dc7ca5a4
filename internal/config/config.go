package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret   string
	TokenExpiry time.Duration

	// Stripe
	StripeSecretKey string
	StripeCurrency  string

	// Admin bootstrap
	AdminEmails string
	AdminToken  string

	// Server
	Port        string
	CORSOrigins string
	LogLevel    string

	// List scans are unbounded; results at or above this size log a warning.
	ListWarnThreshold int
}

func Load() *Config {
	// .env is optional; real deployments inject env vars directly.
	_ = godotenv.Load()

	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "toolshop_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:   getEnv("ACCESS_TOKEN_SECRET", ""),
		TokenExpiry: parseDuration(getEnv("TOKEN_EXPIRY", "1h")),

		StripeSecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		StripeCurrency:  getEnv("STRIPE_CURRENCY", "usd"),

		AdminEmails: getEnv("ADMIN_EMAILS", ""),
		AdminToken:  getEnv("ADMIN_TOKEN", ""),

		Port:        getEnv("PORT", "5000"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		ListWarnThreshold: parseInt(getEnv("LIST_WARN_THRESHOLD", "1000")),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return time.Hour
	}
	return d
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 1000
	}
	return n
}
