// Package config handles configuration loading for the course platform.
package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds all configuration for the service.
type Config struct {
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	RedisHost     string
	RedisPort     string
	RedisPassword string
	JWTSecret     string
	JWTExpiry     time.Duration
	Port          string
	Environment   string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		DBHost:        getEnvRequired("DB_HOST"),
		DBPort:        getEnvRequired("DB_PORT"),
		DBUser:        getEnvRequired("DB_USER"),
		DBPassword:    getEnvRequired("DB_PASSWORD"),
		DBName:        getEnvRequired("DB_NAME"),
		RedisHost:     getEnvRequired("REDIS_HOST"),
		RedisPort:     getEnvRequired("REDIS_PORT"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		JWTSecret:     getEnvRequired("SECURITY_KEY"),
		JWTExpiry:     parseDuration(getEnv("JWT_EXPIRY", "168h"), 168*time.Hour),
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),
	}
}

// DSN builds the postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return value
}

func parseDuration(value string, defaultValue time.Duration) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return duration
}
