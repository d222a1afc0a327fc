// Package redis provides Redis client utilities.
package redis

import (
	"context"
	"crypto/tls"
	"fmt"

	"github.com/Diatessaron/Best-Course-Ever/internal/config"
	"github.com/redis/go-redis/v9"
)

// NewClient creates a new Redis client instance and verifies connectivity.
func NewClient(cfg *config.Config) (*redis.Client, error) {
	options := &redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.RedisHost, cfg.RedisPort),
		Password: cfg.RedisPassword,
		DB:       0,
	}

	// Enable TLS for production environments when password is set
	if cfg.RedisPassword != "" {
		options.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	client := redis.NewClient(options)

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return client, nil
}
