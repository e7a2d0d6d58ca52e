// Package cache provides a redis-backed read cache for the public API.
// It supports both embedded redis (miniredis) and an external redis server.
package cache

import (
	"context"
	"fmt"
	"time"

	"portfolio/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

var (
	client     *redis.Client
	miniRedis  *miniredis.Miniredis
	ctx        = context.Background()
	isEmbedded = true
)

// Init initializes the redis client. An empty redisAddr starts an embedded
// in-process redis; otherwise an external server is used.
func Init(redisAddr string) error {
	if redisAddr == "" {
		mr, err := miniredis.Run()
		if err != nil {
			return fmt.Errorf("failed to start embedded redis: %w", err)
		}
		miniRedis = mr
		client = redis.NewClient(&redis.Options{
			Addr: mr.Addr(),
		})
		isEmbedded = true
		logger.Info("Embedded redis started on", mr.Addr())
	} else {
		client = redis.NewClient(&redis.Options{
			Addr: redisAddr,
		})
		isEmbedded = false

		if _, err := client.Ping(ctx).Result(); err != nil {
			return fmt.Errorf("failed to connect to redis at %s: %w", redisAddr, err)
		}
		logger.Info("Connected to external redis at", redisAddr)
	}

	return nil
}

// IsEmbedded returns true when the embedded redis is in use.
func IsEmbedded() bool {
	return isEmbedded
}

// Close closes the client and stops the embedded redis if running.
func Close() error {
	if client != nil {
		if err := client.Close(); err != nil {
			return err
		}
	}
	if miniRedis != nil {
		miniRedis.Close()
	}
	return nil
}

// Set stores a value with expiration.
func Set(key string, value any, expiration time.Duration) error {
	if client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	return client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a value. Missing keys return an error.
func Get(key string) (string, error) {
	if client == nil {
		return "", fmt.Errorf("redis client not initialized")
	}
	result, err := client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", fmt.Errorf("key not found: %s", key)
	}
	return result, err
}

// Delete removes a key.
func Delete(key string) error {
	if client == nil {
		return fmt.Errorf("redis client not initialized")
	}
	return client.Del(ctx, key).Err()
}

// DeletePattern removes all keys matching a glob pattern.
func DeletePattern(pattern string) error {
	if client == nil {
		return fmt.Errorf("redis client not initialized")
	}

	iter := client.Scan(ctx, 0, pattern, 0).Iterator()
	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if len(keys) > 0 {
		return client.Del(ctx, keys...).Err()
	}
	return nil
}
