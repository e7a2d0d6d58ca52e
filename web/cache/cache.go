package cache

import (
	"fmt"
	"time"

	"portfolio/logger"

	"github.com/goccy/go-json"
)

// TTL for public read responses. Content changes rarely; mutations invalidate
// eagerly, so the TTL only bounds staleness across processes.
const TTLContent = 60 * time.Second

// Cache key helpers, one namespace per resource kind.
func ListKey(resource string) string {
	return resource + ":all"
}

func ItemKey(resource string, id int) string {
	return fmt.Sprintf("%s:%d", resource, id)
}

func SingletonKey(resource string) string {
	return resource + ":singleton"
}

// GetJSON retrieves a value and unmarshals it into dest.
func GetJSON(key string, dest any) error {
	val, err := Get(key)
	if err != nil {
		return err
	}
	if val == "" {
		return fmt.Errorf("empty value for key: %s", key)
	}
	return json.Unmarshal([]byte(val), dest)
}

// SetJSON marshals a value and stores it.
func SetJSON(key string, value any, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}
	return Set(key, string(data), expiration)
}

// GetOrSet retrieves a cached value, or computes it with fn and stores it.
func GetOrSet(key string, dest any, expiration time.Duration, fn func() (any, error)) error {
	if err := GetJSON(key, dest); err == nil {
		logger.Debugf("Cache hit for key: %s", key)
		return nil
	}

	logger.Debugf("Cache miss for key: %s", key)
	value, err := fn()
	if err != nil {
		return err
	}

	if err := SetJSON(key, value, expiration); err != nil {
		logger.Warningf("Failed to set cache for key %s: %v", key, err)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, dest)
}

// Invalidate drops every cached entry for a resource kind.
func Invalidate(resource string) {
	if err := DeletePattern(resource + ":*"); err != nil {
		logger.Warningf("Failed to invalidate cache for %s: %v", resource, err)
	}
}
