// Package cache memoizes rendered responses in memory.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key builds a cache key from a namespace and the request inputs
func Key(namespace string, parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return "benkhawiya:v1:" + namespace + ":" + hex.EncodeToString(hash[:])
}

// Remember returns the cached value for key, or computes, stores and returns it.
// The boolean reports a cache hit. A nil cache always computes.
func Remember(c Cache, key string, ttl time.Duration, compute func() ([]byte, error)) ([]byte, bool, error) {
	if c != nil {
		if val, found := c.Get(key); found {
			return val, true, nil
		}
	}

	val, err := compute()
	if err != nil {
		return nil, false, err
	}

	if c != nil {
		if err := c.Set(key, val, ttl); err != nil {
			return val, false, err
		}
	}
	return val, false, nil
}
