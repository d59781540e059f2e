// Package cache wraps an optional Redis instance used to skip the bcrypt
// compare on repeated logins. Entity records are never cached; both stores
// are always read fresh so spreadsheet edits show up immediately.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var client *redis.Client

// Init initializes the Redis connection. A failed connection leaves the
// client nil and every cache call becomes a no-op.
func Init(addr, password string, db int) error {
	if addr == "" {
		return nil
	}

	client = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		// Close the failed client and set to nil for graceful degradation
		client.Close()
		client = nil
		return err
	}
	log.Printf("[Redis] Connected to %s", addr)
	return nil
}

// hashPassword derives the cache key suffix from the raw password
func hashPassword(password string) string {
	h := sha256.Sum256([]byte(password))
	return hex.EncodeToString(h[:])[:32]
}

func authKey(email, password string) string {
	return "auth:" + email + ":" + hashPassword(password)
}

// GetCachedAuth checks if credentials are cached and valid
func GetCachedAuth(ctx context.Context, email, password string) (string, bool) {
	if client == nil {
		return "", false
	}
	userID, err := client.Get(ctx, authKey(email, password)).Result()
	if err != nil {
		return "", false
	}
	return userID, true
}

// CacheAuth caches valid credentials for 15 minutes
func CacheAuth(ctx context.Context, email, password, userID string) {
	if client == nil {
		return
	}
	client.Set(ctx, authKey(email, password), userID, 15*time.Minute)
}

// InvalidateUserAuth removes all cached credentials for an email
// Called when: password change, account deactivation
func InvalidateUserAuth(ctx context.Context, email string) {
	if client == nil {
		return
	}
	keys, err := client.Keys(ctx, "auth:"+email+":*").Result()
	if err == nil && len(keys) > 0 {
		client.Del(ctx, keys...)
	}
}

// IsHealthy returns true if Redis connection is working
func IsHealthy() bool {
	if client == nil {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return client.Ping(ctx).Err() == nil
}
