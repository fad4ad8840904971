package database

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// OpenRedis connects to Redis for the rate limiter. A missing or unreachable
// Redis is not fatal: the caller gets nil and rate limiting is skipped.
func OpenRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:6379"
	}

	client := redis.NewClient(&redis.Options{Addr: addr})
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Printf("WARNING: Failed to connect to Redis at %s: %v. Rate limiting disabled.", addr, err)
		return nil
	}

	log.Println("Redis connection established")
	return client
}
