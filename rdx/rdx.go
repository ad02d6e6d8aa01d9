package rdx

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// Conn is the shared Redis client used for session-scoped documents
// (carts, preferences).
var Conn *redis.Client

func init() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	Conn = redis.NewClient(&redis.Options{Addr: addr})
}

// Ping verifies the connection at startup; failure is logged, not fatal,
// because the storefront degrades to empty carts rather than crashing.
func Ping(ctx context.Context) {
	if err := Conn.Ping(ctx).Err(); err != nil {
		log.Printf("redis ping failed (%s): %v", Conn.Options().Addr, err)
	}
}
