package helpers

import (
	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds the shared redis client used for rate limiting and,
// when selected, the redis document backend.
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}
