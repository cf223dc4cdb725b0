package redisx

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// New создаёт Redis-клиент и проверяет соединение ping-ом.
func New(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, err
	}
	return rdb, nil
}
