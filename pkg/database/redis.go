package database

import (
	"context"
	"exam_quiz_backend/internal/config"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

func NewRedisClient(cfg *config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     10,
		MinIdleConns: 2,
	})
}

// InitRedis returns the client together with the result of a first ping.
// The client is usable either way; go-redis reconnects on demand.
func InitRedis(cfg *config.RedisConfig) (*redis.Client, error) {
	rdb := NewRedisClient(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return rdb, err
	}

	log.Println("Redis connection established")
	return rdb, nil
}
