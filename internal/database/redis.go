package database

import (
	"context"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"planpulse-api/internal/config"
)

var redisClient *redis.Client

// InitRedis establishes the Redis connection used for reset-request cooldowns
func InitRedis(cfg *config.Config, log *zap.Logger) error {
	addr := fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return err
	}

	redisClient = client
	log.Info("Redis connection established successfully",
		zap.String("addr", addr),
		zap.Int("db", cfg.Redis.DB),
	)
	return nil
}

// GetRedis returns the shared Redis client.
// Returns nil instead of panicking so tests can run without Redis.
func GetRedis() *redis.Client {
	return redisClient
}
