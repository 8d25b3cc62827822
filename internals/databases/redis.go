package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"akademiku_backend/internals/configs"
)

var Redis *redis.Client

// ConnectRedis is optional: without REDIS_ADDR the unified session cache is
// disabled and every read goes straight to Postgres.
func ConnectRedis() {
	if configs.RedisAddr == "" {
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️ Redis ping failed (%v), session cache disabled", err)
		Redis = nil
		return
	}
	log.Println("✅ Redis connected.")
}
