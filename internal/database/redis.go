package database

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sacknest/sacknest-backend/internal/config"
)

var Redis *redis.Client
var Ctx = context.Background()

// InitRedis connects the optional Redis instance used for token revocation.
// Without it, logout is a no-op and tokens simply age out at their expiry.
func InitRedis() {
	if config.AppConfig.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, token revocation disabled")
		return
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       0,
	})

	if _, err := Redis.Ping(Ctx).Result(); err != nil {
		log.Printf("Warning: Failed to connect to Redis: %v. Token revocation disabled.", err)
		Redis = nil
		return
	}
	log.Println("Connected to Redis successfully")
}

// BlacklistToken marks a token's jti as revoked until its natural expiry.
func BlacklistToken(jti string, ttl time.Duration) error {
	if Redis == nil || jti == "" {
		return nil
	}
	return Redis.Set(Ctx, "token_blacklist:"+jti, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether a jti has been revoked. Fails open when
// Redis is absent, matching the no-revocation-list baseline.
func IsTokenBlacklisted(jti string) bool {
	if Redis == nil || jti == "" {
		return false
	}
	exists, err := Redis.Exists(Ctx, "token_blacklist:"+jti).Result()
	if err != nil {
		return false
	}
	return exists > 0
}
