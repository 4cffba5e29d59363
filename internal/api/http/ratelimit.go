package http

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Spencer4792/jwt-pizza-service/internal/config"
)

// RateLimitStore is the slice of redis the limiter depends on.
// *redis.Client satisfies it.
type RateLimitStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RateLimiter bounds requests per client IP within a fixed window, counted
// in Redis so the limit holds across replicas.
func RateLimiter(client RateLimitStore, cfg config.RateLimitConfig, logger *zap.Logger) fiber.Handler {
	window := cfg.Window()

	return func(c *fiber.Ctx) error {
		if !cfg.Enabled || client == nil {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%d", c.IP(), time.Now().Unix()/int64(window.Seconds()))

		count, err := client.Incr(c.UserContext(), key).Result()
		if err != nil {
			// A broken limiter must not take the API down with it.
			logger.Warn("rate limiter unavailable", zap.Error(err))
			return c.Next()
		}
		if count == 1 {
			client.Expire(c.UserContext(), key, window)
		}

		if count > int64(cfg.Max) {
			return c.Status(http.StatusTooManyRequests).JSON(fiber.Map{
				"message": "too many requests, please try again later",
			})
		}
		return c.Next()
	}
}
