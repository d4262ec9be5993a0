package middleware

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

// Limits configures the per-client rate limits. A zero limit disables
// that check.
type Limits struct {
	PerSecond int
	PerDay    int
}

// LoadLimitsFromEnv reads rate limits from environment variables.
func LoadLimitsFromEnv() Limits {
	perSecond, _ := strconv.Atoi(getEnv("RATE_LIMIT_PER_SECOND", "20"))
	perDay, _ := strconv.Atoi(getEnv("RATE_LIMIT_PER_DAY", "50000"))
	return Limits{PerSecond: perSecond, PerDay: perDay}
}

// RateLimit limits requests per client IP using Redis counters. Route
// queries are cheap but unauthenticated, so the limiter only needs to stop
// runaway clients, not meter billing. If Redis is down requests pass
// through.
func RateLimit(rdb *redis.Client, limits Limits) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx := c.Context()
		ip := c.IP()
		now := time.Now()

		if limits.PerSecond > 0 {
			key := fmt.Sprintf("rl:ip:%s:second:%d", ip, now.Unix())
			count, err := rdb.Incr(ctx, key).Result()
			if err == nil {
				rdb.Expire(ctx, key, 2*time.Second)
				if count > int64(limits.PerSecond) {
					c.Set("Retry-After", "1")
					return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
						"error":       "rate_limit_exceeded",
						"limit_type":  "per_second",
						"limit":       limits.PerSecond,
						"retry_after": 1,
					})
				}
			}
		}

		if limits.PerDay > 0 {
			key := fmt.Sprintf("rl:ip:%s:day:%s", ip, now.Format("2006-01-02"))
			count, err := rdb.Incr(ctx, key).Result()
			if err == nil {
				// 25 hours so the counter outlives its day in any timezone.
				rdb.Expire(ctx, key, 25*time.Hour)
				if count > int64(limits.PerDay) {
					tomorrow := now.AddDate(0, 0, 1)
					midnight := time.Date(tomorrow.Year(), tomorrow.Month(), tomorrow.Day(),
						0, 0, 0, 0, tomorrow.Location())
					retryAfter := int64(midnight.Sub(now).Seconds())

					c.Set("Retry-After", strconv.FormatInt(retryAfter, 10))
					return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
						"error":       "daily_quota_exceeded",
						"limit_type":  "per_day",
						"limit":       limits.PerDay,
						"used":        count,
						"retry_after": retryAfter,
						"reset_at":    midnight.Format(time.RFC3339),
					})
				}
				c.Set("X-RateLimit-Remaining-Day", strconv.FormatInt(int64(limits.PerDay)-count, 10))
			}
		}

		return c.Next()
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
