package middleware

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireAdminKey guards the admin endpoints. Only the sha256 hex digest of
// the key is configured (ADMIN_API_KEY_HASH); the key itself is generated
// with scripts/generate_api_key.go and shown once.
func RequireAdminKey(keyHash string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(401).JSON(fiber.Map{
				"error":   "missing_api_key",
				"message": "API key is required. Use Authorization: Bearer YOUR_API_KEY",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return c.Status(401).JSON(fiber.Map{
				"error":   "invalid_auth_format",
				"message": "Authorization header must be in format: Bearer YOUR_API_KEY",
			})
		}

		key := strings.TrimSpace(parts[1])
		sum := sha256.Sum256([]byte(key))
		digest := hex.EncodeToString(sum[:])
		if subtle.ConstantTimeCompare([]byte(digest), []byte(keyHash)) != 1 {
			return c.Status(401).JSON(fiber.Map{
				"error":   "invalid_api_key",
				"message": "The provided API key is invalid or has been revoked",
			})
		}

		return c.Next()
	}
}
