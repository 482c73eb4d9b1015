package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/potluck/recipebook/internal/httperr"
)

// TokenVerifier is the slice of AuthService the middleware needs. Kept
// small so tests can fake it.
type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

const userIDKey = "user_id"

// RequireAuth validates the session token and stores the resolved user
// id on the request context. The header scheme is exactly "bearer"
// (lowercase), two segments.
func RequireAuth(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Authorization in header is missed!"})
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "bearer" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Token format in header is incorrect!"})
		}

		userID, err := verifier.VerifyToken(c.Context(), parts[1])
		if err != nil {
			e := httperr.From(err)
			return c.Status(e.Status).JSON(e)
		}

		c.Locals(userIDKey, userID)
		return c.Next()
	}
}

// UserID returns the user id attached by RequireAuth.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(userIDKey).(string)
	return id
}
