package middleware

import (
	"context"
	"strings"

	"wallboard/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// AuthRequired returns middleware enforcing authentication for protected
// routes. The caller identity is the token's subject claim, treated as an
// opaque value: it is stored in locals and the request context for the
// handlers and the logger, and is only ever compared for equality.
func AuthRequired(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewForbiddenError("Authorization header required"))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewForbiddenError("Invalid authorization header format"))
		}

		token, err := jwt.Parse(parts[1], func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewForbiddenError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewForbiddenError("Invalid token claims"))
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewForbiddenError("Invalid token structure - missing subject"))
		}

		identity := models.Identity(sub)
		c.Locals("identity", identity)
		ctx := context.WithValue(c.UserContext(), IdentityKey, identity)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// CallerIdentity extracts the authenticated identity set by AuthRequired.
func CallerIdentity(c *fiber.Ctx) models.Identity {
	if id, ok := c.Locals("identity").(models.Identity); ok {
		return id
	}
	return models.Anonymous
}
