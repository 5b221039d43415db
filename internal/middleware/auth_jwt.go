package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type Claims struct {
	UID string `json:"uid,omitempty"`
	jwt.RegisteredClaims
}

// JWTUidOnly parses a Bearer token when present and stores the uid in
// Locals("user_id"). Requests without a token pass through anonymously;
// RequireAuth is the gate on protected routes.
func JWTUidOnly(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get("Authorization")
		if auth == "" || !strings.HasPrefix(strings.ToLower(auth), "bearer ") {
			return c.Next()
		}

		tokenStr := strings.TrimSpace(auth[7:])
		var claims Claims

		token, err := jwt.ParseWithClaims(
			tokenStr,
			&claims,
			func(t *jwt.Token) (any, error) {
				if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, fiber.NewError(fiber.StatusUnauthorized, "unsupported alg")
				}
				return []byte(secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		)
		if err != nil || !token.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		uid := claims.UID
		if uid == "" {
			uid = claims.Subject
		}
		if uid == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing uid")
		}

		c.Locals("user_id", uid)
		return c.Next()
	}
}

// RequireAuth rejects requests that did not carry a valid token.
func RequireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := UIDObjectID(c); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "authentication required")
		}
		return c.Next()
	}
}

// UIDObjectID returns the authenticated user's id from request locals.
func UIDObjectID(c *fiber.Ctx) (bson.ObjectID, error) {
	v := c.Locals("user_id")
	s, ok := v.(string)
	if !ok || s == "" {
		return bson.NilObjectID, fiber.NewError(fiber.StatusUnauthorized, "no user in context")
	}
	oid, err := bson.ObjectIDFromHex(s)
	if err != nil {
		return bson.NilObjectID, fiber.NewError(fiber.StatusUnauthorized, "invalid user id")
	}
	return oid, nil
}
