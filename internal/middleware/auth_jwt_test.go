package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

const testSecret = "test-secret"

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(JWTUidOnly(testSecret))
	app.Get("/open", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/guarded", RequireAuth(), func(c *fiber.Ctx) error {
		uid, _ := UIDObjectID(c)
		return c.SendString(uid.Hex())
	})
	return app
}

func signToken(t *testing.T, secret string, uid string, exp time.Time) string {
	t.Helper()
	claims := Claims{
		UID: uid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestAnonymousPassesOpenRoute(t *testing.T) {
	app := newApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/open", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestGuardedRejectsAnonymous(t *testing.T) {
	app := newApp()
	resp, err := app.Test(httptest.NewRequest("GET", "/guarded", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestValidTokenSetsUID(t *testing.T) {
	app := newApp()
	uid := bson.NewObjectID().Hex()
	req := httptest.NewRequest("GET", "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, uid, time.Now().Add(time.Hour)))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestExpiredTokenRejected(t *testing.T) {
	app := newApp()
	uid := bson.NewObjectID().Hex()
	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, uid, time.Now().Add(-time.Hour)))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestWrongSecretRejected(t *testing.T) {
	app := newApp()
	uid := bson.NewObjectID().Hex()
	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", uid, time.Now().Add(time.Hour)))

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestMalformedTokenRejected(t *testing.T) {
	app := newApp()
	req := httptest.NewRequest("GET", "/open", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
