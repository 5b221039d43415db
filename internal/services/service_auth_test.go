package services

import (
	"testing"
	"time"

	"inkwell-backend/dto"
	"inkwell-backend/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestIssueTokenRoundTrip(t *testing.T) {
	secret := "s3cret"
	uid := bson.NewObjectID().Hex()
	now := time.Now()

	tok, err := IssueToken(secret, uid, now)
	require.NoError(t, err)

	var claims middleware.Claims
	parsed, err := jwt.ParseWithClaims(tok, &claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	require.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, uid, claims.UID)
	assert.Equal(t, uid, claims.Subject)
	assert.WithinDuration(t, now.Add(72*time.Hour), claims.ExpiresAt.Time, time.Second)
}

func TestValidateSignup(t *testing.T) {
	ok := dto.SignupRequest{Name: "Ada", Email: "ada@example.com", Password: "secret1"}
	assert.NoError(t, validateSignup(ok))

	bad := []dto.SignupRequest{
		{Name: "", Email: "ada@example.com", Password: "secret1"},
		{Name: "Ada", Email: "not-an-email", Password: "secret1"},
		{Name: "Ada", Email: "ada@example.com", Password: "short"},
	}
	for _, req := range bad {
		assert.Error(t, validateSignup(req), "%+v", req)
	}
}

func TestBuildTitleBody(t *testing.T) {
	title, body, err := BuildTitleBody(NotiPostLiked, NotiParams{ActorName: "Ada", PostTitle: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, "Your story has a new like", title)
	assert.Contains(t, body, "Ada")
	assert.Contains(t, body, "Hello")

	_, _, err = BuildTitleBody(NotiPostLiked, NotiParams{ActorName: "Ada"})
	assert.Error(t, err, "post-liked needs a post title")

	_, _, err = BuildTitleBody(NotiNewFollower, NotiParams{})
	assert.Error(t, err, "actor name is always required")

	_, _, err = BuildTitleBody("BOGUS", NotiParams{ActorName: "Ada"})
	assert.Error(t, err)
}
