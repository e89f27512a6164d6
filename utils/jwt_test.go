package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParse(t *testing.T) {
	tok, err := GenerateJWT("a@example.com", "s3cret", time.Hour)
	require.NoError(t, err)

	email, err := ParseEmail(tok, "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "a@example.com", email)

	_, err = ParseEmail(tok, "other")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestParseEmailRejects(t *testing.T) {
	t.Run("non-positive ttl uses default", func(t *testing.T) {
		tok, err := GenerateJWT("a@example.com", "s3cret", -time.Minute)
		require.NoError(t, err)
		_, err = ParseEmail(tok, "s3cret")
		assert.NoError(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
			"email": "a@example.com",
			"exp":   time.Now().Add(-time.Minute).Unix(),
		})
		s, err := expired.SignedString([]byte("s3cret"))
		require.NoError(t, err)
		_, err = ParseEmail(s, "s3cret")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("missing email", func(t *testing.T) {
		tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "42"})
		s, err := tok.SignedString([]byte("s3cret"))
		require.NoError(t, err)
		_, err = ParseEmail(s, "s3cret")
		assert.ErrorIs(t, err, ErrEmailMissing)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseEmail("not-a-token", "s3cret")
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("no secret", func(t *testing.T) {
		_, err := GenerateJWT("a@example.com", "", time.Hour)
		assert.Error(t, err)
	})
}
