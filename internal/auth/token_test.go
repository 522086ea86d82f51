package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAccessToken(t *testing.T) {
	t.Run("Cookie Preferred", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: "cookie_token"})
		// Add header as well to ensure cookie takes precedence
		req.Header.Set("Authorization", "Bearer header_token")

		token := ExtractAccessToken(req)
		assert.Equal(t, "cookie_token", token)
	})

	t.Run("Header Fallback", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer header_token")

		token := ExtractAccessToken(req)
		assert.Equal(t, "header_token", token)
	})

	t.Run("Empty Cookie Falls Back to Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: ""})
		req.Header.Set("Authorization", "Bearer header_token")

		token := ExtractAccessToken(req)
		assert.Equal(t, "header_token", token)
	})

	t.Run("No Token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		token := ExtractAccessToken(req)
		assert.Empty(t, token)
	})

	t.Run("Malformed Header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic user:pass")

		token := ExtractAccessToken(req)
		assert.Empty(t, token)
	})
}

func TestIssueAndParse(t *testing.T) {
	t.Run("Round trip", func(t *testing.T) {
		token, err := Issue("secret", "ops@bagstore", "admin", time.Hour)
		require.NoError(t, err)

		claims, err := Parse("secret", token)
		require.NoError(t, err)
		assert.Equal(t, "ops@bagstore", claims.Subject)
		assert.Equal(t, "admin", claims.Role)
	})

	t.Run("Wrong secret", func(t *testing.T) {
		token, err := Issue("secret", "ops", "admin", time.Hour)
		require.NoError(t, err)

		_, err = Parse("other", token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		token, err := Issue("secret", "ops", "admin", -time.Minute)
		require.NoError(t, err)

		_, err = Parse("secret", token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Missing expiry rejected", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"sub": "ops", "role": "admin"}).
			SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = Parse("secret", token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Other algorithm rejected", func(t *testing.T) {
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{
			"sub": "ops", "role": "admin", "exp": time.Now().Add(time.Hour).Unix(),
		}).SignedString([]byte("secret"))
		require.NoError(t, err)

		_, err = Parse("secret", token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("No secret", func(t *testing.T) {
		_, err := Issue("", "ops", "admin", time.Hour)
		assert.ErrorIs(t, err, ErrMissingSecret)

		_, err = Parse("", "x")
		assert.ErrorIs(t, err, ErrMissingSecret)
	})
}
