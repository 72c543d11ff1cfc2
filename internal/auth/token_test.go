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

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("server-side-secret"))
	require.NoError(t, err)
	return s
}

func TestParseUnverified(t *testing.T) {
	t.Run("Reads role and id without the key", func(t *testing.T) {
		exp := time.Now().Add(time.Hour).Unix()
		token := signToken(t, jwt.MapClaims{"id": "65cf3b1a2b3c4d5e6f708192", "role": "admin", "exp": exp})

		claims, err := ParseUnverified(token)
		require.NoError(t, err)
		assert.Equal(t, "admin", claims.Role)
		assert.Equal(t, "65cf3b1a2b3c4d5e6f708192", claims.AccountID())
		assert.False(t, claims.Expired(time.Now()))
	})

	t.Run("Subject fallbacks", func(t *testing.T) {
		claims, err := ParseUnverified(signToken(t, jwt.MapClaims{"user_id": "u-1"}))
		require.NoError(t, err)
		assert.Equal(t, "u-1", claims.AccountID())

		claims, err = ParseUnverified(signToken(t, jwt.MapClaims{"sub": "u-2"}))
		require.NoError(t, err)
		assert.Equal(t, "u-2", claims.AccountID())
	})

	t.Run("Expired token still decodes", func(t *testing.T) {
		exp := time.Now().Add(-time.Hour).Unix()
		claims, err := ParseUnverified(signToken(t, jwt.MapClaims{"role": "user", "exp": exp}))
		require.NoError(t, err)
		assert.True(t, claims.Expired(time.Now()))
	})

	t.Run("Garbage", func(t *testing.T) {
		_, err := ParseUnverified("not-a-jwt")
		assert.ErrorIs(t, err, ErrMalformedToken)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := ParseUnverified("")
		assert.ErrorIs(t, err, ErrMalformedToken)
	})
}

func TestSetBearer(t *testing.T) {
	t.Run("Adds header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		SetBearer(req, "abc")
		assert.Equal(t, "Bearer abc", req.Header.Get("Authorization"))
		assert.Equal(t, "abc", BearerToken(req.Header.Get("Authorization")))
	})

	t.Run("Empty token stays anonymous", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		SetBearer(req, "")
		assert.Empty(t, req.Header.Get("Authorization"))
	})

	t.Run("Malformed header", func(t *testing.T) {
		assert.Empty(t, BearerToken("Basic user:pass"))
	})
}
