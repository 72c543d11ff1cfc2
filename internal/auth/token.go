package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrMalformedToken = errors.New("malformed access token")

// Claims is the subset of the backend token payload the client reads.
// Backends differ on the id claim name, so both are accepted.
type Claims struct {
	ID      string `json:"id,omitempty"`
	UserID  string `json:"user_id,omitempty"`
	Role    string `json:"role,omitempty"`
	IsAdmin bool   `json:"isAdmin,omitempty"`
	jwt.RegisteredClaims
}

// AccountID returns the user id carried by the token, whichever claim holds it.
func (c *Claims) AccountID() string {
	switch {
	case c.ID != "":
		return c.ID
	case c.UserID != "":
		return c.UserID
	default:
		return c.RegisteredClaims.Subject
	}
}

// Expired reports whether the exp claim is in the past. A token without
// exp never expires from the client's point of view.
func (c *Claims) Expired(now time.Time) bool {
	return c.ExpiresAt != nil && now.After(c.ExpiresAt.Time)
}

// ParseUnverified decodes the token payload without checking the
// signature. The client has no signing key; the result is only a hint for
// what to render and the backend stays the authority on every request.
func ParseUnverified(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrMalformedToken
	}

	claims := &Claims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	return claims, nil
}

// SetBearer attaches the token as a bearer credential. Empty tokens leave
// the request anonymous.
func SetBearer(r *http.Request, token string) {
	if token == "" {
		return
	}
	r.Header.Set("Authorization", "Bearer "+token)
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}
