package middleware

import (
	"net/http"

	"phonekart/internal/auth"
	"phonekart/internal/logger"
)

// TokenSource yields the current session token, or "" when signed out.
type TokenSource interface {
	Token() string
}

// RequestID stamps every outbound call with X-Request-ID, reusing the id
// already carried by the context of the user action.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripFunc(func(r *http.Request) (*http.Response, error) {
			ctx, reqID := logger.EnsureRequestID(r.Context())
			r = r.Clone(ctx)
			r.Header.Set("X-Request-ID", reqID)
			return next.RoundTrip(r)
		})
	}
}

// Auth attaches the session token as a bearer credential on every request.
// The token is read per request so sign-in and sign-out apply immediately.
func Auth(ts TokenSource) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripFunc(func(r *http.Request) (*http.Response, error) {
			if ts == nil {
				return next.RoundTrip(r)
			}
			token := ts.Token()
			if token == "" {
				return next.RoundTrip(r)
			}
			r = r.Clone(r.Context())
			auth.SetBearer(r, token)
			return next.RoundTrip(r)
		})
	}
}
