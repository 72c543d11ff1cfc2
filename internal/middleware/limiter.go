package middleware

import (
	"net/http"
	"strings"

	"phonekart/internal/logger"
	"phonekart/internal/metrics"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Rate Limit Tiers
const (
	TierStrict  = "strict"
	TierGeneral = "general"

	// Login / register / password / order and admin writes
	defaultLimitStrict = rate.Limit(2)
	burstStrict        = 5

	// Catalog and order reads
	defaultLimitGeneral = rate.Limit(10)
	burstGeneral        = 20
)

// Limiter throttles outbound calls per tier so a user hammering a button
// cannot flood the backend.
type Limiter struct {
	strict  *rate.Limiter
	general *rate.Limiter
	stats   *metrics.BackendStats
}

// NewLimiter builds the tier limiters; non-positive rates use the defaults.
func NewLimiter(strictRPS, generalRPS float64, stats *metrics.BackendStats) *Limiter {
	strict := defaultLimitStrict
	if strictRPS > 0 {
		strict = rate.Limit(strictRPS)
	}
	general := defaultLimitGeneral
	if generalRPS > 0 {
		general = rate.Limit(generalRPS)
	}

	return &Limiter{
		strict:  rate.NewLimiter(strict, burstStrict),
		general: rate.NewLimiter(general, burstGeneral),
		stats:   stats,
	}
}

func (l *Limiter) limiterFor(tier string) *rate.Limiter {
	if tier == TierStrict {
		return l.strict
	}
	return l.general
}

// RateLimit waits for a token of the request's tier before sending it.
// A cancelled context aborts the wait.
func RateLimit(l *Limiter) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripFunc(func(r *http.Request) (*http.Response, error) {
			tier := ResolveTier(r)
			lim := l.limiterFor(tier)

			if !lim.Allow() {
				if l.stats != nil {
					l.stats.Throttled.Inc()
				}
				logger.FromCtx(r.Context()).Debug("backend call throttled",
					zap.String("tier", tier),
					zap.String("path", r.URL.Path),
				)
				if err := lim.Wait(r.Context()); err != nil {
					return nil, err
				}
			}

			return next.RoundTrip(r)
		})
	}
}

// ResolveTier determines which rate limit policy applies to the request.
func ResolveTier(r *http.Request) string {
	path := r.URL.Path

	// 1. Credentials
	if strings.HasSuffix(path, "/users/login") ||
		strings.HasSuffix(path, "/users/register") ||
		strings.HasSuffix(path, "/users/password") ||
		strings.HasSuffix(path, "/users/forgot-password") {
		return TierStrict
	}

	// 2. Irreversible writes: checkout and admin mutations
	if r.Method != http.MethodGet {
		if strings.HasSuffix(path, "/order") || strings.Contains(path, "/admin/") {
			return TierStrict
		}
	}

	// 3. General (Default)
	return TierGeneral
}
