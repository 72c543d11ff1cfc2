package middleware

import (
	"net/http"

	"phonekart/internal/logger"
	"phonekart/internal/metrics"

	"go.uber.org/zap"
)

// Logging logs every backend call with its outcome and feeds stats.
func Logging(stats *metrics.BackendStats) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripFunc(func(r *http.Request) (*http.Response, error) {
			timer := metrics.StartTimer()
			log := logger.FromCtx(r.Context())

			resp, err := next.RoundTrip(r)
			duration := timer.Duration()

			failed := err != nil || resp.StatusCode >= http.StatusBadRequest
			if stats != nil {
				stats.Observe(duration, failed)
			}

			if err != nil {
				log.Warn("backend call failed",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Duration("duration", duration),
					zap.Error(err),
				)
				return nil, err
			}

			log.Info("backend call",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", resp.StatusCode),
				zap.Duration("duration", duration),
			)
			return resp, nil
		})
	}
}
