package catalog

import (
	"context"
	"slices"
	"sync"
	"time"

	"phonekart/internal/logger"
	"phonekart/internal/product"

	"go.uber.org/zap"
)

// Source fetches the full catalog from the backend.
type Source interface {
	ListProducts(ctx context.Context) ([]product.Product, error)
}

// Store fronts the catalog source. With a zero TTL every Load refetches,
// one fetch per mounted view. A positive TTL reuses the last snapshot until
// it expires or Invalidate is called.
type Store struct {
	src Source
	ttl time.Duration
	now func() time.Time

	mu        sync.RWMutex
	snapshot  []product.Product
	fetchedAt time.Time
}

func NewStore(src Source, ttl time.Duration) *Store {
	return &Store{src: src, ttl: ttl, now: time.Now}
}

// Load returns a copy of the catalog, from cache when fresh.
func (s *Store) Load(ctx context.Context) ([]product.Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "catalog"),
		zap.String("method", "Load"),
	)

	if cached, ok := s.fresh(); ok {
		log.Debug("catalog served from cache", zap.Int("count", len(cached)))
		return cached, nil
	}

	start := time.Now()
	products, err := s.src.ListProducts(ctx)
	if err != nil {
		log.Error("failed to load catalog",
			zap.Error(err),
			zap.Duration("duration", time.Since(start)),
		)
		return nil, err
	}

	s.mu.Lock()
	s.snapshot = slices.Clone(products)
	s.fetchedAt = s.now()
	s.mu.Unlock()

	log.Info("catalog loaded",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)
	return slices.Clone(products), nil
}

func (s *Store) fresh() ([]product.Product, bool) {
	if s.ttl <= 0 {
		return nil, false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot != nil && s.now().Sub(s.fetchedAt) < s.ttl {
		return slices.Clone(s.snapshot), true
	}
	return nil, false
}

// Last returns the most recent snapshot regardless of age.
func (s *Store) Last() ([]product.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, false
	}
	return slices.Clone(s.snapshot), true
}

// Invalidate drops the snapshot; call after the catalog changes.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.snapshot = nil
	s.fetchedAt = time.Time{}
	s.mu.Unlock()
}
