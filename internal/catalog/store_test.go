package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"phonekart/internal/product"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSource struct {
	mock.Mock
}

func (m *MockSource) ListProducts(ctx context.Context) ([]product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]product.Product), args.Error(1)
}

func TestStore_RefetchPerMount(t *testing.T) {
	src := new(MockSource)
	src.On("ListProducts", mock.Anything).Return(phones(), nil).Twice()

	s := NewStore(src, 0)
	_, err := s.Load(context.Background())
	require.NoError(t, err)
	_, err = s.Load(context.Background())
	require.NoError(t, err)

	src.AssertNumberOfCalls(t, "ListProducts", 2)
}

func TestStore_TTL(t *testing.T) {
	src := new(MockSource)
	src.On("ListProducts", mock.Anything).Return(phones(), nil)

	now := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s := NewStore(src, time.Minute)
	s.now = func() time.Time { return now }

	first, err := s.Load(context.Background())
	require.NoError(t, err)

	now = now.Add(30 * time.Second)
	second, err := s.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	src.AssertNumberOfCalls(t, "ListProducts", 1)

	now = now.Add(time.Minute)
	_, err = s.Load(context.Background())
	require.NoError(t, err)
	src.AssertNumberOfCalls(t, "ListProducts", 2)

	s.Invalidate()
	_, ok := s.Last()
	assert.False(t, ok)
	_, err = s.Load(context.Background())
	require.NoError(t, err)
	src.AssertNumberOfCalls(t, "ListProducts", 3)
}

func TestStore_ReturnsCopies(t *testing.T) {
	src := new(MockSource)
	src.On("ListProducts", mock.Anything).Return(phones(), nil)

	s := NewStore(src, time.Hour)
	got, err := s.Load(context.Background())
	require.NoError(t, err)
	got[0].Name = "tampered"

	last, ok := s.Last()
	require.True(t, ok)
	assert.Equal(t, "Galaxy S23", last[0].Name)
}

func TestStore_Error(t *testing.T) {
	src := new(MockSource)
	boom := errors.New("connection refused")
	src.On("ListProducts", mock.Anything).Return(nil, boom)

	s := NewStore(src, time.Hour)
	_, err := s.Load(context.Background())
	assert.ErrorIs(t, err, boom)

	_, ok := s.Last()
	assert.False(t, ok, "failed loads are not cached")
}
