package catalog

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedBrowser(t *testing.T, n int) *Browser {
	t.Helper()
	b := NewBrowser()
	gen := b.Mount()
	require.True(t, b.Loaded(gen, manyPhones(n), nil))
	return b
}

func TestBrowser_LazyPriceRange(t *testing.T) {
	b := NewBrowser()
	gen := b.Mount()

	v := b.View()
	assert.True(t, v.Loading)
	assert.False(t, v.Filter.PriceRange.IsSet())

	require.True(t, b.Loaded(gen, phones(), nil))
	v = b.View()
	assert.False(t, v.Loading)
	assert.Equal(t, PriceRange{Min: 12000, Max: 69999}, v.Filter.PriceRange)
	assert.Equal(t, 5, v.Filtered)
	assert.Empty(t, v.Chips, "initial bounds are not an active filter")

	// a later narrowed range is never overwritten by data
	require.NoError(t, b.SetPriceMax(20000))
	assert.Equal(t, PriceRange{Min: 12000, Max: 20000}, b.Filter().PriceRange)
	assert.Equal(t, []string{"p2", "p4"}, ids(b.View().Items))
}

func TestBrowser_ResetsPageOnEveryFilterChange(t *testing.T) {
	setters := map[string]func(b *Browser){
		"search":   func(b *Browser) { b.SetSearch("phone") },
		"brand":    func(b *Browser) { b.ToggleBrand("Acme") },
		"ram":      func(b *Browser) { b.ToggleRAM(8) },
		"storage":  func(b *Browser) { b.ToggleStorage(128) },
		"color":    func(b *Browser) { b.ToggleColor("Black") },
		"camera":   func(b *Browser) { b.ToggleCamera("50MP") },
		"battery":  func(b *Browser) { b.ToggleBattery("5000mAh") },
		"rating":   func(b *Browser) { b.SetMinRating(1) },
		"discount": func(b *Browser) { b.SetMinDiscount(5) },
		"price":    func(b *Browser) { _ = b.SetPriceRange(10000, 50000) },
		"reset":    func(b *Browser) { b.Reset() },
	}

	for name, set := range setters {
		t.Run(name, func(t *testing.T) {
			b := loadedBrowser(t, 30)
			require.NoError(t, b.GoTo(3))
			set(b)
			assert.Equal(t, 1, b.Page())
		})
	}
}

func TestBrowser_Paging(t *testing.T) {
	b := loadedBrowser(t, 15)

	v := b.View()
	assert.Equal(t, 2, v.TotalPages)
	assert.Len(t, v.Items, 12)
	assert.False(t, v.HasPrev)
	assert.True(t, v.HasNext)

	assert.False(t, b.Prev(), "prev is disabled on the first page")
	assert.True(t, b.Next())
	v = b.View()
	assert.Len(t, v.Items, 3)
	assert.True(t, v.HasPrev)
	assert.False(t, v.HasNext)
	assert.False(t, b.Next(), "next is disabled on the last page")

	err := b.GoTo(3)
	assert.ErrorIs(t, err, ErrPageOutOfRange)
	assert.Equal(t, 2, b.Page(), "rejected page leaves state unchanged")

	assert.ErrorIs(t, b.GoTo(0), ErrPageOutOfRange)
	require.NoError(t, b.GoTo(1))
}

func TestBrowser_EmptyResult(t *testing.T) {
	b := loadedBrowser(t, 15)
	b.SetSearch("no such phone")

	v := b.View()
	assert.Equal(t, 0, v.Filtered)
	assert.Equal(t, 0, v.TotalPages)
	assert.Empty(t, v.Items)
	assert.ErrorIs(t, b.GoTo(1), ErrPageOutOfRange)
}

func TestBrowser_Toggles(t *testing.T) {
	b := NewBrowser()
	b.ToggleBrand("Apple")
	b.ToggleBrand("Samsung")
	b.ToggleBrand("Apple")
	assert.Equal(t, []string{"Samsung"}, b.Filter().Brands)

	b.ToggleRAM(8)
	require.NotNil(t, b.Filter().RAM)
	b.ToggleRAM(8)
	assert.Nil(t, b.Filter().RAM, "selecting the same RAM again unselects it")

	b.ToggleStorage(128)
	b.ToggleStorage(256)
	assert.Equal(t, 256, *b.Filter().Storage)

	b.SetMinRating(9)
	assert.Equal(t, 5.0, b.Filter().MinRating)
	b.SetMinDiscount(-4)
	assert.Equal(t, 0, b.Filter().MinDiscount)

	assert.ErrorIs(t, b.SetPriceRange(500, 100), ErrInvalidPriceRange)
}

func TestBrowser_ResetAndClearFilter(t *testing.T) {
	b := NewBrowser()
	gen := b.Mount()
	require.True(t, b.Loaded(gen, phones(), nil))

	b.ToggleCamera("50MP")
	b.ToggleCamera("48MP")
	b.ToggleBattery("5000mAh")
	b.SetMinRating(4)
	require.NoError(t, b.SetPriceMax(30000))

	require.NoError(t, b.ClearFilter(FilterCamera, "50MP"))
	assert.Equal(t, []string{"48MP"}, b.Filter().Cameras)
	require.NoError(t, b.ClearFilter(FilterRating, ""))
	assert.Zero(t, b.Filter().MinRating)
	require.NoError(t, b.ClearFilter(FilterBattery, "5000mAh"))
	assert.Empty(t, b.Filter().Batteries)

	err := b.ClearFilter("shape", "round")
	assert.ErrorIs(t, err, ErrUnknownFilter)

	b.Reset()
	f := b.Filter()
	assert.Empty(t, f.Cameras)
	assert.Equal(t, PriceRange{Min: 12000, Max: 69999}, f.PriceRange)
	assert.Equal(t, 5, b.View().Filtered)

	b.SetSearch("galaxy")
	b.ToggleBattery("5000mAh")
	b.Reset()
	assert.Equal(t, "galaxy", b.Filter().Search, "the navbar search outlives a sidebar reset")
	assert.Empty(t, b.Filter().Batteries)
}

func TestBrowser_ClearInactiveFilterKeepsPage(t *testing.T) {
	b := loadedBrowser(t, 30)
	b.ToggleBrand("Acme")
	require.NoError(t, b.GoTo(2))

	require.NoError(t, b.ClearFilter(FilterBrand, "Nokia"))
	require.NoError(t, b.ClearFilter(FilterRating, ""))
	require.NoError(t, b.ClearFilter(FilterRAM, ""))
	require.NoError(t, b.ClearFilter(FilterPrice, ""))
	require.NoError(t, b.ClearFilter(FilterSearch, ""))
	assert.Equal(t, 2, b.Page())
	assert.Equal(t, []string{"Acme"}, b.Filter().Brands)

	require.NoError(t, b.ClearFilter(FilterBrand, "Acme"))
	assert.Equal(t, 1, b.Page())
	assert.Empty(t, b.Filter().Brands)
}

func TestBrowser_Chips(t *testing.T) {
	b := NewBrowser()
	gen := b.Mount()
	require.True(t, b.Loaded(gen, phones(), nil))

	b.ToggleCamera("50MP")
	b.SetMinRating(4)

	assert.Equal(t, []Chip{
		{Kind: FilterCamera, Value: "50MP"},
		{Kind: FilterRating, Value: "4+"},
	}, b.View().Chips)
}

func TestBrowser_LateResponses(t *testing.T) {
	t.Run("Dropped after unmount", func(t *testing.T) {
		b := NewBrowser()
		gen := b.Mount()
		b.Unmount()

		assert.False(t, b.Loaded(gen, phones(), nil))
		assert.Empty(t, b.Products())
	})

	t.Run("Dropped after remount", func(t *testing.T) {
		b := NewBrowser()
		stale := b.Mount()
		fresh := b.Mount()

		assert.False(t, b.Loaded(stale, phones(), nil))
		assert.True(t, b.Loaded(fresh, phones()[:2], nil))
		assert.Len(t, b.Products(), 2)
	})

	t.Run("Error ends loading", func(t *testing.T) {
		b := NewBrowser()
		gen := b.Mount()
		boom := errors.New("backend down")
		require.True(t, b.Loaded(gen, nil, boom))

		v := b.View()
		assert.False(t, v.Loading)
		assert.ErrorIs(t, v.Err, boom)
	})

	t.Run("Search survives remount", func(t *testing.T) {
		b := NewBrowser()
		b.SetSearch("redmi")
		b.ToggleBrand("Xiaomi")
		b.Mount()

		assert.Equal(t, "redmi", b.Filter().Search)
		assert.Empty(t, b.Filter().Brands)
	})
}
