package catalog

import (
	"fmt"

	"phonekart/internal/product"
	"phonekart/internal/utils"
)

// FilterKind names a removable active-filter chip.
type FilterKind string

const (
	FilterSearch   FilterKind = "search"
	FilterBrand    FilterKind = "brand"
	FilterPrice    FilterKind = "price"
	FilterRAM      FilterKind = "ram"
	FilterStorage  FilterKind = "storage"
	FilterColor    FilterKind = "color"
	FilterCamera   FilterKind = "camera"
	FilterBattery  FilterKind = "battery"
	FilterRating   FilterKind = "rating"
	FilterDiscount FilterKind = "discount"
)

// Chip is an active filter shown above the grid.
type Chip struct {
	Kind  FilterKind
	Value string
}

// View is a consistent snapshot of one catalog screen.
type View struct {
	Items      []product.Product
	Filtered   int
	Total      int
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	Loading    bool
	Err        error
	Facets     product.Facets
	Filter     Filter
	Chips      []Chip
}

// Browser owns the filter state and current page of a mounted catalog view.
// It is driven from a single event loop and is not safe for concurrent use.
type Browser struct {
	all       []product.Product
	filter    Filter
	bounds    PriceRange
	priceInit bool
	page      int

	gen     uint64
	mounted bool
	loading bool
	err     error
}

func NewBrowser() *Browser {
	return &Browser{page: 1}
}

// Mount starts a catalog view and returns the token its load must present.
// Sidebar state is per view; the search term is shared and survives.
func (b *Browser) Mount() uint64 {
	b.gen++
	b.mounted = true
	b.loading = true
	b.err = nil
	b.filter = Filter{Search: b.filter.Search}
	b.priceInit = false
	b.page = 1
	return b.gen
}

// Unmount drops the view; any outstanding load is ignored when it lands.
func (b *Browser) Unmount() {
	b.gen++
	b.mounted = false
	b.loading = false
}

func (b *Browser) Mounted() bool { return b.mounted }

// Loaded applies a fetch result. It returns false when the result belongs
// to an older mount and was dropped.
func (b *Browser) Loaded(gen uint64, products []product.Product, err error) bool {
	if !b.mounted || gen != b.gen {
		return false
	}
	b.loading = false
	if err != nil {
		b.err = err
		return true
	}

	b.err = nil
	b.all = products
	lo, hi := product.PriceBounds(products)
	b.bounds = PriceRange{Min: lo, Max: hi}
	if !b.priceInit && !b.filter.PriceRange.IsSet() && len(products) > 0 {
		b.filter.PriceRange = b.bounds
		b.priceInit = true
	}
	return true
}

// Products returns the loaded catalog.
func (b *Browser) Products() []product.Product {
	return b.all
}

func (b *Browser) Filter() Filter { return b.filter.Clone() }

func (b *Browser) Page() int { return b.page }

func (b *Browser) changed() {
	b.page = 1
}

func (b *Browser) SetSearch(q string) {
	b.filter.Search = q
	b.changed()
}

func (b *Browser) ToggleBrand(brand string) {
	b.filter.Brands = toggle(b.filter.Brands, brand)
	b.changed()
}

func (b *Browser) ToggleColor(color string) {
	b.filter.Colors = toggle(b.filter.Colors, color)
	b.changed()
}

func (b *Browser) ToggleCamera(camera string) {
	b.filter.Cameras = toggle(b.filter.Cameras, camera)
	b.changed()
}

func (b *Browser) ToggleBattery(battery string) {
	b.filter.Batteries = toggle(b.filter.Batteries, battery)
	b.changed()
}

// ToggleRAM selects a RAM size, or clears it when already selected.
func (b *Browser) ToggleRAM(gb int) {
	b.filter.RAM = toggleInt(b.filter.RAM, gb)
	b.changed()
}

func (b *Browser) ToggleStorage(gb int) {
	b.filter.Storage = toggleInt(b.filter.Storage, gb)
	b.changed()
}

// SetPriceMax is the slider: [catalog min, max].
func (b *Browser) SetPriceMax(hi float64) error {
	return b.SetPriceRange(b.bounds.Min, hi)
}

func (b *Browser) SetPriceRange(lo, hi float64) error {
	if lo > hi {
		return ErrInvalidPriceRange
	}
	b.filter.PriceRange = PriceRange{Min: lo, Max: hi}
	b.changed()
	return nil
}

// SetMinRating clamps to [0, 5].
func (b *Browser) SetMinRating(r float64) {
	b.filter.MinRating = max(0, min(r, product.MaxStars))
	b.changed()
}

// SetMinDiscount clamps to [0, 100].
func (b *Browser) SetMinDiscount(pct int) {
	b.filter.MinDiscount = max(0, min(pct, 100))
	b.changed()
}

// Reset clears every sidebar filter and puts the price range back to the
// catalog bounds. The search term belongs to the navbar and is kept.
func (b *Browser) Reset() {
	b.filter = Filter{Search: b.filter.Search, PriceRange: b.bounds}
	b.changed()
}

// ClearFilter removes one active chip. The page only resets when a filter
// was actually active.
func (b *Browser) ClearFilter(kind FilterKind, value string) error {
	f := &b.filter
	var cleared bool
	switch kind {
	case FilterSearch:
		cleared = f.Search != ""
		f.Search = ""
	case FilterBrand:
		f.Brands, cleared = drop(f.Brands, value)
	case FilterPrice:
		cleared = f.PriceRange != b.bounds
		f.PriceRange = b.bounds
	case FilterRAM:
		cleared = f.RAM != nil
		f.RAM = nil
	case FilterStorage:
		cleared = f.Storage != nil
		f.Storage = nil
	case FilterColor:
		f.Colors, cleared = drop(f.Colors, value)
	case FilterCamera:
		f.Cameras, cleared = drop(f.Cameras, value)
	case FilterBattery:
		f.Batteries, cleared = drop(f.Batteries, value)
	case FilterRating:
		cleared = f.MinRating != 0
		f.MinRating = 0
	case FilterDiscount:
		cleared = f.MinDiscount != 0
		f.MinDiscount = 0
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFilter, kind)
	}
	if cleared {
		b.changed()
	}
	return nil
}

func drop(values []string, v string) ([]string, bool) {
	out := without(values, v)
	return out, len(out) != len(values)
}

func (b *Browser) totalPages() int {
	return TotalPages(len(Apply(b.all, b.filter)))
}

// GoTo moves to page n. Out-of-range pages leave the state unchanged.
func (b *Browser) GoTo(n int) error {
	total := b.totalPages()
	if n < 1 || n > total {
		return fmt.Errorf("%w: %d of %d", ErrPageOutOfRange, n, total)
	}
	b.page = n
	return nil
}

// Next advances one page; it does nothing on the last page.
func (b *Browser) Next() bool {
	if b.page >= b.totalPages() {
		return false
	}
	b.page++
	return true
}

// Prev goes back one page; it does nothing on the first page.
func (b *Browser) Prev() bool {
	if b.page <= 1 {
		return false
	}
	b.page--
	return true
}

func (b *Browser) View() View {
	filtered := Apply(b.all, b.filter)
	total := TotalPages(len(filtered))

	return View{
		Items:      Paginate(filtered, b.page),
		Filtered:   len(filtered),
		Total:      len(b.all),
		Page:       b.page,
		TotalPages: total,
		HasPrev:    b.page > 1,
		HasNext:    b.page < total,
		Loading:    b.loading,
		Err:        b.err,
		Facets:     product.BuildFacets(b.all),
		Filter:     b.filter.Clone(),
		Chips:      b.chips(),
	}
}

func (b *Browser) chips() []Chip {
	var out []Chip
	f := b.filter
	if f.Search != "" {
		out = append(out, Chip{Kind: FilterSearch, Value: f.Search})
	}
	for _, v := range f.Brands {
		out = append(out, Chip{Kind: FilterBrand, Value: v})
	}
	if f.PriceRange.IsSet() && f.PriceRange != b.bounds {
		out = append(out, Chip{Kind: FilterPrice, Value: fmt.Sprintf("%.0f-%.0f", f.PriceRange.Min, f.PriceRange.Max)})
	}
	if f.RAM != nil {
		out = append(out, Chip{Kind: FilterRAM, Value: fmt.Sprintf("%d GB", *f.RAM)})
	}
	if f.Storage != nil {
		out = append(out, Chip{Kind: FilterStorage, Value: fmt.Sprintf("%d GB", *f.Storage)})
	}
	for _, v := range f.Colors {
		out = append(out, Chip{Kind: FilterColor, Value: v})
	}
	for _, v := range f.Cameras {
		out = append(out, Chip{Kind: FilterCamera, Value: v})
	}
	for _, v := range f.Batteries {
		out = append(out, Chip{Kind: FilterBattery, Value: v})
	}
	if f.MinRating > 0 {
		out = append(out, Chip{Kind: FilterRating, Value: fmt.Sprintf("%g+", f.MinRating)})
	}
	if f.MinDiscount > 0 {
		out = append(out, Chip{Kind: FilterDiscount, Value: fmt.Sprintf("%d%%+", f.MinDiscount)})
	}
	return out
}

func toggleInt(cur *int, v int) *int {
	if cur != nil && *cur == v {
		return nil
	}
	return utils.IntPtr(v)
}
