package catalog

import (
	"slices"
	"strings"

	"phonekart/internal/product"
	"phonekart/internal/utils"
)

// PriceRange is inclusive on both ends. The zero value means unset.
type PriceRange struct {
	Min float64
	Max float64
}

func (r PriceRange) IsSet() bool {
	return r.Min != 0 || r.Max != 0
}

func (r PriceRange) Contains(price float64) bool {
	return price >= r.Min && price <= r.Max
}

// Filter is the sidebar and search state. Every zero field means
// "no constraint", so the zero Filter matches the whole catalog.
type Filter struct {
	Search      string
	Brands      []string
	PriceRange  PriceRange
	RAM         *int
	Storage     *int
	Colors      []string
	Cameras     []string
	Batteries   []string
	MinRating   float64
	MinDiscount int
}

// Clone returns a deep copy.
func (f Filter) Clone() Filter {
	out := f
	out.Brands = slices.Clone(f.Brands)
	out.Colors = slices.Clone(f.Colors)
	out.Cameras = slices.Clone(f.Cameras)
	out.Batteries = slices.Clone(f.Batteries)
	if f.RAM != nil {
		out.RAM = utils.IntPtr(*f.RAM)
	}
	if f.Storage != nil {
		out.Storage = utils.IntPtr(*f.Storage)
	}
	return out
}

// Matches applies every active predicate: AND across fields, OR within a
// multi-select field.
func (f Filter) Matches(p product.Product) bool {
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) &&
			!strings.Contains(strings.ToLower(p.Color), q) {
			return false
		}
	}
	if len(f.Brands) > 0 && !slices.Contains(f.Brands, p.Brand) {
		return false
	}
	if f.PriceRange.IsSet() && !f.PriceRange.Contains(p.Price) {
		return false
	}
	if f.RAM != nil && p.RAM != *f.RAM {
		return false
	}
	if f.Storage != nil && p.Storage != *f.Storage {
		return false
	}
	if len(f.Colors) > 0 && !slices.Contains(f.Colors, p.Color) {
		return false
	}
	if product.Discount(p) < f.MinDiscount {
		return false
	}
	if product.Rating(p) < f.MinRating {
		return false
	}
	// A phone without the attribute never matches an active selection.
	if len(f.Cameras) > 0 && (p.Camera == "" || !slices.Contains(f.Cameras, p.Camera)) {
		return false
	}
	if len(f.Batteries) > 0 && (p.Battery == "" || !slices.Contains(f.Batteries, p.Battery)) {
		return false
	}
	return true
}

// Apply returns the products matching f, in catalog order. Inputs are not
// modified.
func Apply(products []product.Product, f Filter) []product.Product {
	out := make([]product.Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

func toggle(set []string, v string) []string {
	if i := slices.Index(set, v); i >= 0 {
		return slices.Delete(slices.Clone(set), i, i+1)
	}
	return append(slices.Clone(set), v)
}

func without(set []string, v string) []string {
	if i := slices.Index(set, v); i >= 0 {
		return slices.Delete(slices.Clone(set), i, i+1)
	}
	return set
}
