package product

import (
	"sort"
)

// Facets are the sidebar options derived from the loaded catalog.
type Facets struct {
	Brands    []string
	RAM       []int
	Storage   []int
	Colors    []string
	Cameras   []string
	Batteries []string
	PriceMin  float64
	PriceMax  float64
}

func BuildFacets(products []Product) Facets {
	f := Facets{}
	if len(products) == 0 {
		return f
	}

	brands := map[string]struct{}{}
	rams := map[int]struct{}{}
	storages := map[int]struct{}{}
	colors := map[string]struct{}{}
	cameras := map[string]struct{}{}
	batteries := map[string]struct{}{}

	f.PriceMin, f.PriceMax = products[0].Price, products[0].Price
	for _, p := range products {
		brands[p.Brand] = struct{}{}
		rams[p.RAM] = struct{}{}
		storages[p.Storage] = struct{}{}
		colors[p.Color] = struct{}{}
		if p.Camera != "" {
			cameras[p.Camera] = struct{}{}
		}
		if p.Battery != "" {
			batteries[p.Battery] = struct{}{}
		}
		if p.Price < f.PriceMin {
			f.PriceMin = p.Price
		}
		if p.Price > f.PriceMax {
			f.PriceMax = p.Price
		}
	}

	f.Brands = sortedStrings(brands)
	f.RAM = sortedInts(rams)
	f.Storage = sortedInts(storages)
	f.Colors = sortedStrings(colors)
	f.Cameras = sortedStrings(cameras)
	f.Batteries = sortedStrings(batteries)
	return f
}

// PriceBounds returns the catalog's [min, max] price, or 0,0 when empty.
func PriceBounds(products []Product) (float64, float64) {
	f := BuildFacets(products)
	return f.PriceMin, f.PriceMax
}

func sortedStrings(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func sortedInts(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}
