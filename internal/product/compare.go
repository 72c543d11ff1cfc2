package product

import (
	"fmt"
	"strconv"

	"phonekart/internal/utils"

	"github.com/shopspring/decimal"
)

// CompareRow is one line of the side-by-side table. Better is 1 or 2 when
// one phone wins a numeric spec, 0 otherwise.
type CompareRow struct {
	Label  string
	Left   string
	Right  string
	Better int
}

func Compare(a, b Product) ([]CompareRow, error) {
	if a.ID == "" || b.ID == "" {
		return nil, ErrProductNotFound
	}
	if a.ID == b.ID {
		return nil, ErrSameProduct
	}

	return []CompareRow{
		{Label: "Price", Left: money(a.Price), Right: money(b.Price), Better: lower(a.Price, b.Price)},
		{Label: "MRP", Left: money(a.MRP), Right: money(b.MRP)},
		{Label: "Discount", Left: percent(Discount(a)), Right: percent(Discount(b)), Better: higher(float64(Discount(a)), float64(Discount(b)))},
		{Label: "Brand", Left: a.Brand, Right: b.Brand},
		{Label: "Display", Left: a.Display, Right: b.Display},
		{Label: "RAM", Left: gb(a.RAM), Right: gb(b.RAM), Better: higher(float64(a.RAM), float64(b.RAM))},
		{Label: "Storage", Left: gb(a.Storage), Right: gb(b.Storage), Better: higher(float64(a.Storage), float64(b.Storage))},
		{Label: "Camera", Left: a.Camera, Right: b.Camera},
		{Label: "Battery", Left: a.Battery, Right: b.Battery},
		{Label: "Color", Left: a.Color, Right: b.Color},
		{Label: "Rating", Left: stars(a), Right: stars(b), Better: higher(Rating(a), Rating(b))},
	}, nil
}

func money(v float64) string { return utils.FormatRupees(decimal.NewFromFloat(v)) }

func percent(v int) string { return strconv.Itoa(v) + "%" }

func gb(v int) string { return fmt.Sprintf("%d GB", v) }

func stars(p Product) string {
	return fmt.Sprintf("%.1f (%d)", Rating(p), p.NumOfReviews)
}

func higher(a, b float64) int {
	switch {
	case a > b:
		return 1
	case b > a:
		return 2
	}
	return 0
}

func lower(a, b float64) int {
	switch {
	case a < b:
		return 1
	case b < a:
		return 2
	}
	return 0
}
