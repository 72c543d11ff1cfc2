package product

import (
	"math"

	"github.com/shopspring/decimal"
)

const (
	DealThreshold       = 20
	BestsellerRating    = 4.5
	BestsellerMinReview = 30
	MaxStars            = 5
)

var hundred = decimal.NewFromInt(100)

// Discount is the whole-number percent off MRP, rounded half up. A missing
// MRP or a price above it yields 0. Filtering and badges both use it.
func Discount(p Product) int {
	if p.MRP <= 0 {
		return 0
	}
	mrp := decimal.NewFromFloat(p.MRP)
	price := decimal.NewFromFloat(p.Price)

	pct := mrp.Sub(price).Mul(hundred).Div(mrp).Round(0)
	if pct.IsNegative() {
		return 0
	}
	return int(pct.IntPart())
}

// HasDealBadge reports whether the card shows the "% OFF" badge.
func HasDealBadge(p Product) bool {
	return Discount(p) >= DealThreshold
}

// IsBestseller requires both a high rating and enough reviews to trust it.
func IsBestseller(p Product) bool {
	return Rating(p) >= BestsellerRating && p.NumOfReviews >= BestsellerMinReview
}

// Rating is the product rating clamped to [0, 5].
func Rating(p Product) float64 {
	switch {
	case p.Ratings < 0 || math.IsNaN(p.Ratings):
		return 0
	case p.Ratings > MaxStars:
		return MaxStars
	}
	return p.Ratings
}

// StarCount is the number of filled stars on the card.
func StarCount(p Product) int {
	return int(math.Floor(Rating(p) + 0.5))
}

// Savings is MRP minus price, never negative.
func Savings(p Product) decimal.Decimal {
	d := decimal.NewFromFloat(p.MRP).Sub(decimal.NewFromFloat(p.Price))
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
