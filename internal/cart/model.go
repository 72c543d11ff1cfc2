package cart

import (
	"phonekart/internal/product"

	"github.com/shopspring/decimal"
)

// Item is one cart line. Quantity is always at least 1.
type Item struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// LineTotal is price times quantity.
func (i Item) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Product.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
}
