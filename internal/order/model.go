package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelivered  Status = "Delivered"
)

type Item struct {
	ProductID string
	Name      string
	Image     string
	Price     float64
	Quantity  int
}

func (i Item) LineTotal() decimal.Decimal {
	return decimal.NewFromFloat(i.Price).Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShippingInfo is the delivery address captured at checkout.
type ShippingInfo struct {
	Address string `validate:"required"`
	City    string `validate:"required"`
	State   string `validate:"required"`
	Zip     string `validate:"required,numeric,len=6"`
	Phone   string `validate:"required,numeric,min=10,max=13"`
}

type Order struct {
	ID        string
	UserID    string
	UserName  string
	Items     []Item
	Amount    decimal.Decimal
	Status    Status
	Shipping  ShippingInfo
	CreatedAt time.Time
}

// Units is the number of phones across all lines.
func (o Order) Units() int {
	n := 0
	for _, it := range o.Items {
		n += it.Quantity
	}
	return n
}
