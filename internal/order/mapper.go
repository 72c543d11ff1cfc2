package order

import (
	"phonekart/internal/api"
	"phonekart/internal/cart"

	"github.com/shopspring/decimal"
)

func mapCartItems(items []cart.Item) []api.OrderItem {
	out := make([]api.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, api.OrderItem{
			Product:  it.Product.ID,
			Name:     it.Product.Name,
			Image:    it.Product.Image,
			Price:    it.Product.Price,
			Quantity: it.Quantity,
		})
	}
	return out
}

func mapShipping(s ShippingInfo) api.ShippingInfo {
	return api.ShippingInfo{
		Address: s.Address,
		City:    s.City,
		State:   s.State,
		Zip:     s.Zip,
		Phone:   s.Phone,
	}
}

func mapOrder(o api.Order) Order {
	items := make([]Item, 0, len(o.CartItems))
	for _, it := range o.CartItems {
		items = append(items, Item{
			ProductID: it.Product,
			Name:      it.Name,
			Image:     it.Image,
			Price:     it.Price,
			Quantity:  it.Quantity,
		})
	}
	return Order{
		ID:       o.ID,
		UserID:   o.User.ID,
		UserName: o.User.Name,
		Items:    items,
		Amount:   decimal.NewFromFloat(o.Amount),
		Status:   Status(o.Status),
		Shipping: ShippingInfo{
			Address: o.ShippingInfo.Address,
			City:    o.ShippingInfo.City,
			State:   o.ShippingInfo.State,
			Zip:     o.ShippingInfo.Zip,
			Phone:   o.ShippingInfo.Phone,
		},
		CreatedAt: o.CreatedAt,
	}
}

func mapOrders(in []api.Order) []Order {
	out := make([]Order, 0, len(in))
	for _, o := range in {
		out = append(out, mapOrder(o))
	}
	return out
}
