package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"phonekart/internal/product"
)

// AdminOrders lists every order in backend order (oldest first).
func (c *Client) AdminOrders(ctx context.Context) ([]Order, error) {
	var out ordersEnvelope
	if err := c.do(ctx, http.MethodGet, "/admin/orders", nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id, status string) error {
	return c.do(ctx, http.MethodPut, "/admin/order/"+url.PathEscape(id), statusUpdate{Status: status}, nil)
}

// CreateProduct adds a phone to the catalog. The created document is
// returned when the backend echoes it.
func (c *Client) CreateProduct(ctx context.Context, in product.NewProductInput) (*product.Product, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/admin/product/new", in, &raw); err != nil {
		return nil, err
	}

	var env productEnvelope
	if len(raw) > 0 && json.Unmarshal(raw, &env) == nil && env.Product != nil {
		return env.Product, nil
	}
	return &product.Product{
		Name:        in.Name,
		Brand:       in.Brand,
		Price:       in.Price,
		MRP:         in.MRP,
		RAM:         in.RAM,
		Storage:     in.Storage,
		Display:     in.Display,
		Camera:      in.Camera,
		Battery:     in.Battery,
		Color:       in.Color,
		Image:       in.Image,
		Description: in.Description,
	}, nil
}
