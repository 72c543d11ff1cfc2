package api

import (
	"context"
	"net/http"

	"phonekart/internal/product"
)

// ListProducts fetches the whole catalog.
func (c *Client) ListProducts(ctx context.Context) ([]product.Product, error) {
	var out productsEnvelope
	if err := c.do(ctx, http.MethodGet, "/products", nil, &out); err != nil {
		return nil, err
	}
	if out.Products == nil {
		return []product.Product{}, nil
	}
	return out.Products, nil
}

func (c *Client) AddReview(ctx context.Context, in Review) error {
	return c.do(ctx, http.MethodPut, "/products/review", in, nil)
}
