package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

func (c *Client) CreateOrder(ctx context.Context, in CreateOrderRequest) (*Order, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodPost, "/order", in, &raw); err != nil {
		return nil, err
	}
	return decodeOrder(raw)
}

func (c *Client) MyOrders(ctx context.Context) ([]Order, error) {
	var out ordersEnvelope
	if err := c.do(ctx, http.MethodGet, "/myorders", nil, &out); err != nil {
		return nil, err
	}
	return out.Orders, nil
}

// GetOrder looks up one order for tracking. A "success": false answer is
// reported as a 404.
func (c *Client) GetOrder(ctx context.Context, id string) (*Order, error) {
	var out orderEnvelope
	if err := c.do(ctx, http.MethodGet, "/order/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	if (out.Success != nil && !*out.Success) || out.Order == nil {
		return nil, &Error{Status: http.StatusNotFound, Message: out.Message}
	}
	return out.Order, nil
}

// decodeOrder accepts both {"order": {...}} and a bare order document.
func decodeOrder(raw json.RawMessage) (*Order, error) {
	if len(raw) == 0 {
		return &Order{}, nil
	}
	var env orderEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Order != nil {
		return env.Order, nil
	}
	var o Order
	if err := json.Unmarshal(raw, &o); err != nil {
		return nil, ErrBadResponse
	}
	return &o, nil
}
