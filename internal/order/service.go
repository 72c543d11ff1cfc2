package order

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"phonekart/internal/api"
	"phonekart/internal/cart"
	"phonekart/internal/logger"
	"phonekart/internal/notify"
	"phonekart/internal/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Backend is the slice of the REST client the orders flow needs.
type Backend interface {
	CreateOrder(ctx context.Context, in api.CreateOrderRequest) (*api.Order, error)
	MyOrders(ctx context.Context) ([]api.Order, error)
	GetOrder(ctx context.Context, id string) (*api.Order, error)
	AdminOrders(ctx context.Context) ([]api.Order, error)
	UpdateOrderStatus(ctx context.Context, id, status string) error
}

// SessionChecker reports whether a user is signed in.
type SessionChecker interface {
	LoggedIn() bool
}

type Service struct {
	backend  Backend
	session  SessionChecker
	notifier notify.Notifier

	mu       sync.Mutex
	inFlight bool
}

func NewService(backend Backend, session SessionChecker, n notify.Notifier) *Service {
	return &Service{
		backend:  backend,
		session:  session,
		notifier: notify.OrDiscard(n),
	}
}

// Track looks up an order by the id the user typed.
func (s *Service) Track(ctx context.Context, raw string) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "Track"),
	)

	id, err := NormalizeTrackingID(raw)
	if err != nil {
		return nil, err
	}

	o, err := s.backend.GetOrder(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			log.Info("order not found", zap.String("order_id", id))
			return nil, fmt.Errorf("%w: %s", ErrOrderNotFound, id)
		}
		log.Error("failed to track order", zap.String("order_id", id), zap.Error(err))
		return nil, err
	}

	out := mapOrder(*o)
	return &out, nil
}

// CheckoutInProgress reports whether an order is being placed.
func (s *Service) CheckoutInProgress() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inFlight
}

// PlaceOrder sends items as a new order. Only one order may be outstanding;
// the cart itself is left untouched so the caller can clear it on its own
// goroutine.
func (s *Service) PlaceOrder(ctx context.Context, items []cart.Item, shipping ShippingInfo) (*Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
	)

	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if s.session == nil || !s.session.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	if err := utils.ValidateStruct(shipping); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidShipping, utils.FirstValidationMessage(err))
	}

	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return nil, ErrCheckoutInProgress
	}
	s.inFlight = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()
	}()

	req := api.CreateOrderRequest{
		CartItems:    mapCartItems(items),
		ShippingInfo: mapShipping(shipping),
		Amount:       cartTotal(items).InexactFloat64(),
	}

	created, err := s.backend.CreateOrder(ctx, req)
	if err != nil {
		log.Error("failed to create order", zap.Error(err))
		return nil, err
	}

	out := mapOrder(*created)
	if len(out.Items) == 0 {
		out.Items = mapOrder(api.Order{CartItems: req.CartItems}).Items
	}
	if out.Amount.IsZero() {
		out.Amount = cartTotal(items)
	}
	if out.Status == "" {
		out.Status = StatusProcessing
	}

	log.Info("order placed", zap.String("order_id", out.ID), zap.Int("lines", len(out.Items)))
	return &out, nil
}

// Complete takes the ordered items out of the cart after the order went
// through. Lines added while the order was pending are kept.
func (s *Service) Complete(c *cart.Cart, ordered []cart.Item, o *Order) {
	c.Deduct(ordered)
	if o != nil && o.ID != "" {
		s.notifier.Notify(notify.KindSuccess, "Order placed! ID: #"+o.ID)
		return
	}
	s.notifier.Notify(notify.KindSuccess, "Order placed")
}

// Checkout places the cart contents and takes them out of the cart on success.
func (s *Service) Checkout(ctx context.Context, c *cart.Cart, shipping ShippingInfo) (*Order, error) {
	items := c.Items()
	o, err := s.PlaceOrder(ctx, items, shipping)
	if err != nil {
		return nil, err
	}
	s.Complete(c, items, o)
	return o, nil
}

func (s *Service) MyOrders(ctx context.Context) ([]Order, error) {
	if s.session == nil || !s.session.LoggedIn() {
		return nil, ErrNotLoggedIn
	}
	orders, err := s.backend.MyOrders(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to fetch my orders",
			zap.String("layer", "service"),
			zap.Error(err),
		)
		return nil, err
	}
	return mapOrders(orders), nil
}

// AdminOrders lists every order, newest first.
func (s *Service) AdminOrders(ctx context.Context) ([]Order, error) {
	orders, err := s.backend.AdminOrders(ctx)
	if err != nil {
		logger.FromCtx(ctx).Error("failed to fetch all orders",
			zap.String("layer", "service"),
			zap.Error(err),
		)
		return nil, err
	}

	out := mapOrders(orders)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

// UpdateStatus moves o to the given status if the delivery chain allows it.
func (s *Service) UpdateStatus(ctx context.Context, o Order, to string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "UpdateStatus"),
		zap.String("order_id", o.ID),
	)

	target, err := ParseStatus(to)
	if err != nil {
		return err
	}
	if !CanTransition(o.Status, target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, target)
	}

	if err := s.backend.UpdateOrderStatus(ctx, o.ID, string(target)); err != nil {
		log.Error("failed to update order status", zap.Error(err))
		return err
	}

	log.Info("order status updated", zap.String("status", string(target)))
	return nil
}

func cartTotal(items []cart.Item) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.LineTotal())
	}
	return total
}
