package order

import "errors"

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrEmptyTrackingID    = errors.New("empty tracking id")
	ErrInvalidTrackingID  = errors.New("invalid tracking id")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrNotLoggedIn        = errors.New("login required")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
	ErrInvalidShipping    = errors.New("invalid shipping info")
	ErrUnknownStatus      = errors.New("unknown order status")
	ErrInvalidTransition  = errors.New("invalid status transition")
)
