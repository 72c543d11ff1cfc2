package order

import (
	"errors"
	"strings"

	"phonekart/internal/api"
)

// TrackingIDLength is the length of a backend document id.
const TrackingIDLength = 24

// NormalizeTrackingID strips the display '#' and surrounding blanks and
// checks the id shape before anything is sent.
func NormalizeTrackingID(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", ErrEmptyTrackingID
	}
	id := strings.TrimSpace(strings.ReplaceAll(raw, "#", ""))
	if len(id) != TrackingIDLength {
		return "", ErrInvalidTrackingID
	}
	return id, nil
}

// UserMessage is the notification text for an orders error.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyTrackingID):
		return "Please enter Order ID"
	case errors.Is(err, ErrInvalidTrackingID):
		return "Invalid Order ID format. Check My Orders page."
	case errors.Is(err, ErrOrderNotFound):
		return "Order not found"
	case errors.Is(err, ErrEmptyCart):
		return "Your cart is empty"
	case errors.Is(err, ErrNotLoggedIn):
		return "Please login to place an order"
	case errors.Is(err, ErrCheckoutInProgress):
		return "Placing your order, please wait"
	case errors.Is(err, ErrInvalidShipping):
		if _, msg, ok := strings.Cut(err.Error(), ": "); ok {
			return msg
		}
		return "Please fill in the shipping address"
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrUnknownStatus):
		return "Failed to update status"
	}
	return api.Message(err, "Something went wrong")
}
