package storefront

import "errors"

var (
	ErrAdminOnly      = errors.New("admin access required")
	ErrNotLoggedIn    = errors.New("login required")
	ErrInvalidReview  = errors.New("invalid review")
	ErrUnknownProduct = errors.New("unknown product")
	ErrUnknownStore   = errors.New("unknown session store")
)
