package product

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid product input")
	ErrSameProduct     = errors.New("choose two different phones to compare")
	ErrProductNotFound = errors.New("product not found")
)
