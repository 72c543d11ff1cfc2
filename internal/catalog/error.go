package catalog

import "errors"

var (
	ErrPageOutOfRange    = errors.New("page out of range")
	ErrUnknownFilter     = errors.New("unknown filter")
	ErrInvalidPriceRange = errors.New("min price must not exceed max price")
	ErrUnknownBudget     = errors.New("unknown budget")
	ErrUnknownUseCase    = errors.New("unknown use case")
)
