package user

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrAvatarTooLarge   = errors.New("avatar image too large")
	ErrAvatarNotImage   = errors.New("avatar is not an image")
	ErrNotLoggedIn      = errors.New("login required")
)
