package session

import "errors"

var (
	ErrNotFound       = errors.New("no stored value for key")
	ErrNotLoggedIn    = errors.New("not logged in")
	ErrInvalidSession = errors.New("session has no token")

	ErrFailedLoadState   = errors.New("failed to load client state")
	ErrFailedSaveState   = errors.New("failed to save client state")
	ErrFailedDeleteState = errors.New("failed to delete client state")
)
