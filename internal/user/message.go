package user

import (
	"errors"
	"strings"

	"phonekart/internal/api"
)

// Flow names the account form an error came from; each has its own fallback text.
type Flow int

const (
	FlowLogin Flow = iota
	FlowRegister
	FlowProfile
	FlowPassword
	FlowForgotPassword
)

var fallbacks = map[Flow]string{
	FlowLogin:          "Invalid Email or Password",
	FlowRegister:       "Signup Failed. Try again.",
	FlowProfile:        "Update Failed. Image might be too large.",
	FlowPassword:       "Password Update Failed",
	FlowForgotPassword: "Something went wrong. Check Backend Route.",
}

// UserMessage is the notification text for err raised by flow.
func UserMessage(flow Flow, err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrPasswordMismatch):
		if flow == FlowPassword {
			return "New passwords do not match!"
		}
		return "Passwords do not match!"
	case errors.Is(err, ErrAvatarTooLarge):
		return "Image is too large! Please select an image under 70KB."
	case errors.Is(err, ErrAvatarNotImage):
		return "Please select an image file"
	case errors.Is(err, ErrNotLoggedIn):
		return "Please login first"
	case errors.Is(err, ErrInvalidInput):
		if _, msg, ok := strings.Cut(err.Error(), ": "); ok {
			return msg
		}
	}
	return api.Message(err, fallbacks[flow])
}
