package domain

import "errors"

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrItemUnavailable = errors.New("item unavailable")
	ErrEmailTaken      = errors.New("email already registered")
	ErrValidation      = errors.New("validation error")
)
