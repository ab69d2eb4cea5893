package domain

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrListingNotFound = errors.New("listing not found")
	ErrSlotNotFound    = errors.New("availability slot not found")
	ErrBookingNotFound = errors.New("booking not found")
)

var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
)

var (
	ErrSlotTaken         = errors.New("availability slot is already booked")
	ErrInvalidTransition = errors.New("invalid booking transition")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

var (
	ErrValidation = errors.New("validation error")
)
