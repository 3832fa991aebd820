package domain

import "errors"

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrCarpoolNotFound = errors.New("carpool not found")
	ErrSessionNotFound = errors.New("session not found")
)

var (
	ErrCarpoolFull          = errors.New("carpool is full")
	ErrCarpoolClosed        = errors.New("carpool is closed")
	ErrActiveBookingExists  = errors.New("account already has an active booking")
	ErrBookingNotCancelable = errors.New("booking can no longer be cancelled")
	ErrBookingExpired       = errors.New("booking has expired")
)

var (
	ErrUsernameTaken  = errors.New("username is already taken")
	ErrEmailTaken     = errors.New("email is already taken")
	ErrWrongPassword  = errors.New("wrong password")
	ErrSessionExpired = errors.New("session has expired")
)

var (
	ErrValidation     = errors.New("validation error")
	ErrInvalidBooking = errors.New("invalid booking")
)
