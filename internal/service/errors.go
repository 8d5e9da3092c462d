package service

import "errors"

var (
	ErrVehicleNotFound        = errors.New("vehicle not found")
	ErrVehicleUnavailable     = errors.New("vehicle is not available for the selected dates")
	ErrBookingNotFound        = errors.New("booking not found")
	ErrInvalidBookingStatus   = errors.New("invalid booking status")
	ErrInvalidDateRange       = errors.New("invalid date range")
	ErrEmailAlreadyRegistered = errors.New("an account with this email already exists")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidDataProvided    = errors.New("invalid data provided")
)
