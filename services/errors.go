package services

import "errors"

var (
	ErrNotFound           = errors.New("record not found")
	ErrCarUnavailable     = errors.New("car is not available")
	ErrLocationHasCars    = errors.New("location still has cars")
	ErrBookingCompleted   = errors.New("cannot modify completed booking")
	ErrBookingCancelled   = errors.New("cannot modify cancelled booking")
	ErrReservationClosed  = errors.New("reservation already completed")
	ErrEmailTaken         = errors.New("email already registered")
	ErrWeakPassword       = errors.New("password does not meet complexity requirements")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("account is not verified")
	ErrInvalidCode        = errors.New("invalid verification code")
	ErrExpiredCode        = errors.New("verification code expired")
)
