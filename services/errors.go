package services

import "errors"

var (
	// ErrInvalidCredentials deliberately covers both unknown email and wrong
	// password so login responses cannot be used for account enumeration.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotConfirmed  = errors.New("please verify your email to continue")
	ErrForbidden          = errors.New("forbidden")
)
