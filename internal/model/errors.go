package model

import "errors"

var (
	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")

	// Record errors
	ErrEmailTaken = errors.New("email already registered")
	ErrNotFound   = errors.New("record not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
