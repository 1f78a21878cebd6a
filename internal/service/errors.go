package service

import "errors"

var (
	// ErrProductNotFound reports a product ID absent from the catalog
	ErrProductNotFound = errors.New("product not found")

	// ErrAccountNotFound reports an email absent from the account list
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidSelection reports a 1-based pick outside the pending-order range
	ErrInvalidSelection = errors.New("invalid selection")

	// ErrIndexOutOfRange reports a 0-based index outside the order book
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidCredentials reports a failed authentication attempt
	ErrInvalidCredentials = errors.New("invalid credentials")
)
