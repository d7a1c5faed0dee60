package domain

import "errors"

var (
	// store errors
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")

	// authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")

	// ownership errors
	ErrNotFoundOrForbidden = errors.New("product not found or not visible")
	ErrForbidden           = errors.New("forbidden")

	ErrInvalidProduct = errors.New("invalid product")
)
