package models

import "errors"

// Domain errors raised by the services and mapped to HTTP statuses in the
// api layer.
var (
	// Email is already registered.
	ErrEmailTaken = errors.New("email already registered")
	// Unknown email or wrong password; callers must not be able to tell which.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// No recipe with the given ID in the catalog.
	ErrRecipeNotFound = errors.New("recipe not found")
	// Recipe ID not present in the user's cookbook.
	ErrNotInCookbook = errors.New("recipe not in cookbook")
)
