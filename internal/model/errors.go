package model

import "errors"

var (
	// ErrNotFound means the requested entity does not exist locally.
	ErrNotFound = errors.New("not found")
	// ErrBusy means a state machine rejected an operation already in flight.
	ErrBusy = errors.New("operation already in flight")
	// ErrEmptyIngredients means a generation was attempted with no ingredients.
	ErrEmptyIngredients = errors.New("ingredient list is empty")
	// ErrDuplicateIngredient means the ingredient is already collected.
	ErrDuplicateIngredient = errors.New("ingredient already added")
	// ErrNotAuthenticated means the operation requires a logged-in session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrUnauthorized means the service rejected the session token.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrInvalidState means the state machine is not in a phase that allows
	// the requested transition.
	ErrInvalidState = errors.New("invalid state for operation")
)
