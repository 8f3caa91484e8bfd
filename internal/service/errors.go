package service

import "errors"

// Common service errors
var (
	// ErrInvalidCredentials is returned when login fails for an unknown email
	// or a wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registering or updating to an email that
	// already belongs to another account
	ErrEmailTaken = errors.New("email already registered")

	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrTodoNotFound is returned when a todo does not exist or is owned by
	// another user; callers see the same error either way
	ErrTodoNotFound = errors.New("todo not found")

	// ErrInvalidStatus is returned when a todo status is outside the enumeration
	ErrInvalidStatus = errors.New("invalid todo status")
)
