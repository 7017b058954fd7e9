package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrEmptyCart rejects order submission without any positive-quantity item.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrMissingTimeSlot rejects a vendor order without a valid pickup slot.
	ErrMissingTimeSlot = errors.New("pickup slot required")

	// ErrMissingBookingTime rejects an employee order without a booking time.
	ErrMissingBookingTime = errors.New("booking time required")

	// ErrStoreClosed rejects selecting a store that is not open.
	ErrStoreClosed = errors.New("store is closed")

	// ErrInvalidTransition rejects an action not allowed on the current screen.
	ErrInvalidTransition = errors.New("action not allowed on current screen")

	// ErrEmptyCredentials rejects a login with a blank outlet id or passkey.
	ErrEmptyCredentials = errors.New("outlet id and passkey required")

	// ErrNotAuthenticated rejects employee actions before login.
	ErrNotAuthenticated = errors.New("not logged in")

	// ErrSessionNotFound indicates an unknown flow session.
	ErrSessionNotFound = errors.New("session not found")
)
