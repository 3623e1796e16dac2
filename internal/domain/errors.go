package domain

import "errors"

var (
	ErrEventNotFound = errors.New("event not found")
	ErrOrderNotFound = errors.New("order not found")
	ErrUserNotFound  = errors.New("user not found")
)

var (
	ErrInventoryExhausted = errors.New("not enough tickets available")
	ErrCapacityViolation  = errors.New("capacity below tickets already sold")
	ErrEventNotPublished  = errors.New("event is not published")
	ErrEventCanceled      = errors.New("event is canceled")
	ErrEventHasOrders     = errors.New("event has existing orders")
)

var (
	ErrInvalidTransition = errors.New("invalid order state transition")
	ErrAlreadyPaid       = errors.New("order is already paid")
	ErrAlreadyCanceled   = errors.New("order is already canceled")
)

var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("not enough permissions")
	ErrValidation         = errors.New("validation error")
)
