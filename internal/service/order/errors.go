package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrInvalidAmount         = errors.New("invalid total amount")

	ErrOrderNotFound = errors.New("order not found")
)
