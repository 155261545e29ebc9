package checkout

import "errors"

var (
	ErrInvalidUserID    = errors.New("invalid user id")
	ErrInvalidSessionID = errors.New("invalid session id")
	ErrEmptyItems       = errors.New("order items are empty")
	ErrInvalidItem      = errors.New("invalid order item")

	ErrOrderNotFound           = errors.New("order not found")
	ErrPaymentIncomplete       = errors.New("payment is not completed")
	ErrInvalidSession          = errors.New("unknown or expired checkout session")
	ErrGatewayUnavailable      = errors.New("payment gateway unavailable")
	ErrSessionAlreadyProcessed = errors.New("checkout session already processed")
)
