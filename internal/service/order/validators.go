package order

import (
	"strings"

	"github.com/google/uuid"
	"storefront/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return uuid.Validate(orderID) == nil
}

func isValidUserID(userID string) bool {
	return strings.TrimSpace(userID) != ""
}

func isValidItem(item entities.OrderItem) bool {
	return strings.TrimSpace(item.Name) != "" &&
		item.Quantity >= 1 &&
		!item.Price.IsNegative()
}

func isValidStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderPending,
		entities.OrderProcessing,
		entities.OrderShipped,
		entities.OrderDelivered,
		entities.OrderCancelled:
		return true
	default:
		return false
	}
}
