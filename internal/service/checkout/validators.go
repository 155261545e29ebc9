package checkout

import (
	"strings"

	"storefront/internal/entities"
)

func isValidUserID(userID string) bool {
	return strings.TrimSpace(userID) != ""
}

func isValidSessionID(sessionID string) bool {
	return strings.TrimSpace(sessionID) != ""
}

func isValidItem(item entities.OrderItem) bool {
	return strings.TrimSpace(item.Name) != "" &&
		item.Quantity >= 1 &&
		!item.Price.IsNegative()
}
