//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=checkout_test
package checkout

import (
	"context"

	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type Repository interface {
	Create(ctx context.Context, newOrder entities.NewOrder) (*entities.Order, error)
	GetBySession(ctx context.Context, userID, sessionID string) (*entities.Order, error)
}

type Gateway interface {
	CreateSession(ctx context.Context, userID string, items []entities.OrderItem, address entities.ShippingAddress) (string, error)
	GetSession(ctx context.Context, sessionID string) (*entities.CheckoutSession, error)
}

type CartService interface {
	Clear(ctx context.Context, userID string) error
}

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
