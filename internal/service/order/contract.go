//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, newOrder entities.NewOrder) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetByUserID(ctx context.Context, userID string) ([]entities.Order, error)
	GetAll(ctx context.Context) ([]entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
