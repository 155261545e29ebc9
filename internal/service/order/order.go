package order

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"storefront/internal/entities"
)

type Order struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Order {
	return &Order{
		repository: repository,
		txManager:  txManager,
	}
}

// CreateOrder — прямой путь оформления без hosted checkout (например, оплата при получении).
// Заказ создается со статусом pending и ожидающим payment_status; идемпотентного
// ключа у этого пути нет, он намеренно тонкий.
func (s *Order) CreateOrder(ctx context.Context, userID string, items []entities.OrderItem, address entities.ShippingAddress, totalAmount decimal.Decimal) (*entities.Order, error) {
	if !isValidUserID(userID) {
		return nil, ErrInvalidUserID
	}
	if len(items) == 0 {
		return nil, ErrMissingRequiredFields
	}
	for _, item := range items {
		if !isValidItem(item) {
			return nil, fmt.Errorf("%w: %q", ErrMissingRequiredFields, item.Name)
		}
	}
	if !totalAmount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	newOrder := entities.NewOrder{
		UserID:          userID,
		Items:           items,
		ShippingAddress: address,
		TotalAmount:     totalAmount,
		Status:          entities.OrderPending,
		PaymentStatus:   entities.PaymentPending,
	}

	order, err := s.repository.Create(ctx, newOrder)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	return order, nil
}

// UpdateStatus — административная операция, ее же дергает Kafka-воркер.
// Граф переходов намеренно не ограничен (delivered -> pending допустим):
// это путь ручной корректировки. Повтор события с текущим статусом не пишет.
func (s *Order) UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatusType) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidStatus(status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, status)
	}

	var order *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order for status update: %w", err)
		}

		if current.Status == status {
			order = current
			return nil
		}

		updated, err := s.repository.Update(ctx, entities.OrderModify{
			ID:     &orderID,
			Status: &status,
		})
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		order = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Order) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// GetUserOrders возвращает заказы покупателя, новые первыми.
func (s *Order) GetUserOrders(ctx context.Context, userID string) ([]entities.Order, error) {
	if !isValidUserID(userID) {
		return nil, ErrInvalidUserID
	}

	orders, err := s.repository.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user orders: %w", err)
	}
	return orders, nil
}

// StatusCounts возвращает количество заказов в разрезе статусов.
func (s *Order) StatusCounts(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	counts, err := s.repository.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("count orders by status: %w", err)
	}
	return counts, nil
}

// GetOrders возвращает все заказы (административная выборка), новые первыми.
func (s *Order) GetOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	return orders, nil
}
