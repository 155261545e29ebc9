package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidUserID = errors.New("invalid user id")

// Cart покрывает единственную способность корзины, нужную флоу оформления, —
// очистку после успешной оплаты. CRUD корзины живет в отдельном сервисе.
type Cart struct {
	repository Repository
}

func New(repository Repository) *Cart {
	return &Cart{
		repository: repository,
	}
}

func (s *Cart) Clear(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrInvalidUserID
	}

	if err := s.repository.Clear(ctx, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}
