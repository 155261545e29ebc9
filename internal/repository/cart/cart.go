package cart

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Repository хранит корзины в Redis: одна корзина — один ключ cart:<user_id>.
// CRUD корзины обслуживает соседний сервис, здесь только очистка после оплаты.
type Repository struct {
	client *redis.Client
}

func New(client *redis.Client) *Repository {
	return &Repository{
		client: client,
	}
}

func (r *Repository) Clear(ctx context.Context, userID string) error {
	err := r.client.Del(ctx, cartKey(userID)).Err()
	if err != nil {
		return fmt.Errorf("unexpected cart repository clear error: %w", err)
	}
	return nil
}

func cartKey(userID string) string {
	return fmt.Sprintf("cart:%s", userID)
}
