package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"storefront/internal/entities"
	"storefront/internal/repository"
	"storefront/internal/service/checkout"
	"storefront/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, user_id, items, shipping_address, total_amount::text, status, payment_status, checkout_session_id, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет заказ. Уникальный индекс (user_id, checkout_session_id) —
// единственный арбитр гонки двух одинаковых reconcile-запросов: проигравшая
// вставка получает ErrSessionAlreadyProcessed.
func (r *Repository) Create(ctx context.Context, newOrder entities.NewOrder) (*entities.Order, error) {
	itemsJSON, err := marshalItems(newOrder.Items)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}
	addressJSON, err := marshalAddress(newOrder.ShippingAddress)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	query := `
		INSERT INTO orders (id, user_id, items, shipping_address, total_amount, status, payment_status, checkout_session_id)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8)
		RETURNING ` + orderColumns

	var orderDB OrderDB
	err = r.querier.QueryRow(
		ctx,
		query,
		uuid.NewString(),
		newOrder.UserID,
		itemsJSON,
		addressJSON,
		newOrder.TotalAmount.String(),
		newOrder.Status.String(),
		newOrder.PaymentStatus.String(),
		newOrder.CheckoutSessionID,
	).Scan(
		&orderDB.ID,
		&orderDB.UserID,
		&orderDB.Items,
		&orderDB.ShippingAddress,
		&orderDB.TotalAmount,
		&orderDB.Status,
		&orderDB.PaymentStatus,
		&orderDB.CheckoutSessionID,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, checkout.ErrSessionAlreadyProcessed
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(&orderDB)
}

// GetBySession — поиск по идемпотентному ключу reconcile-флоу.
func (r *Repository) GetBySession(ctx context.Context, userID, sessionID string) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1 AND checkout_session_id = $2
	`

	orderDB, err := r.scanRow(r.querier.QueryRow(ctx, query, userID, sessionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, checkout.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get by session error: %w", err)
	}

	return ToDomain(orderDB)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	orderDB, err := r.scanRow(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get by id error: %w", err)
	}

	return ToDomain(orderDB)
}

func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get by user error: %w", err)
	}
	defer rows.Close()

	return r.collectRows(rows)
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository get all error: %w", err)
	}
	defer rows.Close()

	return r.collectRows(rows)
}

// CountByStatus — агрегат для фоновой публикации метрик по заказам.
func (r *Repository) CountByStatus(ctx context.Context) (map[entities.OrderStatusType]int64, error) {
	query := `
		SELECT status, COUNT(*)
		FROM orders
		GROUP BY status
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
	}
	defer rows.Close()

	counts := map[entities.OrderStatusType]int64{}
	for rows.Next() {
		var status string
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
		}
		counts[entities.OrderStatusType(status)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository count by status error: %w", err)
	}

	return counts, nil
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	// опциональные поля
	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderDB, err := r.scanRow(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderDB)
}

func (r *Repository) scanRow(row pgx.Row) (*OrderDB, error) {
	var orderDB OrderDB
	err := row.Scan(
		&orderDB.ID,
		&orderDB.UserID,
		&orderDB.Items,
		&orderDB.ShippingAddress,
		&orderDB.TotalAmount,
		&orderDB.Status,
		&orderDB.PaymentStatus,
		&orderDB.CheckoutSessionID,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderDB, nil
}

func (r *Repository) collectRows(rows pgx.Rows) ([]entities.Order, error) {
	orders := []entities.Order{}
	for rows.Next() {
		orderDB, err := r.scanRow(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orderEntity, err := ToDomain(orderDB)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *orderEntity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}
	return orders, nil
}
