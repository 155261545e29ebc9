package order_stats

import (
	"context"
	"time"

	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type Service interface {
	StatusCounts(ctx context.Context) (map[entities.OrderStatusType]int64, error)
}

type OrderStats struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOrderStats(log logger.Logger, service Service, interval time.Duration) *OrderStats {
	return &OrderStats{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OrderStats) TTL() time.Duration {
	return o.interval
}

func (o *OrderStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	counts, err := o.service.StatusCounts(ctxWithTimeout)
	if err != nil {
		return err
	}

	// статусы без заказов обнуляются, иначе gauge застревает на старом значении
	for _, status := range allStatuses {
		OrdersByStatus.WithLabelValues(status.String()).Set(float64(counts[status]))
	}

	return nil
}

func (o *OrderStats) Info() string {
	return "order stats"
}

var allStatuses = []entities.OrderStatusType{
	entities.OrderPending,
	entities.OrderProcessing,
	entities.OrderShipped,
	entities.OrderDelivered,
	entities.OrderCancelled,
}
