//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	stripeGateway "storefront/internal/gateway/stripe"
	checkout_session_post "storefront/internal/handlers/rest/checkout_session_post"
	checkout_success_post "storefront/internal/handlers/rest/checkout_success_post"
	order_get "storefront/internal/handlers/rest/order_get"
	order_post "storefront/internal/handlers/rest/order_post"
	order_status_patch "storefront/internal/handlers/rest/order_status_patch"
	orders_admin_get "storefront/internal/handlers/rest/orders_admin_get"
	orders_get "storefront/internal/handlers/rest/orders_get"
	"storefront/internal/handlers/tasks/order_stats"
	"storefront/internal/pkg/config"

	cartRepo "storefront/internal/repository/cart"
	orderRepo "storefront/internal/repository/order"
	cartService "storefront/internal/service/cart"
	checkoutService "storefront/internal/service/checkout"
	orderService "storefront/internal/service/order"

	"storefront/pkg/background"
	"storefront/pkg/logger"
	"storefront/pkg/querier"
	"storefront/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

type (
	OrderStatsInterval time.Duration
)

type Application struct {
	ServiceCheckout   ServiceCheckout
	ServiceOrder      ServiceOrder
	BackgroundWorkers *background.Worker
}

type ServiceCheckout interface {
	checkout_session_post.Service
	checkout_success_post.Service
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	orders_get.Service
	orders_admin_get.Service
	order_status_patch.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	sessionClient *session.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideOrderStatsInterval,

		provideOrderRepository,
		provideCartRepository,
		provideStripeGateway,

		provideServiceOrder,
		provideServiceCart,
		provideServiceCheckout,

		provideOrderStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceCheckout), new(*checkoutService.Checkout)),
		wire.Bind(new(ServiceOrder), new(*orderService.Order)),

		wire.Bind(new(checkoutService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(checkoutService.Gateway), new(*stripeGateway.Gateway)),
		wire.Bind(new(checkoutService.CartService), new(*cartService.Cart)),
		wire.Bind(new(cartService.Repository), new(*cartRepo.Repository)),
		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),

		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(order_stats.Service), new(*orderService.Order)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Order
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideServiceOrder,

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideCartRepository(redisClient *goredis.Client) *cartRepo.Repository {
	return cartRepo.New(redisClient)
}

func provideStripeGateway(sessionClient *session.Client, cfg *config.Config) *stripeGateway.Gateway {
	return stripeGateway.New(sessionClient, &cfg.Stripe)
}

func provideServiceOrder(
	repository orderService.Repository,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, txManager)
}

func provideServiceCart(repository cartService.Repository) *cartService.Cart {
	return cartService.New(repository)
}

func provideServiceCheckout(
	log logger.Logger,
	repository checkoutService.Repository,
	gateway checkoutService.Gateway,
	cart checkoutService.CartService,
) *checkoutService.Checkout {
	return checkoutService.New(log, repository, gateway, cart)
}

func provideOrderStatsInterval(cfg *config.Config) OrderStatsInterval {
	return OrderStatsInterval(cfg.Tasks.OrderStatsInterval)
}

func provideOrderStatsTask(
	log logger.Logger,
	service order_stats.Service,
	interval OrderStatsInterval,
) *order_stats.OrderStats {
	return order_stats.NewOrderStats(log, service, time.Duration(interval))
}

func provideTaskList(
	orderStatsTask *order_stats.OrderStats,
) []background.Task {
	return []background.Task{
		orderStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
