package stripe

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	stripesdk "github.com/stripe/stripe-go/v76"
	"storefront/internal/entities"
	"storefront/internal/pkg/config"
	"storefront/internal/service/checkout"
	retrierconfig "storefront/pkg/retrier"
	"storefront/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "stripe"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type Gateway struct {
	client  client
	retrier retrier

	successURL string
	cancelURL  string
	currency   string
}

func New(client client, cfg *config.Stripe) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		client:     client,
		retrier:    backoff_adapter.New(retryConfig),
		successURL: cfg.SuccessURL,
		cancelURL:  cfg.CancelURL,
		currency:   cfg.Currency,
	}
}

// CreateSession создает hosted-checkout сессию. Снапшот позиций и адрес
// доставки кладутся в metadata сессии: после оплаты reconcile восстанавливает
// заказ из этого снапшота, не доверяя клиенту.
func (g *Gateway) CreateSession(ctx context.Context, userID string, items []entities.OrderItem, address entities.ShippingAddress) (string, error) {
	params, err := g.newSessionParams(ctx, userID, items, address)
	if err != nil {
		return "", fmt.Errorf("gateway stripe, build session params: %w", err)
	}

	var resp *stripesdk.CheckoutSession

	err = g.executeWithMetrics(ctx, "CreateSession", func(ctx context.Context) error {
		var err error
		resp, err = g.client.New(params)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("gateway stripe, create session: %w", mapError(err))
	}

	return resp.ID, nil
}

// GetSession возвращает статус оплаты и снапшот сессии по ее идентификатору.
func (g *Gateway) GetSession(ctx context.Context, sessionID string) (*entities.CheckoutSession, error) {
	params := &stripesdk.CheckoutSessionParams{
		Params: stripesdk.Params{Context: ctx},
	}

	var resp *stripesdk.CheckoutSession

	err := g.executeWithMetrics(ctx, "GetSession", func(ctx context.Context) error {
		var err error
		resp, err = g.client.Get(sessionID, params)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("gateway stripe, get session %s: %w", sessionID, mapError(err))
	}

	session, err := toDomain(resp)
	if err != nil {
		return nil, fmt.Errorf("gateway stripe, decode session %s: %w", sessionID, err)
	}
	return session, nil
}

func (g *Gateway) newSessionParams(ctx context.Context, userID string, items []entities.OrderItem, address entities.ShippingAddress) (*stripesdk.CheckoutSessionParams, error) {
	itemsMeta, err := marshalItemsMetadata(items)
	if err != nil {
		return nil, err
	}
	addressMeta, err := marshalAddressMetadata(address)
	if err != nil {
		return nil, err
	}

	lineItems := make([]*stripesdk.CheckoutSessionLineItemParams, 0, len(items))
	for _, item := range items {
		productData := &stripesdk.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripesdk.String(item.Name),
		}
		if item.Image != "" {
			productData.Images = []*string{stripesdk.String(item.Image)}
		}

		lineItems = append(lineItems, &stripesdk.CheckoutSessionLineItemParams{
			PriceData: &stripesdk.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripesdk.String(g.currency),
				UnitAmount:  stripesdk.Int64(toMinorUnits(item.Price)),
				ProductData: productData,
			},
			Quantity: stripesdk.Int64(int64(item.Quantity)),
		})
	}

	params := &stripesdk.CheckoutSessionParams{
		Params:             stripesdk.Params{Context: ctx},
		Mode:               stripesdk.String(string(stripesdk.CheckoutSessionModePayment)),
		PaymentMethodTypes: stripesdk.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		SuccessURL:         stripesdk.String(g.successURL),
		CancelURL:          stripesdk.String(g.cancelURL),
		ClientReferenceID:  stripesdk.String(userID),
	}
	params.AddMetadata(metadataItemsKey, string(itemsMeta))
	params.AddMetadata(metadataAddressKey, string(addressMeta))

	return params, nil
}

// mapError переводит ошибки SDK в доменную таксономию reconcile-флоу.
func mapError(err error) error {
	var stripeErr *stripesdk.Error
	if errors.As(err, &stripeErr) {
		switch {
		case stripeErr.Code == stripesdk.ErrorCodeResourceMissing:
			return checkout.ErrInvalidSession
		case isRetryableStatus(stripeErr.HTTPStatusCode):
			return fmt.Errorf("%w: %v", checkout.ErrGatewayUnavailable, err)
		}
		return err
	}
	// не-Stripe ошибка — транспорт
	return fmt.Errorf("%w: %v", checkout.ErrGatewayUnavailable, err)
}

func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	var stripeErr *stripesdk.Error
	if errors.As(err, &stripeErr) {
		return isRetryableStatus(stripeErr.HTTPStatusCode)
	}
	// транспортные ошибки ретраим
	return true
}

func isRetryableStatus(statusCode int) bool {
	return statusCode == http.StatusTooManyRequests || statusCode >= http.StatusInternalServerError
}

func (g *Gateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	code := getErrorCode(err)
	GatewayRequestDuration.WithLabelValues(serviceName, method, code).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, method, code).Inc()
	}

	return err
}

func getErrorCode(err error) string {
	if err == nil {
		return "OK"
	}
	var stripeErr *stripesdk.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.Code != "" {
			return string(stripeErr.Code)
		}
		return fmt.Sprintf("http_%d", stripeErr.HTTPStatusCode)
	}
	return "transport_error"
}
