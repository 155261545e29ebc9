//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=stripe_test
package stripe

import (
	"context"

	stripesdk "github.com/stripe/stripe-go/v76"
)

// client — срез session.Client из stripe-go, достаточный для hosted checkout.
type client interface {
	New(params *stripesdk.CheckoutSessionParams) (*stripesdk.CheckoutSession, error)
	Get(id string, params *stripesdk.CheckoutSessionParams) (*stripesdk.CheckoutSession, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
