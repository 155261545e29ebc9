//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=cart_test
package cart

import "context"

type Repository interface {
	Clear(ctx context.Context, userID string) error
}
