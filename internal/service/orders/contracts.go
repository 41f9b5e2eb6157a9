//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"service-dispatch/internal/domain"
)

// orderRepository defines storage operations required by the order service.
// Get, Update and GetCourier return nil, nil when the record does not exist.
type orderRepository interface {
	List(ctx context.Context, q domain.OrderQuery, s domain.OrderSort, page, size int) (domain.Paged[domain.Order], error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, o *domain.Order) error
	Update(ctx context.Context, id string, fn func(o *domain.Order) error) (*domain.Order, error)
	ListCouriers(ctx context.Context) ([]domain.Courier, error)
	GetCourier(ctx context.Context, id string) (*domain.Courier, error)
	UpsertCourier(ctx context.Context, c domain.Courier) error
}

// IDGenerator produces identifiers for new orders.
type IDGenerator interface {
	NewID() string
	NewCode() string
	NewBarcode() string
}

// OrderPort abstracts the subset of order service operations
// needed by the Processor when handling upstream order events.
type OrderPort interface {
	Create(ctx context.Context, in CreateInput) (*domain.Order, error)
	Update(ctx context.Context, id string, p domain.OrderPatch, actor string) (*domain.Order, error)
	UpsertCourier(ctx context.Context, c domain.Courier) error
}
