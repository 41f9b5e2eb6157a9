//go:generate mockgen -source=contracts.go -destination=handover_mocks_test.go -package=handover_test

package handover

import (
	"context"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/ports/handovertx"
)

// orderReader is the read side the workflow needs.
type orderReader interface {
	ListByCourier(ctx context.Context, courierID string) ([]domain.Order, error)
	GetCourier(ctx context.Context, id string) (*domain.Courier, error)
	GetMany(ctx context.Context, ids []string) ([]domain.Order, error)
	GetBag(ctx context.Context, id string) (*domain.Bag, error)
	ListBags(ctx context.Context, courierID string) ([]domain.Bag, error)
}

// Store is the repository the handover service works on.
type Store interface {
	orderReader
	handovertx.Runner
}

// Sequence hands out bag numbers.
type Sequence interface {
	Next(ctx context.Context) (int64, error)
}

// BagPublisher announces committed bags. Failures never undo a commit.
type BagPublisher interface {
	PublishBag(ctx context.Context, b domain.Bag) error
}
