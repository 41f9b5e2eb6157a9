package handlers

import (
	"context"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/service/handover"
	"service-dispatch/internal/service/orders"
)

type orderUsecase interface {
	List(ctx context.Context, q domain.OrderQuery, s domain.OrderSort, page, size int) (domain.Paged[domain.Order], error)
	Query(ctx context.Context, q domain.OrderQuery, s domain.OrderSort) ([]domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	Create(ctx context.Context, in orders.CreateInput) (*domain.Order, error)
	Update(ctx context.Context, id string, p domain.OrderPatch, actor string) (*domain.Order, error)
	BulkUpdate(ctx context.Context, ids []string, p domain.OrderPatch) (domain.BulkResult, error)
	ListCouriers(ctx context.Context) ([]domain.Courier, error)
}

type handoverUsecase interface {
	Open() handover.Session
	Get(id string) (handover.Session, error)
	Close(id string) error
	Reset(id string) (handover.Session, error)
	SelectCourier(ctx context.Context, id, courierID string) (handover.Session, error)
	Scan(id, barcode string) (handover.Session, handover.Feedback, error)
	Commit(ctx context.Context, id, actor string) (handover.CommitResult, error)
}

type bagUsecase interface {
	ListBags(ctx context.Context, courierID string) ([]domain.Bag, error)
	GetBag(ctx context.Context, id string) (*domain.Bag, error)
	Details(ctx context.Context, id string) (handover.BagDetails, error)
}

// NewOrderUsecase wires an orders.Service into an orderUsecase.
func NewOrderUsecase(svc *orders.Service) orderUsecase { return svc }

// NewHandoverUsecase wires a handover.Service into a handoverUsecase.
func NewHandoverUsecase(svc *handover.Service) handoverUsecase { return svc }

// NewBagUsecase wires a handover.Service into a bagUsecase.
func NewBagUsecase(svc *handover.Service) bagUsecase { return svc }
