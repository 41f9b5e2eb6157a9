package orders

import (
	"context"
	"errors"
	"strings"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/logx"
)

// Processor applies upstream order events to the store. Redelivered and
// stale events are dropped rather than retried.
type Processor struct {
	orders  OrderPort
	factory *actionFactory
	logger  logx.Logger
}

// NewProcessor creates a new orders.Processor.
func NewProcessor(orders OrderPort, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{orders: orders, logger: logger}
	p.factory = newActionFactory(p.onCreated, p.onStatusChanged, p.onCourierAssigned, p.onCourierUpserted)
	return p
}

// Handle processes a single orders.Event. Unknown event types are ignored.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	fn, ok := p.factory.get(e.Type)
	if !ok {
		p.logger.Debug("order event skipped", logx.String("type", e.Type))
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onCreated(ctx context.Context, e Event) error {
	if e.Order == nil {
		return p.drop(e, apperr.ErrInvalid)
	}
	in := *e.Order
	if in.ID == "" {
		in.ID = e.OrderID
	}
	if in.Actor == "" {
		in.Actor = e.Actor
	}
	_, err := p.orders.Create(ctx, in)
	if errors.Is(err, apperr.ErrConflict) || errors.Is(err, apperr.ErrInvalid) {
		return p.drop(e, err)
	}
	return err
}

func (p *Processor) onStatusChanged(ctx context.Context, e Event) error {
	st := domain.OrderStatus(strings.ToLower(strings.TrimSpace(e.Status)))
	return p.update(ctx, e, domain.OrderPatch{Status: &st})
}

func (p *Processor) onCourierAssigned(ctx context.Context, e Event) error {
	if e.CourierID == "" {
		return p.update(ctx, e, domain.OrderPatch{ClearCourier: true})
	}
	id := e.CourierID
	return p.update(ctx, e, domain.OrderPatch{CourierID: &id})
}

func (p *Processor) onCourierUpserted(ctx context.Context, e Event) error {
	if e.Courier == nil {
		return p.drop(e, apperr.ErrInvalid)
	}
	err := p.orders.UpsertCourier(ctx, domain.Courier{
		ID:      e.Courier.ID,
		Name:    e.Courier.Name,
		Phone:   e.Courier.Phone,
		Vehicle: domain.VehicleCategory(e.Courier.Vehicle),
		Active:  e.Courier.Active,
	})
	if errors.Is(err, apperr.ErrInvalid) {
		return p.drop(e, err)
	}
	return err
}

func (p *Processor) update(ctx context.Context, e Event, patch domain.OrderPatch) error {
	_, err := p.orders.Update(ctx, e.OrderID, patch, e.Actor)
	switch {
	case errors.Is(err, apperr.ErrNotFound),
		errors.Is(err, apperr.ErrIllegalTransition),
		errors.Is(err, apperr.ErrInvalid):
		return p.drop(e, err)
	}
	return err
}

func (p *Processor) drop(e Event, err error) error {
	p.logger.Warn("order event dropped",
		logx.String("type", e.Type),
		logx.String("order_id", e.OrderID),
		logx.Err(err),
	)
	return nil
}
