package orders

import (
	"fmt"
	"time"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
)

// applyPatch mutates o in place. Timeline events are appended only when
// withEvents is set: a status event iff the status differs, a courier event
// iff a different courier is assigned.
func applyPatch(o *domain.Order, p domain.OrderPatch, actor string, now time.Time, withEvents bool) error {
	if actor == "" {
		actor = domain.SystemActor
	}
	if p.Status != nil && *p.Status != o.Status {
		if !o.Status.CanTransition(*p.Status) {
			return fmt.Errorf("%s -> %s: %w", o.Status, *p.Status, apperr.ErrIllegalTransition)
		}
		o.Status = *p.Status
		if withEvents {
			st := o.Status
			o.AppendEvent(domain.OrderEvent{At: now, Type: domain.EventStatusChanged, Status: &st, Actor: actor})
		}
	}

	switch {
	case p.ClearCourier:
		o.CourierID = nil
	case p.CourierID != nil && !o.HasCourier(*p.CourierID):
		id := *p.CourierID
		o.CourierID = &id
		if withEvents {
			o.AppendEvent(domain.OrderEvent{At: now, Type: domain.EventCourierAssigned, Actor: actor})
		}
	}

	if p.ScheduledDate != nil {
		o.ScheduledDate = *p.ScheduledDate
	}
	if p.Tags != nil {
		o.Tags = append([]string(nil), (*p.Tags)...)
	}
	if p.Sender != nil {
		o.Sender = *p.Sender
	}
	if p.Recipient != nil {
		o.Recipient = *p.Recipient
	}
	if p.PaymentMethod != nil {
		o.PaymentMethod = *p.PaymentMethod
	}
	if p.WeightKg != nil {
		o.WeightKg = *p.WeightKg
	}
	if p.VolumeM3 != nil {
		o.VolumeM3 = *p.VolumeM3
	}
	if p.Pieces != nil {
		o.Pieces = *p.Pieces
	}
	o.UpdatedAt = now
	return nil
}
