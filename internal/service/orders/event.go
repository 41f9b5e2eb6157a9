package orders

import "time"

// Event types accepted from the upstream order feed.
const (
	EventCreated         = "created"
	EventStatusChanged   = "status_changed"
	EventCourierAssigned = "courier_assigned"
	EventCourierUpserted = "courier_upserted"
)

// Event is a single upstream order event.
type Event struct {
	Type      string
	OrderID   string
	Status    string
	CourierID string
	Actor     string
	Order     *CreateInput
	Courier   *CourierInput
	At        time.Time
}

// CourierInput is reference courier data carried by a courier_upserted event.
type CourierInput struct {
	ID      string
	Name    string
	Phone   string
	Vehicle string
	Active  bool
}
