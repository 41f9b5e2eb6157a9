package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type (
	// SLARisk is a coarse delivery-risk class derived from the order total.
	SLARisk string
	// PaymentMethod is how the recipient settles the order.
	PaymentMethod string
	// EventType classifies an entry of the order timeline.
	EventType string
)

// SLA risk classes.
const (
	SLALow    SLARisk = "low"
	SLAMedium SLARisk = "medium"
	SLAHigh   SLARisk = "high"
)

// Payment methods.
const (
	PaymentCash     PaymentMethod = "cash"
	PaymentCard     PaymentMethod = "card"
	PaymentPrepaid  PaymentMethod = "prepaid"
	PaymentTransfer PaymentMethod = "transfer"
)

// Timeline event types.
const (
	EventCreated         EventType = "created"
	EventStatusChanged   EventType = "status_changed"
	EventCourierAssigned EventType = "courier_assigned"
	EventHandedOver      EventType = "handed_over"
)

// SystemActor marks events produced by the service itself.
const SystemActor = "system"

// Money is an amount in a single currency.
type Money struct {
	Amount   decimal.Decimal
	Currency string
}

// GeoPoint is a WGS84 coordinate.
type GeoPoint struct {
	Lat float64
	Lng float64
}

// Party is a sender or a recipient of an order.
type Party struct {
	Name    string
	Phone   string
	Address string
	City    string
	Country string
	Geo     *GeoPoint
}

// OrderEvent is a single timeline entry. Status is set for status changes,
// Actor is empty for anonymous changes.
type OrderEvent struct {
	At     time.Time
	Type   EventType
	Status *OrderStatus
	Actor  string
}

// Order is a single shipment record.
type Order struct {
	ID            string
	Code          string
	Barcode       string
	Status        OrderStatus
	SLARisk       SLARisk
	Sender        Party
	Recipient     Party
	ProductValue  Money
	DeliveryFee   Money
	Total         Money
	PaymentMethod PaymentMethod
	WeightKg      float64
	VolumeM3      float64
	Pieces        int
	Tags          []string
	CourierID     *string
	ScheduledDate string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	Events        []OrderEvent
}

// Clone returns a deep copy so that callers can mutate it without touching the store.
func (o Order) Clone() Order {
	out := o
	if o.Tags != nil {
		out.Tags = append([]string(nil), o.Tags...)
	}
	if o.CourierID != nil {
		id := *o.CourierID
		out.CourierID = &id
	}
	out.Sender = o.Sender.clone()
	out.Recipient = o.Recipient.clone()
	if o.Events != nil {
		out.Events = make([]OrderEvent, len(o.Events))
		for i, e := range o.Events {
			if e.Status != nil {
				st := *e.Status
				e.Status = &st
			}
			out.Events[i] = e
		}
	}
	return out
}

func (p Party) clone() Party {
	if p.Geo != nil {
		g := *p.Geo
		p.Geo = &g
	}
	return p
}

// HasCourier reports whether the order is assigned to courierID.
func (o Order) HasCourier(courierID string) bool {
	return o.CourierID != nil && *o.CourierID == courierID
}

// AppendEvent appends e keeping the timeline ascending: an event older than
// the last one is stamped with the last timestamp.
func (o *Order) AppendEvent(e OrderEvent) {
	if n := len(o.Events); n > 0 && e.At.Before(o.Events[n-1].At) {
		e.At = o.Events[n-1].At
	}
	o.Events = append(o.Events, e)
}

var (
	slaMediumFrom = decimal.NewFromInt(100_000)
	slaHighFrom   = decimal.NewFromInt(250_000)
)

// RiskForTotal derives the SLA risk class from an order total.
func RiskForTotal(total decimal.Decimal) SLARisk {
	switch {
	case total.GreaterThanOrEqual(slaHighFrom):
		return SLAHigh
	case total.GreaterThanOrEqual(slaMediumFrom):
		return SLAMedium
	default:
		return SLALow
	}
}

var allowedRisks = [...]SLARisk{SLALow, SLAMedium, SLAHigh}

var allowedPayments = [...]PaymentMethod{PaymentCash, PaymentCard, PaymentPrepaid, PaymentTransfer}

// Valid checks if the SLARisk is known.
func (r SLARisk) Valid() bool {
	for _, v := range allowedRisks {
		if r == v {
			return true
		}
	}
	return false
}

// Valid checks if the PaymentMethod is known.
func (m PaymentMethod) Valid() bool {
	for _, v := range allowedPayments {
		if m == v {
			return true
		}
	}
	return false
}
