package kafka

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/service/orders"
)

// EventDTO is the wire form of an upstream order event.
type EventDTO struct {
	Type      string      `json:"type"`
	OrderID   string      `json:"order_id"`
	Status    string      `json:"status,omitempty"`
	CourierID string      `json:"courier_id,omitempty"`
	Actor     string      `json:"actor,omitempty"`
	Order     *OrderDTO   `json:"order,omitempty"`
	Courier   *CourierDTO `json:"courier,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// PartyDTO is a sender or recipient on the wire.
type PartyDTO struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
	City    string   `json:"city"`
	Country string   `json:"country,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// OrderDTO is the payload of a "created" event.
type OrderDTO struct {
	Code          string          `json:"code"`
	Barcode       string          `json:"barcode"`
	Status        string          `json:"status,omitempty"`
	Sender        PartyDTO        `json:"sender"`
	Recipient     PartyDTO        `json:"recipient"`
	ProductValue  decimal.Decimal `json:"product_value"`
	DeliveryFee   decimal.Decimal `json:"delivery_fee"`
	Currency      string          `json:"currency"`
	PaymentMethod string          `json:"payment_method"`
	WeightKg      float64         `json:"weight_kg"`
	VolumeM3      float64         `json:"volume_m3"`
	Pieces        int             `json:"pieces"`
	Tags          []string        `json:"tags,omitempty"`
	CourierID     *string         `json:"courier_id,omitempty"`
	ScheduledDate string          `json:"scheduled_date"`
}

// CourierDTO is the payload of a "courier_upserted" event.
type CourierDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Vehicle string `json:"vehicle"`
	Active  bool   `json:"active"`
}

// ToDomain converts EventDTO to orders.Event
func ToDomain(dto EventDTO) orders.Event {
	ev := orders.Event{
		Type:      strings.ToLower(strings.TrimSpace(dto.Type)),
		OrderID:   strings.TrimSpace(dto.OrderID),
		Status:    strings.TrimSpace(dto.Status),
		CourierID: strings.TrimSpace(dto.CourierID),
		Actor:     strings.TrimSpace(dto.Actor),
		At:        dto.CreatedAt,
	}
	if dto.Order != nil {
		in := dto.Order.toInput()
		in.ID = ev.OrderID
		in.Actor = ev.Actor
		ev.Order = &in
	}
	if c := dto.Courier; c != nil {
		ev.Courier = &orders.CourierInput{
			ID:      strings.TrimSpace(c.ID),
			Name:    c.Name,
			Phone:   c.Phone,
			Vehicle: c.Vehicle,
			Active:  c.Active,
		}
	}
	return ev
}

func (o OrderDTO) toInput() orders.CreateInput {
	return orders.CreateInput{
		Code:          strings.TrimSpace(o.Code),
		Barcode:       strings.TrimSpace(o.Barcode),
		Status:        domain.OrderStatus(strings.ToLower(strings.TrimSpace(o.Status))),
		Sender:        o.Sender.toDomain(),
		Recipient:     o.Recipient.toDomain(),
		ProductValue:  domain.Money{Amount: o.ProductValue, Currency: o.Currency},
		DeliveryFee:   domain.Money{Amount: o.DeliveryFee, Currency: o.Currency},
		PaymentMethod: domain.PaymentMethod(o.PaymentMethod),
		WeightKg:      o.WeightKg,
		VolumeM3:      o.VolumeM3,
		Pieces:        o.Pieces,
		Tags:          o.Tags,
		CourierID:     o.CourierID,
		ScheduledDate: o.ScheduledDate,
	}
}

func (p PartyDTO) toDomain() domain.Party {
	out := domain.Party{Name: p.Name, Phone: p.Phone, Address: p.Address, City: p.City, Country: p.Country}
	if p.Lat != nil && p.Lng != nil {
		out.Geo = &domain.GeoPoint{Lat: *p.Lat, Lng: *p.Lng}
	}
	return out
}

// BagEventDTO announces a committed handover bag.
type BagEventDTO struct {
	BagID     string    `json:"bag_id"`
	Number    string    `json:"number"`
	CourierID string    `json:"courier_id"`
	OrderIDs  []string  `json:"order_ids"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// FromBag converts a domain bag into its wire form.
func FromBag(b domain.Bag) BagEventDTO {
	return BagEventDTO{
		BagID:     b.ID,
		Number:    b.Number,
		CourierID: b.CourierID,
		OrderIDs:  append([]string(nil), b.OrderIDs...),
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
	}
}
