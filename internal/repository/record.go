package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"service-dispatch/internal/domain"
)

// orderDoc is the JSONB shape an order is persisted in. Filter and sort
// columns are duplicated next to it in the orders table.
type orderDoc struct {
	Code          string     `json:"code"`
	Barcode       string     `json:"barcode"`
	Status        string     `json:"status"`
	SLARisk       string     `json:"slaRisk"`
	Sender        partyDoc   `json:"sender"`
	Recipient     partyDoc   `json:"recipient"`
	ProductValue  moneyDoc   `json:"productValue"`
	DeliveryFee   moneyDoc   `json:"deliveryFee"`
	Total         moneyDoc   `json:"total"`
	PaymentMethod string     `json:"paymentMethod"`
	WeightKg      float64    `json:"weightKg"`
	VolumeM3      float64    `json:"volumeM3"`
	Pieces        int        `json:"pieces"`
	Tags          []string   `json:"tags,omitempty"`
	CourierID     *string    `json:"courierId,omitempty"`
	ScheduledDate string     `json:"scheduledDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	Events        []eventDoc `json:"events,omitempty"`
}

type partyDoc struct {
	Name    string   `json:"name"`
	Phone   string   `json:"phone"`
	Address string   `json:"address"`
	City    string   `json:"city"`
	Country string   `json:"country,omitempty"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type moneyDoc struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type eventDoc struct {
	At     time.Time `json:"at"`
	Type   string    `json:"type"`
	Status string    `json:"status,omitempty"`
	Actor  string    `json:"actor,omitempty"`
}

func encodeOrder(o *domain.Order) ([]byte, error) {
	d := orderDoc{
		Code:          o.Code,
		Barcode:       o.Barcode,
		Status:        string(o.Status),
		SLARisk:       string(o.SLARisk),
		Sender:        toPartyDoc(o.Sender),
		Recipient:     toPartyDoc(o.Recipient),
		ProductValue:  moneyDoc(o.ProductValue),
		DeliveryFee:   moneyDoc(o.DeliveryFee),
		Total:         moneyDoc(o.Total),
		PaymentMethod: string(o.PaymentMethod),
		WeightKg:      o.WeightKg,
		VolumeM3:      o.VolumeM3,
		Pieces:        o.Pieces,
		Tags:          o.Tags,
		CourierID:     o.CourierID,
		ScheduledDate: o.ScheduledDate,
		CreatedAt:     o.CreatedAt.UTC(),
		UpdatedAt:     o.UpdatedAt.UTC(),
	}
	for _, e := range o.Events {
		ed := eventDoc{At: e.At.UTC(), Type: string(e.Type), Actor: e.Actor}
		if e.Status != nil {
			ed.Status = string(*e.Status)
		}
		d.Events = append(d.Events, ed)
	}
	b, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("encode order %q: %w", o.ID, err)
	}
	return b, nil
}

func decodeOrder(id string, raw []byte) (domain.Order, error) {
	var d orderDoc
	if err := json.Unmarshal(raw, &d); err != nil {
		return domain.Order{}, fmt.Errorf("decode order %q: %w", id, err)
	}
	o := domain.Order{
		ID:            id,
		Code:          d.Code,
		Barcode:       d.Barcode,
		Status:        domain.OrderStatus(d.Status),
		SLARisk:       domain.SLARisk(d.SLARisk),
		Sender:        d.Sender.toDomain(),
		Recipient:     d.Recipient.toDomain(),
		ProductValue:  domain.Money(d.ProductValue),
		DeliveryFee:   domain.Money(d.DeliveryFee),
		Total:         domain.Money(d.Total),
		PaymentMethod: domain.PaymentMethod(d.PaymentMethod),
		WeightKg:      d.WeightKg,
		VolumeM3:      d.VolumeM3,
		Pieces:        d.Pieces,
		Tags:          d.Tags,
		CourierID:     d.CourierID,
		ScheduledDate: d.ScheduledDate,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
	for _, e := range d.Events {
		oe := domain.OrderEvent{At: e.At, Type: domain.EventType(e.Type), Actor: e.Actor}
		if e.Status != "" {
			st := domain.OrderStatus(e.Status)
			oe.Status = &st
		}
		o.Events = append(o.Events, oe)
	}
	return o, nil
}

func toPartyDoc(p domain.Party) partyDoc {
	d := partyDoc{Name: p.Name, Phone: p.Phone, Address: p.Address, City: p.City, Country: p.Country}
	if p.Geo != nil {
		lat, lng := p.Geo.Lat, p.Geo.Lng
		d.Lat, d.Lng = &lat, &lng
	}
	return d
}

func (d partyDoc) toDomain() domain.Party {
	p := domain.Party{Name: d.Name, Phone: d.Phone, Address: d.Address, City: d.City, Country: d.Country}
	if d.Lat != nil && d.Lng != nil {
		p.Geo = &domain.GeoPoint{Lat: *d.Lat, Lng: *d.Lng}
	}
	return p
}
