// Package seed loads YAML fixtures into the order store.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"service-dispatch/internal/domain"
	"service-dispatch/internal/service/orders"
)

// File is the root of a fixture document.
type File struct {
	Couriers []Courier `yaml:"couriers"`
	Orders   []Order   `yaml:"orders"`
}

// Courier is a fixture courier.
type Courier struct {
	ID      string `yaml:"id"`
	Name    string `yaml:"name"`
	Phone   string `yaml:"phone"`
	Vehicle string `yaml:"vehicle"`
	Active  bool   `yaml:"active"`
}

// Party is a fixture sender or recipient.
type Party struct {
	Name    string   `yaml:"name"`
	Phone   string   `yaml:"phone"`
	Address string   `yaml:"address"`
	City    string   `yaml:"city"`
	Country string   `yaml:"country"`
	Lat     *float64 `yaml:"lat"`
	Lng     *float64 `yaml:"lng"`
}

// Order is a fixture order. Amounts are decimal strings.
type Order struct {
	ID            string   `yaml:"id"`
	Code          string   `yaml:"code"`
	Barcode       string   `yaml:"barcode"`
	Status        string   `yaml:"status"`
	Sender        Party    `yaml:"sender"`
	Recipient     Party    `yaml:"recipient"`
	ProductValue  string   `yaml:"productValue"`
	DeliveryFee   string   `yaml:"deliveryFee"`
	Currency      string   `yaml:"currency"`
	PaymentMethod string   `yaml:"paymentMethod"`
	WeightKg      float64  `yaml:"weightKg"`
	VolumeM3      float64  `yaml:"volumeM3"`
	Pieces        int      `yaml:"pieces"`
	Tags          []string `yaml:"tags"`
	CourierID     string   `yaml:"courierId"`
	ScheduledDate string   `yaml:"scheduledDate"`
}

// Target receives the fixtures. The orders service satisfies it.
type Target interface {
	UpsertCourier(ctx context.Context, c domain.Courier) error
	Create(ctx context.Context, in orders.CreateInput) (*domain.Order, error)
}

// Result counts what Apply wrote.
type Result struct {
	Couriers int
	Orders   int
}

// Load reads and parses a fixture file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed: %w", err)
	}
	return Parse(data)
}

// Parse decodes a fixture document.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	return &f, nil
}

// Apply writes couriers first, then orders, stopping at the first error.
func Apply(ctx context.Context, t Target, f *File) (Result, error) {
	var res Result
	if f == nil {
		return res, nil
	}
	for _, c := range f.Couriers {
		if err := t.UpsertCourier(ctx, c.toDomain()); err != nil {
			return res, fmt.Errorf("courier %q: %w", c.ID, err)
		}
		res.Couriers++
	}
	for i, o := range f.Orders {
		in, err := o.toInput()
		if err != nil {
			return res, fmt.Errorf("order #%d: %w", i+1, err)
		}
		if _, err := t.Create(ctx, in); err != nil {
			return res, fmt.Errorf("order #%d (%s): %w", i+1, o.Code, err)
		}
		res.Orders++
	}
	return res, nil
}

func (c Courier) toDomain() domain.Courier {
	return domain.Courier{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Vehicle: domain.VehicleCategory(c.Vehicle),
		Active:  c.Active,
	}
}

func (p Party) toDomain() domain.Party {
	out := domain.Party{
		Name:    p.Name,
		Phone:   p.Phone,
		Address: p.Address,
		City:    p.City,
		Country: p.Country,
	}
	if p.Lat != nil && p.Lng != nil {
		out.Geo = &domain.GeoPoint{Lat: *p.Lat, Lng: *p.Lng}
	}
	return out
}

func (o Order) toInput() (orders.CreateInput, error) {
	product, err := parseAmount("productValue", o.ProductValue)
	if err != nil {
		return orders.CreateInput{}, err
	}
	fee, err := parseAmount("deliveryFee", o.DeliveryFee)
	if err != nil {
		return orders.CreateInput{}, err
	}
	in := orders.CreateInput{
		ID:            o.ID,
		Code:          o.Code,
		Barcode:       o.Barcode,
		Status:        domain.OrderStatus(o.Status),
		Sender:        o.Sender.toDomain(),
		Recipient:     o.Recipient.toDomain(),
		ProductValue:  domain.Money{Amount: product, Currency: o.Currency},
		DeliveryFee:   domain.Money{Amount: fee, Currency: o.Currency},
		PaymentMethod: domain.PaymentMethod(o.PaymentMethod),
		WeightKg:      o.WeightKg,
		VolumeM3:      o.VolumeM3,
		Pieces:        o.Pieces,
		Tags:          o.Tags,
		ScheduledDate: o.ScheduledDate,
		Actor:         domain.SystemActor,
	}
	if o.CourierID != "" {
		id := o.CourierID
		in.CourierID = &id
	}
	return in, nil
}

func parseAmount(field, s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s: invalid amount %q", field, s)
	}
	return d, nil
}
