package handlers

import (
	"time"

	"github.com/shopspring/decimal"
)

type moneyDTO struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

type geoDTO struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type partyDTO struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	Address string  `json:"address"`
	City    string  `json:"city"`
	Country string  `json:"country,omitempty"`
	Geo     *geoDTO `json:"geo,omitempty"`
}

type eventDTO struct {
	At     time.Time `json:"at"`
	Type   string    `json:"type"`
	Status *string   `json:"status,omitempty"`
	Actor  string    `json:"actor,omitempty"`
}

type orderDTO struct {
	ID            string     `json:"id"`
	Code          string     `json:"code"`
	Barcode       string     `json:"barcode"`
	Status        string     `json:"status"`
	SLARisk       string     `json:"slaRisk"`
	Sender        partyDTO   `json:"sender"`
	Recipient     partyDTO   `json:"recipient"`
	ProductValue  moneyDTO   `json:"productValue"`
	DeliveryFee   moneyDTO   `json:"deliveryFee"`
	Total         moneyDTO   `json:"total"`
	PaymentMethod string     `json:"paymentMethod"`
	WeightKg      float64    `json:"weightKg"`
	VolumeM3      float64    `json:"volumeM3"`
	Pieces        int        `json:"pieces"`
	Tags          []string   `json:"tags"`
	CourierID     *string    `json:"courierId"`
	ScheduledDate string     `json:"scheduledDate"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	Events        []eventDTO `json:"events"`
}

type pagedOrdersDTO struct {
	Items    []orderDTO `json:"items"`
	Page     int        `json:"page"`
	PageSize int        `json:"pageSize"`
	Total    int        `json:"total"`
}

type createOrderRequest struct {
	ID            string   `json:"id,omitempty"`
	Code          string   `json:"code,omitempty"`
	Barcode       string   `json:"barcode,omitempty"`
	Status        string   `json:"status,omitempty"`
	Sender        partyDTO `json:"sender"`
	Recipient     partyDTO `json:"recipient"`
	ProductValue  moneyDTO `json:"productValue"`
	DeliveryFee   moneyDTO `json:"deliveryFee"`
	PaymentMethod string   `json:"paymentMethod"`
	WeightKg      float64  `json:"weightKg"`
	VolumeM3      float64  `json:"volumeM3"`
	Pieces        int      `json:"pieces"`
	Tags          []string `json:"tags,omitempty"`
	CourierID     *string  `json:"courierId,omitempty"`
	ScheduledDate string   `json:"scheduledDate"`
}

type patchOrderRequest struct {
	Status        *string   `json:"status,omitempty"`
	CourierID     *string   `json:"courierId,omitempty"`
	ClearCourier  bool      `json:"clearCourier,omitempty"`
	ScheduledDate *string   `json:"scheduledDate,omitempty"`
	Tags          *[]string `json:"tags,omitempty"`
	Sender        *partyDTO `json:"sender,omitempty"`
	Recipient     *partyDTO `json:"recipient,omitempty"`
	PaymentMethod *string   `json:"paymentMethod,omitempty"`
	WeightKg      *float64  `json:"weightKg,omitempty"`
	VolumeM3      *float64  `json:"volumeM3,omitempty"`
	Pieces        *int      `json:"pieces,omitempty"`
}

type bulkRequest struct {
	IDs   []string          `json:"ids"`
	Patch patchOrderRequest `json:"patch"`
}

type bulkResponse struct {
	OK   int `json:"ok"`
	Fail int `json:"fail"`
}

type courierDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Vehicle string `json:"vehicle"`
	Active  bool   `json:"active"`
}

type plannedDTO struct {
	OrderID   string `json:"orderId"`
	Code      string `json:"code"`
	Barcode   string `json:"barcode"`
	Confirmed bool   `json:"confirmed"`
}

type feedbackDTO struct {
	OK      bool   `json:"ok"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Barcode string `json:"barcode"`
	OrderID string `json:"orderId,omitempty"`
}

type sessionDTO struct {
	ID        string       `json:"id"`
	State     string       `json:"state"`
	CourierID string       `json:"courierId,omitempty"`
	Planned   []plannedDTO `json:"planned"`
	Confirmed []string     `json:"confirmed"`
	Feedback  *feedbackDTO `json:"feedback,omitempty"`
	BagID     string       `json:"bagId,omitempty"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type selectCourierRequest struct {
	CourierID string `json:"courierId"`
}

type scanRequest struct {
	Barcode string `json:"barcode"`
}

type scanResponse struct {
	Session  sessionDTO  `json:"session"`
	Feedback feedbackDTO `json:"feedback"`
}

type bagDTO struct {
	ID        string    `json:"id"`
	Number    string    `json:"number"`
	CourierID string    `json:"courierId"`
	OrderIDs  []string  `json:"orderIds"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type commitResponse struct {
	Session sessionDTO `json:"session"`
	Bag     bagDTO     `json:"bag"`
}
