package domain

import (
	"fmt"
	"time"
)

// BagStatus is the lifecycle state of a bag.
type BagStatus string

// Bag statuses.
const (
	BagCreated  BagStatus = "created"
	BagHandover BagStatus = "handover"
)

// Bag groups the orders confirmed in one handover to one courier.
type Bag struct {
	ID        string
	Number    string
	CourierID string
	OrderIDs  []string
	Status    BagStatus
	CreatedAt time.Time
}

// BagNumber formats a sequence value as BAG-NNNNNN.
func BagNumber(seq int64) string {
	return fmt.Sprintf("BAG-%06d", seq)
}

// NewBag builds a handed-over bag. orderIDs is copied.
func NewBag(id, courierID string, orderIDs []string, seq int64, now time.Time) Bag {
	return Bag{
		ID:        id,
		Number:    BagNumber(seq),
		CourierID: courierID,
		OrderIDs:  append([]string(nil), orderIDs...),
		Status:    BagHandover,
		CreatedAt: now,
	}
}
