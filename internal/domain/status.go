package domain

import (
	"regexp"
	"time"
)

// OrderStatus is a point of the order lifecycle.
type OrderStatus string

// List of order statuses.
const (
	StatusProcessing     OrderStatus = "processing"
	StatusAssigned       OrderStatus = "assigned"
	StatusPicked         OrderStatus = "picked"
	StatusInTransit      OrderStatus = "in_transit"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusPostponed      OrderStatus = "postponed"
	StatusCancelled      OrderStatus = "cancelled"
	StatusReturned       OrderStatus = "returned"
)

var allowedStatuses = [...]OrderStatus{
	StatusProcessing, StatusAssigned, StatusPicked, StatusInTransit,
	StatusOutForDelivery, StatusDelivered, StatusPostponed, StatusCancelled,
	StatusReturned,
}

// transitions lists the statuses reachable from each status.
// Terminal statuses map to an empty list.
var transitions = map[OrderStatus][]OrderStatus{
	StatusProcessing:     {StatusAssigned, StatusPostponed, StatusCancelled},
	StatusAssigned:       {StatusProcessing, StatusPicked, StatusPostponed, StatusCancelled},
	StatusPicked:         {StatusAssigned, StatusInTransit, StatusReturned, StatusCancelled},
	StatusInTransit:      {StatusAssigned, StatusOutForDelivery, StatusPostponed, StatusReturned},
	StatusOutForDelivery: {StatusDelivered, StatusPostponed, StatusReturned},
	StatusPostponed:      {StatusProcessing, StatusAssigned, StatusOutForDelivery, StatusCancelled, StatusReturned},
	StatusDelivered:      {StatusReturned},
	StatusReturned:       {StatusProcessing},
	StatusCancelled:      {},
}

// Statuses returns all statuses in lifecycle order.
func Statuses() []OrderStatus {
	out := make([]OrderStatus, len(allowedStatuses))
	copy(out, allowedStatuses[:])
	return out
}

// Valid checks if the OrderStatus is known.
func (s OrderStatus) Valid() bool {
	for _, v := range allowedStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// CanTransition reports whether an order may move from s to next.
// Staying in the same status is always allowed.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	if s == next {
		return s.Valid()
	}
	for _, v := range transitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

// rePhone accepts international numbers with 10 to 15 digits.
var rePhone = regexp.MustCompile(`^\+[0-9]{10,15}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}

// DateLayout is the fixed scheduled date format.
const DateLayout = "2006-01-02"

// ValidateDate checks that s is a YYYY-MM-DD calendar date.
func ValidateDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
