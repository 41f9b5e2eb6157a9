// Package orderquery filters, sorts and pages order snapshots.
// Every function is pure: inputs are never mutated.
package orderquery

import (
	"strings"

	"service-dispatch/internal/domain"
)

// Filter returns the orders matching every constraint present in q.
func Filter(orders []domain.Order, q domain.OrderQuery) []domain.Order {
	text := NormalizeText(q.Text)
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if Match(o, q, text) {
			out = append(out, o)
		}
	}
	return out
}

// NormalizeText prepares a free-text constraint for matching against SearchText.
func NormalizeText(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Match reports whether o satisfies q. text must come from NormalizeText(q.Text).
func Match(o domain.Order, q domain.OrderQuery, text string) bool {
	if text != "" && !strings.Contains(SearchText(o), text) {
		return false
	}
	if len(q.Statuses) > 0 && !contains(q.Statuses, o.Status) {
		return false
	}
	if len(q.SLA) > 0 && !contains(q.SLA, o.SLARisk) {
		return false
	}
	if q.City != "" && o.Sender.City != q.City && o.Recipient.City != q.City {
		return false
	}
	switch q.Courier.Match {
	case domain.CourierNone:
		if o.CourierID != nil {
			return false
		}
	case domain.CourierExact:
		if !o.HasCourier(q.Courier.ID) {
			return false
		}
	}
	if q.MinTotal != nil && o.Total.Amount.LessThan(*q.MinTotal) {
		return false
	}
	if q.MaxTotal != nil && o.Total.Amount.GreaterThan(*q.MaxTotal) {
		return false
	}
	// YYYY-MM-DD compares lexicographically.
	if q.DateFrom != "" && o.ScheduledDate < q.DateFrom {
		return false
	}
	if q.DateTo != "" && o.ScheduledDate > q.DateTo {
		return false
	}
	return true
}

// SearchText is the lower-cased haystack free-text queries match against.
func SearchText(o domain.Order) string {
	parts := []string{
		o.Code, o.Barcode,
		o.Sender.Name, o.Sender.Phone, o.Sender.Address, o.Sender.City,
		o.Recipient.Name, o.Recipient.Phone, o.Recipient.Address, o.Recipient.City,
		string(o.Status), string(o.PaymentMethod),
	}
	parts = append(parts, o.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

func contains[T comparable](set []T, v T) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
