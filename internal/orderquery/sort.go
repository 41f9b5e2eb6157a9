package orderquery

import (
	"slices"
	"strings"

	"service-dispatch/internal/domain"
)

// Sort returns a copy of orders ordered by s. Equal keys keep their input
// order in both directions. An empty key returns an unsorted copy.
func Sort(orders []domain.Order, s domain.OrderSort) []domain.Order {
	out := slices.Clone(orders)
	cmp := comparator(s.Key)
	if cmp == nil {
		return out
	}
	if s.Dir == domain.SortDesc {
		asc := cmp
		cmp = func(a, b domain.Order) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, cmp)
	return out
}

func comparator(key domain.SortKey) func(a, b domain.Order) int {
	switch key {
	case domain.SortTotal:
		return func(a, b domain.Order) int { return a.Total.Amount.Cmp(b.Total.Amount) }
	case domain.SortStatus:
		// by enum value, not by lifecycle position
		return func(a, b domain.Order) int { return strings.Compare(string(a.Status), string(b.Status)) }
	case domain.SortCreatedAt:
		return func(a, b domain.Order) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case domain.SortScheduledDate:
		return func(a, b domain.Order) int { return strings.Compare(a.ScheduledDate, b.ScheduledDate) }
	default:
		return nil
	}
}
