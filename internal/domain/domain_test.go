package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"service-dispatch/internal/domain"
)

func TestOrderStatus_CanTransition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to domain.OrderStatus
		want     bool
	}{
		{domain.StatusProcessing, domain.StatusAssigned, true},
		{domain.StatusProcessing, domain.StatusCancelled, true},
		{domain.StatusProcessing, domain.StatusDelivered, false},
		{domain.StatusOutForDelivery, domain.StatusDelivered, true},
		{domain.StatusDelivered, domain.StatusAssigned, false},
		{domain.StatusCancelled, domain.StatusProcessing, false},
		{domain.StatusAssigned, domain.StatusAssigned, true},
		{domain.OrderStatus("bogus"), domain.OrderStatus("bogus"), false},
	}
	for _, tc := range cases {
		require.Equalf(t, tc.want, tc.from.CanTransition(tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestStatuses_AllValid(t *testing.T) {
	t.Parallel()

	list := domain.Statuses()
	require.Len(t, list, 9)
	for _, s := range list {
		require.True(t, s.Valid(), s)
	}
	list[0] = "mutated"
	require.Equal(t, domain.StatusProcessing, domain.Statuses()[0])
}

func TestRiskForTotal(t *testing.T) {
	t.Parallel()

	require.Equal(t, domain.SLALow, domain.RiskForTotal(decimal.NewFromInt(99_999)))
	require.Equal(t, domain.SLAMedium, domain.RiskForTotal(decimal.NewFromInt(100_000)))
	require.Equal(t, domain.SLAHigh, domain.RiskForTotal(decimal.NewFromInt(250_000)))
}

func TestNewBag_CopiesIDsAndFormatsNumber(t *testing.T) {
	t.Parallel()

	ids := []string{"o-1", "o-2"}
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	bag := domain.NewBag("bag-1", "c-1", ids, 42, now)
	ids[0] = "changed"

	require.Equal(t, "BAG-000042", bag.Number)
	require.Equal(t, []string{"o-1", "o-2"}, bag.OrderIDs)
	require.Equal(t, domain.BagHandover, bag.Status)
	require.Equal(t, "c-1", bag.CourierID)
	require.True(t, bag.CreatedAt.Equal(now))
}

func TestOrder_AppendEvent_KeepsAscending(t *testing.T) {
	t.Parallel()

	t0 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	var o domain.Order
	o.AppendEvent(domain.OrderEvent{At: t0, Type: domain.EventCreated})
	o.AppendEvent(domain.OrderEvent{At: t0.Add(-time.Hour), Type: domain.EventStatusChanged})

	require.Len(t, o.Events, 2)
	require.False(t, o.Events[1].At.Before(o.Events[0].At))
}

func TestOrder_Clone_IsDeep(t *testing.T) {
	t.Parallel()

	courier := "c-1"
	st := domain.StatusAssigned
	o := domain.Order{
		Tags:      []string{"fragile"},
		CourierID: &courier,
		Sender:    domain.Party{Geo: &domain.GeoPoint{Lat: 1}},
		Events:    []domain.OrderEvent{{Status: &st}},
	}

	c := o.Clone()
	c.Tags[0] = "x"
	*c.CourierID = "c-2"
	c.Sender.Geo.Lat = 2
	*c.Events[0].Status = domain.StatusPicked

	require.Equal(t, "fragile", o.Tags[0])
	require.Equal(t, "c-1", *o.CourierID)
	require.Equal(t, 1.0, o.Sender.Geo.Lat)
	require.Equal(t, domain.StatusAssigned, *o.Events[0].Status)
	require.True(t, c.HasCourier("c-2"))
}

func TestOrderPatch_Empty(t *testing.T) {
	t.Parallel()

	require.True(t, domain.OrderPatch{}.Empty())
	require.False(t, domain.OrderPatch{ClearCourier: true}.Empty())
}

func TestValidateDateAndPhone(t *testing.T) {
	t.Parallel()

	require.True(t, domain.ValidateDate("2026-02-28"))
	require.False(t, domain.ValidateDate("2026-02-30"))
	require.False(t, domain.ValidateDate("28.02.2026"))
	require.True(t, domain.ValidatePhone("+79990001122"))
	require.False(t, domain.ValidatePhone("8999"))
}
