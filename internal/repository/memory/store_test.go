package memory_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/ports/handovertx"
	"service-dispatch/internal/repository/memory"
)

func newOrder(n int, status domain.OrderStatus, total int64) *domain.Order {
	return &domain.Order{
		ID:        fmt.Sprintf("o-%d", n),
		Code:      fmt.Sprintf("AB-%03d", n),
		Barcode:   fmt.Sprintf("1000000000%02d", n),
		Status:    status,
		Total:     domain.Money{Amount: decimal.NewFromInt(total), Currency: "RUB"},
		CreatedAt: time.Date(2024, 5, 1, 0, n, 0, 0, time.UTC),
	}
}

func seeded(t *testing.T, orders ...*domain.Order) *memory.Store {
	t.Helper()
	s := memory.New()
	for _, o := range orders {
		require.NoError(t, s.Create(context.Background(), o))
	}
	return s
}

func TestStore_CreateGet_ReturnsCopies(t *testing.T) {
	t.Parallel()

	in := newOrder(1, domain.StatusProcessing, 10)
	in.Tags = []string{"a"}
	s := seeded(t, in)

	in.Tags[0] = "mutated"
	got, err := s.Get(context.Background(), "o-1")
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, got.Tags)

	got.Tags[0] = "mutated"
	again, err := s.Get(context.Background(), "o-1")
	require.NoError(t, err)
	require.Equal(t, []string{"a"}, again.Tags)
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	got, err := memory.New().Get(context.Background(), "nope")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestStore_CreateConflicts(t *testing.T) {
	t.Parallel()

	s := seeded(t, newOrder(1, domain.StatusProcessing, 10))

	dupID := newOrder(2, domain.StatusProcessing, 10)
	dupID.ID = "o-1"
	require.ErrorIs(t, s.Create(context.Background(), dupID), apperr.ErrConflict)

	dupCode := newOrder(3, domain.StatusProcessing, 10)
	dupCode.Code = "AB-001"
	require.ErrorIs(t, s.Create(context.Background(), dupCode), apperr.ErrConflict)

	dupBarcode := newOrder(4, domain.StatusProcessing, 10)
	dupBarcode.Barcode = "100000000001"
	require.ErrorIs(t, s.Create(context.Background(), dupBarcode), apperr.ErrConflict)
	require.Equal(t, 1, s.Len())
}

func TestStore_ListUsesInsertionOrderForTies(t *testing.T) {
	t.Parallel()

	s := seeded(t,
		newOrder(1, domain.StatusProcessing, 100),
		newOrder(2, domain.StatusProcessing, 50),
		newOrder(3, domain.StatusProcessing, 100),
	)

	page, err := s.List(context.Background(), domain.OrderQuery{}, domain.OrderSort{Key: domain.SortTotal, Dir: domain.SortDesc}, 1, 10)
	require.NoError(t, err)
	require.Equal(t, 3, page.Total)
	require.Equal(t, "o-1", page.Items[0].ID)
	require.Equal(t, "o-3", page.Items[1].ID)
	require.Equal(t, "o-2", page.Items[2].ID)

	_, err = s.List(context.Background(), domain.OrderQuery{}, domain.DefaultSort, 0, 10)
	require.ErrorIs(t, err, apperr.ErrInvalid)
}

func TestStore_Update(t *testing.T) {
	t.Parallel()

	s := seeded(t, newOrder(1, domain.StatusProcessing, 10))
	ctx := context.Background()

	got, err := s.Update(ctx, "o-1", func(o *domain.Order) error {
		o.Status = domain.StatusAssigned
		o.ID = "hijack"
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, "o-1", got.ID)
	require.Equal(t, domain.StatusAssigned, got.Status)

	boom := errors.New("boom")
	_, err = s.Update(ctx, "o-1", func(o *domain.Order) error {
		o.Status = domain.StatusCancelled
		return boom
	})
	require.ErrorIs(t, err, boom)

	again, err := s.Get(ctx, "o-1")
	require.NoError(t, err)
	require.Equal(t, domain.StatusAssigned, again.Status)

	missing, err := s.Update(ctx, "nope", func(*domain.Order) error { return nil })
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestStore_ListByCourierAndGetMany(t *testing.T) {
	t.Parallel()

	c1 := "c1"
	a, b := newOrder(1, domain.StatusProcessing, 10), newOrder(2, domain.StatusProcessing, 10)
	a.CourierID = &c1
	s := seeded(t, a, b)

	list, err := s.ListByCourier(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "o-1", list[0].ID)

	many, err := s.GetMany(context.Background(), []string{"o-2", "missing", "o-1"})
	require.NoError(t, err)
	require.Len(t, many, 2)
	require.Equal(t, "o-2", many[0].ID)
	require.Equal(t, "o-1", many[1].ID)
}

func TestStore_WithTx_AppliesOnSuccess(t *testing.T) {
	t.Parallel()

	s := seeded(t, newOrder(1, domain.StatusProcessing, 10))
	ctx := context.Background()

	err := s.WithTx(ctx, func(tx handovertx.Repository) error {
		o, err := tx.GetOrderForUpdate(ctx, "o-1")
		require.NoError(t, err)
		o.Status = domain.StatusAssigned
		require.NoError(t, tx.SaveOrder(ctx, o))

		staged, err := tx.GetOrderForUpdate(ctx, "o-1")
		require.NoError(t, err)
		require.Equal(t, domain.StatusAssigned, staged.Status)

		bag := domain.NewBag("b-1", "c1", []string{"o-1"}, 1, time.Now())
		return tx.InsertBag(ctx, &bag)
	})
	require.NoError(t, err)

	got, _ := s.Get(ctx, "o-1")
	require.Equal(t, domain.StatusAssigned, got.Status)

	bag, err := s.GetBag(ctx, "b-1")
	require.NoError(t, err)
	require.Equal(t, "BAG-000001", bag.Number)

	n, err := s.CountBags(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, n)
}

func TestStore_WithTx_RollsBackOnError(t *testing.T) {
	t.Parallel()

	s := seeded(t, newOrder(1, domain.StatusProcessing, 10))
	ctx := context.Background()
	fail := errors.New("fail")

	err := s.WithTx(ctx, func(tx handovertx.Repository) error {
		o, _ := tx.GetOrderForUpdate(ctx, "o-1")
		o.Status = domain.StatusAssigned
		require.NoError(t, tx.SaveOrder(ctx, o))
		bag := domain.NewBag("b-1", "c1", []string{"o-1"}, 1, time.Now())
		require.NoError(t, tx.InsertBag(ctx, &bag))
		return fail
	})
	require.ErrorIs(t, err, fail)

	got, _ := s.Get(ctx, "o-1")
	require.Equal(t, domain.StatusProcessing, got.Status)
	bags, err := s.ListBags(ctx, "")
	require.NoError(t, err)
	require.Empty(t, bags)
}

func TestStore_WithTx_DuplicateBagNumber(t *testing.T) {
	t.Parallel()

	s := memory.New()
	ctx := context.Background()
	first := domain.NewBag("b-1", "c1", nil, 1, time.Now())
	require.NoError(t, s.WithTx(ctx, func(tx handovertx.Repository) error { return tx.InsertBag(ctx, &first) }))

	second := domain.NewBag("b-2", "c1", nil, 1, time.Now())
	err := s.WithTx(ctx, func(tx handovertx.Repository) error { return tx.InsertBag(ctx, &second) })
	require.ErrorIs(t, err, apperr.ErrConflict)
}

func TestStore_WithTx_SaveUnknownOrder(t *testing.T) {
	t.Parallel()

	s := memory.New()
	ctx := context.Background()
	err := s.WithTx(ctx, func(tx handovertx.Repository) error {
		return tx.SaveOrder(ctx, newOrder(9, domain.StatusAssigned, 1))
	})
	require.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestStore_Couriers(t *testing.T) {
	t.Parallel()

	s := memory.New()
	ctx := context.Background()
	require.NoError(t, s.UpsertCourier(ctx, domain.Courier{ID: "c1", Name: "Ann"}))
	require.NoError(t, s.UpsertCourier(ctx, domain.Courier{ID: "c2", Name: "Bob"}))
	require.NoError(t, s.UpsertCourier(ctx, domain.Courier{ID: "c1", Name: "Anna"}))

	list, err := s.ListCouriers(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "Anna", list[0].Name)

	c, err := s.GetCourier(ctx, "c2")
	require.NoError(t, err)
	require.Equal(t, "Bob", c.Name)

	missing, err := s.GetCourier(ctx, "c3")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	t.Parallel()

	s := seeded(t, newOrder(1, domain.StatusProcessing, 10))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Update(ctx, "o-1", func(o *domain.Order) error {
				o.Pieces++
				return nil
			})
			require.NoError(t, err)
		}()
	}
	wg.Wait()

	got, _ := s.Get(ctx, "o-1")
	require.Equal(t, 50, got.Pieces)
}

func TestStore_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := memory.New().Get(ctx, "o-1")
	require.ErrorIs(t, err, context.Canceled)
}
