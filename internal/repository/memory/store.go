// Package memory is an in-process order store guarded by a single RWMutex.
package memory

import (
	"context"
	"fmt"
	"sync"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/orderquery"
)

// Store keeps orders in insertion order, which is the input order the sort
// engine preserves for equal keys.
type Store struct {
	mu sync.RWMutex

	orders   []domain.Order
	orderIdx map[string]int
	barcodes map[string]string
	codes    map[string]string

	couriers   []domain.Courier
	courierIdx map[string]int

	bags    []domain.Bag
	bagIdx  map[string]int
	numbers map[string]string
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		orderIdx:   make(map[string]int),
		barcodes:   make(map[string]string),
		codes:      make(map[string]string),
		courierIdx: make(map[string]int),
		bagIdx:     make(map[string]int),
		numbers:    make(map[string]string),
	}
}

// List filters, sorts and pages a snapshot of the store.
func (s *Store) List(ctx context.Context, q domain.OrderQuery, srt domain.OrderSort, page, size int) (domain.Paged[domain.Order], error) {
	if err := ctx.Err(); err != nil {
		return domain.Paged[domain.Order]{}, err
	}
	s.mu.RLock()
	res, err := orderquery.Run(s.orders, q, srt, page, size)
	if err == nil {
		for i := range res.Items {
			res.Items[i] = res.Items[i].Clone()
		}
	}
	s.mu.RUnlock()
	return res, err
}

// Get returns an order by id, or nil, nil when it does not exist.
func (s *Store) Get(ctx context.Context, id string) (*domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	i, ok := s.orderIdx[id]
	if !ok {
		return nil, nil
	}
	o := s.orders[i].Clone()
	return &o, nil
}

// GetMany returns the orders with the given ids in the same order, skipping unknown ids.
func (s *Store) GetMany(ctx context.Context, ids []string) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Order, 0, len(ids))
	for _, id := range ids {
		if i, ok := s.orderIdx[id]; ok {
			out = append(out, s.orders[i].Clone())
		}
	}
	return out, nil
}

// ListByCourier returns every order assigned to courierID in insertion order.
func (s *Store) ListByCourier(ctx context.Context, courierID string) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Order
	for _, o := range s.orders {
		if o.HasCourier(courierID) {
			out = append(out, o.Clone())
		}
	}
	return out, nil
}

// Create stores a new order. Duplicate id, code or barcode is a conflict.
func (s *Store) Create(ctx context.Context, o *domain.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orderIdx[o.ID]; ok {
		return fmt.Errorf("order id %q: %w", o.ID, apperr.ErrConflict)
	}
	if _, ok := s.codes[o.Code]; ok {
		return fmt.Errorf("order code %q: %w", o.Code, apperr.ErrConflict)
	}
	if _, ok := s.barcodes[o.Barcode]; ok {
		return fmt.Errorf("order barcode %q: %w", o.Barcode, apperr.ErrConflict)
	}
	s.orderIdx[o.ID] = len(s.orders)
	s.codes[o.Code] = o.ID
	s.barcodes[o.Barcode] = o.ID
	s.orders = append(s.orders, o.Clone())
	return nil
}

// Update applies fn to a copy of the order and stores the result if fn succeeds.
// It returns nil, nil when the order does not exist.
func (s *Store) Update(ctx context.Context, id string, fn func(o *domain.Order) error) (*domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i, ok := s.orderIdx[id]
	if !ok {
		return nil, nil
	}
	next := s.orders[i].Clone()
	if err := fn(&next); err != nil {
		return nil, err
	}
	next.ID = id
	s.orders[i] = next
	out := next.Clone()
	return &out, nil
}

// Len returns the number of stored orders.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.orders)
}
