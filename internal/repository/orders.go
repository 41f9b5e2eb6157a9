package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/orderquery"
)

const orderColumns = `id, doc`

// List filters, sorts and pages orders in SQL. Ties keep insertion order.
func (s *Store) List(ctx context.Context, q domain.OrderQuery, srt domain.OrderSort, page, size int) (domain.Paged[domain.Order], error) {
	if err := orderquery.ValidatePage(page, size); err != nil {
		return domain.Paged[domain.Order]{}, err
	}
	where, args := buildWhere(q)

	var total int
	if err := s.db.QueryRow(ctx, `SELECT count(*) FROM orders`+where, args...).Scan(&total); err != nil {
		return domain.Paged[domain.Order]{}, fmt.Errorf("count orders: %w", err)
	}

	from, _ := orderquery.Bounds(total, page, size)
	if from >= total {
		return domain.Paged[domain.Order]{Items: []domain.Order{}, Page: page, PageSize: size, Total: total}, nil
	}

	sql := `SELECT ` + orderColumns + ` FROM orders` + where + orderBy(srt) +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, size, from)

	items, err := queryOrders(ctx, s.db, sql, args...)
	if err != nil {
		return domain.Paged[domain.Order]{}, fmt.Errorf("list orders: %w", err)
	}
	return domain.Paged[domain.Order]{Items: items, Page: page, PageSize: size, Total: total}, nil
}

// Get returns an order by id, or nil, nil when it does not exist.
func (s *Store) Get(ctx context.Context, id string) (*domain.Order, error) {
	return getOrder(ctx, s.db, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
}

// GetMany returns the orders with the given ids in the same order, skipping unknown ids.
func (s *Store) GetMany(ctx context.Context, ids []string) ([]domain.Order, error) {
	found, err := queryOrders(ctx, s.db, `SELECT `+orderColumns+` FROM orders WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("get orders: %w", err)
	}
	byID := make(map[string]domain.Order, len(found))
	for _, o := range found {
		byID[o.ID] = o
	}
	out := make([]domain.Order, 0, len(ids))
	for _, id := range ids {
		if o, ok := byID[id]; ok {
			out = append(out, o)
		}
	}
	return out, nil
}

// ListByCourier returns every order assigned to courierID in insertion order.
func (s *Store) ListByCourier(ctx context.Context, courierID string) ([]domain.Order, error) {
	out, err := queryOrders(ctx, s.db,
		`SELECT `+orderColumns+` FROM orders WHERE courier_id = $1 ORDER BY seq`, courierID)
	if err != nil {
		return nil, fmt.Errorf("list orders of courier %q: %w", courierID, err)
	}
	return out, nil
}

// Create inserts a new order. Duplicate id, code or barcode is a conflict.
func (s *Store) Create(ctx context.Context, o *domain.Order) error {
	doc, err := encodeOrder(o)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
        INSERT INTO orders (id, code, barcode, status, sla_risk, sender_city, recipient_city,
                            courier_id, total_amount, scheduled_date, created_at, updated_at,
                            search_text, doc)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::numeric, $10, $11, $12, $13, $14)
    `, o.ID, o.Code, o.Barcode, string(o.Status), string(o.SLARisk), o.Sender.City, o.Recipient.City,
		o.CourierID, o.Total.Amount.String(), o.ScheduledDate, o.CreatedAt, o.UpdatedAt,
		orderquery.SearchText(*o), doc)
	if err != nil {
		return classify(fmt.Sprintf("create order %q", o.Code), err)
	}
	return nil
}

// Update locks the row, applies fn and saves the result in one transaction.
// It returns nil, nil when the order does not exist.
func (s *Store) Update(ctx context.Context, id string, fn func(o *domain.Order) error) (*domain.Order, error) {
	var out *domain.Order
	err := s.inTx(ctx, func(tx pgx.Tx) error {
		o, err := getOrder(ctx, tx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 FOR UPDATE`, id)
		if err != nil || o == nil {
			return err
		}
		if err := fn(o); err != nil {
			return err
		}
		o.ID = id
		if err := saveOrder(ctx, tx, o); err != nil {
			return err
		}
		out = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func saveOrder(ctx context.Context, q querier, o *domain.Order) error {
	doc, err := encodeOrder(o)
	if err != nil {
		return err
	}
	ct, err := q.Exec(ctx, `
        UPDATE orders
        SET status         = $2,
            sender_city    = $3,
            recipient_city = $4,
            courier_id     = $5,
            scheduled_date = $6,
            updated_at     = $7,
            search_text    = $8,
            doc            = $9
        WHERE id = $1
    `, o.ID, string(o.Status), o.Sender.City, o.Recipient.City, o.CourierID, o.ScheduledDate,
		o.UpdatedAt, orderquery.SearchText(*o), doc)
	if err != nil {
		return fmt.Errorf("save order %q: %w", o.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("save order %q: %w", o.ID, apperr.ErrNotFound)
	}
	return nil
}

func getOrder(ctx context.Context, q querier, sql string, args ...any) (*domain.Order, error) {
	var (
		id  string
		raw []byte
	)
	if err := q.QueryRow(ctx, sql, args...).Scan(&id, &raw); err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	o, err := decodeOrder(id, raw)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func queryOrders(ctx context.Context, q querier, sql string, args ...any) ([]domain.Order, error) {
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make([]domain.Order, 0)
	for rows.Next() {
		var (
			id  string
			raw []byte
		)
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, err
		}
		o, err := decodeOrder(id, raw)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// buildWhere renders q as a WHERE clause with positional arguments.
func buildWhere(q domain.OrderQuery) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if text := orderquery.NormalizeText(q.Text); text != "" {
		conds = append(conds, "strpos(search_text, "+arg(text)+") > 0")
	}
	if len(q.Statuses) > 0 {
		list := make([]string, len(q.Statuses))
		for i, st := range q.Statuses {
			list[i] = string(st)
		}
		conds = append(conds, "status = ANY("+arg(list)+")")
	}
	if len(q.SLA) > 0 {
		list := make([]string, len(q.SLA))
		for i, r := range q.SLA {
			list[i] = string(r)
		}
		conds = append(conds, "sla_risk = ANY("+arg(list)+")")
	}
	if q.City != "" {
		p := arg(q.City)
		conds = append(conds, "(sender_city = "+p+" OR recipient_city = "+p+")")
	}
	switch q.Courier.Match {
	case domain.CourierNone:
		conds = append(conds, "courier_id IS NULL")
	case domain.CourierExact:
		conds = append(conds, "courier_id = "+arg(q.Courier.ID))
	}
	if q.MinTotal != nil {
		conds = append(conds, "total_amount >= "+arg(q.MinTotal.String())+"::numeric")
	}
	if q.MaxTotal != nil {
		conds = append(conds, "total_amount <= "+arg(q.MaxTotal.String())+"::numeric")
	}
	if q.DateFrom != "" {
		conds = append(conds, `scheduled_date COLLATE "C" >= `+arg(q.DateFrom))
	}
	if q.DateTo != "" {
		conds = append(conds, `scheduled_date COLLATE "C" <= `+arg(q.DateTo))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func orderBy(s domain.OrderSort) string {
	var col string
	switch s.Key {
	case domain.SortCreatedAt:
		col = "created_at"
	case domain.SortScheduledDate:
		col = `scheduled_date COLLATE "C"`
	case domain.SortTotal:
		col = "total_amount"
	case domain.SortStatus:
		col = `status COLLATE "C"`
	default:
		return " ORDER BY seq"
	}
	dir := " ASC"
	if s.Dir == domain.SortDesc {
		dir = " DESC"
	}
	return " ORDER BY " + col + dir + ", seq ASC"
}
