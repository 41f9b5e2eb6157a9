package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/logx"
)

const (
	createAttempts = 3
	// ExportLimit caps the number of rows a single export reads.
	ExportLimit = 10_000
)

// Service coordinates order business logic and orchestrates repository calls.
type Service struct {
	repo             orderRepository
	ids              IDGenerator
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates and configures an order Service.
func NewService(r orderRepository, ids IDGenerator, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if ids == nil {
		ids = NewIDGenerator()
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		ids:              ids,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

// WithClock replaces the time source. Intended for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// List returns one page of orders matching q, sorted by srt.
// An empty sort key falls back to domain.DefaultSort.
func (s *Service) List(ctx context.Context, q domain.OrderQuery, srt domain.OrderSort, page, size int) (domain.Paged[domain.Order], error) {
	if err := ValidateQuery(q, srt); err != nil {
		return domain.Paged[domain.Order]{}, err
	}
	srt = withDefaultSort(srt)
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, q, srt, page, size)
}

// Query returns every order matching q up to ExportLimit rows.
func (s *Service) Query(ctx context.Context, q domain.OrderQuery, srt domain.OrderSort) ([]domain.Order, error) {
	res, err := s.List(ctx, q, srt, 1, ExportLimit)
	if err != nil {
		return nil, err
	}
	return res.Items, nil
}

func withDefaultSort(srt domain.OrderSort) domain.OrderSort {
	if srt.Key == "" {
		return domain.DefaultSort
	}
	if srt.Dir == "" {
		srt.Dir = domain.SortAsc
	}
	return srt
}

// Get retrieves an order by its ID.
func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("order %q: %w", id, apperr.ErrNotFound)
	}
	return o, nil
}

// ListCouriers returns the courier reference list.
func (s *Service) ListCouriers(ctx context.Context) ([]domain.Courier, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.ListCouriers(ctx)
}

// UpsertCourier stores reference courier data.
func (s *Service) UpsertCourier(ctx context.Context, c domain.Courier) error {
	ve := apperr.NewValidationError()
	if strings.TrimSpace(c.ID) == "" {
		ve.Add("id", "required")
	}
	if strings.TrimSpace(c.Name) == "" {
		ve.Add("name", "required")
	}
	if err := ve.OrNil(); err != nil {
		return err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.UpsertCourier(ctx, c)
}

// Create validates the input, derives totals and SLA risk and stores a new order
// with a single "created" event. Generated codes are retried on collision.
func (s *Service) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	if err := validateCreate(&in); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if in.CourierID != nil {
		if err := s.requireCourier(ctx, *in.CourierID); err != nil {
			return nil, err
		}
	}

	now := s.now()
	o := newOrder(in, now)

	var err error
	for attempt := 0; attempt < createAttempts; attempt++ {
		if in.ID == "" {
			o.ID = s.ids.NewID()
		}
		if in.Code == "" {
			o.Code = s.ids.NewCode()
		}
		if in.Barcode == "" {
			o.Barcode = s.ids.NewBarcode()
		}
		err = s.repo.Create(ctx, o)
		if err == nil {
			s.logger.Info("order created",
				logx.String("order_id", o.ID),
				logx.String("code", o.Code),
				logx.String("sla_risk", string(o.SLARisk)),
			)
			return o, nil
		}
		generated := in.ID == "" || in.Code == "" || in.Barcode == ""
		if !errors.Is(err, apperr.ErrConflict) || !generated {
			return nil, err
		}
	}
	return nil, err
}

func newOrder(in CreateInput, now time.Time) *domain.Order {
	status := in.Status
	if status == "" {
		status = domain.StatusProcessing
	}
	total := domain.Money{
		Amount:   in.ProductValue.Amount.Add(in.DeliveryFee.Amount),
		Currency: in.ProductValue.Currency,
	}
	actor := in.Actor
	if actor == "" {
		actor = domain.SystemActor
	}
	o := &domain.Order{
		ID:            in.ID,
		Code:          in.Code,
		Barcode:       in.Barcode,
		Status:        status,
		SLARisk:       domain.RiskForTotal(total.Amount),
		Sender:        in.Sender,
		Recipient:     in.Recipient,
		ProductValue:  in.ProductValue,
		DeliveryFee:   in.DeliveryFee,
		Total:         total,
		PaymentMethod: in.PaymentMethod,
		WeightKg:      in.WeightKg,
		VolumeM3:      in.VolumeM3,
		Pieces:        in.Pieces,
		Tags:          in.Tags,
		ScheduledDate: in.ScheduledDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.CourierID != nil {
		id := *in.CourierID
		o.CourierID = &id
	}
	o.AppendEvent(domain.OrderEvent{At: now, Type: domain.EventCreated, Actor: actor})
	return o
}

// Update applies a partial patch. An illegal status change is rejected with
// apperr.ErrIllegalTransition and leaves the order untouched.
func (s *Service) Update(ctx context.Context, id string, p domain.OrderPatch, actor string) (*domain.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, apperr.ErrInvalid
	}
	if err := validatePatch(&p); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if p.CourierID != nil && !p.ClearCourier {
		if err := s.requireCourier(ctx, *p.CourierID); err != nil {
			return nil, err
		}
	}

	now := s.now()
	o, err := s.repo.Update(ctx, id, func(o *domain.Order) error {
		return applyPatch(o, p, actor, now, true)
	})
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, fmt.Errorf("order %q: %w", id, apperr.ErrNotFound)
	}
	return o, nil
}

// BulkUpdate applies p to every id independently. Missing ids and illegal
// transitions count as failures and never abort the batch. No events are appended.
func (s *Service) BulkUpdate(ctx context.Context, ids []string, p domain.OrderPatch) (domain.BulkResult, error) {
	if len(ids) == 0 {
		ve := apperr.NewValidationError()
		ve.Add("ids", "required")
		return domain.BulkResult{}, ve
	}
	if err := validatePatch(&p); err != nil {
		return domain.BulkResult{}, err
	}
	if p.CourierID != nil && !p.ClearCourier {
		cctx, cancel := s.withTimeout(ctx)
		err := s.requireCourier(cctx, *p.CourierID)
		cancel()
		if err != nil {
			return domain.BulkResult{}, err
		}
	}

	var res domain.BulkResult
	now := s.now()
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if err := s.bulkOne(ctx, strings.TrimSpace(id), p, now); err != nil {
			res.Fail++
			s.logger.Warn("bulk update item failed", logx.String("order_id", id), logx.Err(err))
			continue
		}
		res.OK++
	}
	s.logger.Info("bulk update done", logx.Int("ok", res.OK), logx.Int("fail", res.Fail))
	return res, nil
}

func (s *Service) bulkOne(ctx context.Context, id string, p domain.OrderPatch, now time.Time) error {
	if id == "" {
		return apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	o, err := s.repo.Update(ctx, id, func(o *domain.Order) error {
		return applyPatch(o, p, "", now, false)
	})
	if err != nil {
		return err
	}
	if o == nil {
		return apperr.ErrNotFound
	}
	return nil
}

func (s *Service) requireCourier(ctx context.Context, id string) error {
	c, err := s.repo.GetCourier(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		ve := apperr.NewValidationError()
		ve.Add("courierId", "unknown courier")
		return ve
	}
	return nil
}
