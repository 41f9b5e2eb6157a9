package handover

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
	"service-dispatch/internal/logx"
	"service-dispatch/internal/metrics"
	"service-dispatch/internal/ports/handovertx"
)

// Service runs courier handover reconciliation sessions and commits bags.
type Service struct {
	store            Store
	seq              Sequence
	publisher        BagPublisher
	metrics          *metrics.Handover
	reg              *registry
	ttl              time.Duration
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
	newID            func() string
}

// Options are the optional collaborators of a Service.
type Options struct {
	Publisher        BagPublisher
	Metrics          *metrics.Handover
	SessionTTL       time.Duration
	OperationTimeout time.Duration
	Logger           logx.Logger
	Now              func() time.Time
	NewID            func() string
}

// NewService creates a handover Service.
func NewService(store Store, seq Sequence, opts Options) *Service {
	s := &Service{
		store:            store,
		seq:              seq,
		publisher:        opts.Publisher,
		metrics:          opts.Metrics,
		reg:              newRegistry(),
		ttl:              opts.SessionTTL,
		operationTimeout: opts.OperationTimeout,
		logger:           opts.Logger,
		now:              opts.Now,
		newID:            opts.NewID,
	}
	if s.metrics == nil {
		s.metrics = metrics.NewHandover()
	}
	if s.ttl <= 0 {
		s.ttl = 30 * time.Minute
	}
	if s.operationTimeout <= 0 {
		s.operationTimeout = 3 * time.Second
	}
	if s.logger == nil {
		s.logger = logx.Nop()
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	if s.newID == nil {
		s.newID = uuid.NewString
	}
	return s
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// Open starts a new idle session.
func (s *Service) Open() Session {
	sess := NewSession(s.newID(), s.now())
	s.reg.add(sess, sess.UpdatedAt)
	s.metrics.Sessions.Inc()
	return sess.Snapshot()
}

// Get returns a snapshot of a session.
func (s *Service) Get(id string) (Session, error) {
	e, err := s.reg.acquire(id, s.now())
	if err != nil {
		return Session{}, err
	}
	defer e.mu.Unlock()
	return e.session.Snapshot(), nil
}

// Close discards a session.
func (s *Service) Close(id string) error {
	if !s.reg.remove(id) {
		return fmt.Errorf("session %q: %w", id, apperr.ErrNotFound)
	}
	s.metrics.Sessions.Dec()
	return nil
}

// Reset returns a session to idle.
func (s *Service) Reset(id string) (Session, error) {
	e, err := s.reg.acquire(id, s.now())
	if err != nil {
		return Session{}, err
	}
	defer e.mu.Unlock()
	e.session.Reset(s.now())
	return e.session.Snapshot(), nil
}

// SelectCourier selects the courier and loads its planned orders.
func (s *Service) SelectCourier(ctx context.Context, id, courierID string) (Session, error) {
	courierID = strings.TrimSpace(courierID)
	if courierID == "" {
		ve := apperr.NewValidationError()
		ve.Add("courierId", "required")
		return Session{}, ve
	}
	e, err := s.reg.acquire(id, s.now())
	if err != nil {
		return Session{}, err
	}
	defer e.mu.Unlock()

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	c, err := s.store.GetCourier(ctx, courierID)
	if err != nil {
		return Session{}, err
	}
	if c == nil {
		return Session{}, fmt.Errorf("courier %q: %w", courierID, apperr.ErrNotFound)
	}
	list, err := s.store.ListByCourier(ctx, courierID)
	if err != nil {
		return Session{}, err
	}
	if err := e.session.SelectCourier(courierID, list, s.now()); err != nil {
		return Session{}, err
	}
	return e.session.Snapshot(), nil
}

// Scan submits one barcode. The returned error is set only for an unknown session.
func (s *Service) Scan(id, barcode string) (Session, Feedback, error) {
	e, err := s.reg.acquire(id, s.now())
	if err != nil {
		return Session{}, Feedback{}, err
	}
	defer e.mu.Unlock()
	fb := e.session.Scan(barcode, s.now())
	s.metrics.Scans.WithLabelValues(string(fb.Code)).Inc()
	return e.session.Snapshot(), fb, nil
}

// CommitResult is a committed session together with its bag.
type CommitResult struct {
	Session Session
	Bag     domain.Bag
}

// Commit hands the confirmed orders over to the courier in one transaction:
// every confirmed order moves to assigned and the bag is stored, or nothing is.
// On failure the session keeps its confirmed set so the operator can retry.
func (s *Service) Commit(ctx context.Context, id, actor string) (CommitResult, error) {
	e, err := s.reg.acquire(id, s.now())
	if err != nil {
		return CommitResult{}, err
	}
	defer e.mu.Unlock()

	sess := e.session
	if err := sess.CanCommit(); err != nil {
		return CommitResult{}, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	bag, err := s.commit(ctx, sess, actor)
	if err != nil {
		s.metrics.Commits.WithLabelValues("error").Inc()
		s.logger.Warn("handover commit failed",
			logx.String("session_id", sess.ID),
			logx.String("courier_id", sess.CourierID),
			logx.Err(err),
		)
		return CommitResult{}, err
	}
	sess.MarkCommitted(bag.ID, s.now())
	s.metrics.Commits.WithLabelValues("ok").Inc()
	s.logger.Info("bag handed over",
		logx.String("bag_id", bag.ID),
		logx.String("bag_number", bag.Number),
		logx.String("courier_id", bag.CourierID),
		logx.Int("orders", len(bag.OrderIDs)),
	)

	if s.publisher != nil {
		if err := s.publisher.PublishBag(ctx, bag); err != nil {
			s.logger.Error("publish bag failed", logx.String("bag_id", bag.ID), logx.Err(err))
		}
	}
	return CommitResult{Session: sess.Snapshot(), Bag: bag}, nil
}

func (s *Service) commit(ctx context.Context, sess *Session, actor string) (domain.Bag, error) {
	if actor == "" {
		actor = domain.SystemActor
	}
	now := s.now()
	confirmed := append([]string(nil), sess.Confirmed...)

	var bag domain.Bag
	err := s.store.WithTx(ctx, func(tx handovertx.Repository) error {
		for _, orderID := range confirmed {
			if err := handOver(ctx, tx, orderID, sess.CourierID, actor, now); err != nil {
				return err
			}
		}
		n, err := s.seq.Next(ctx)
		if err != nil {
			return fmt.Errorf("next bag number: %w", err)
		}
		bag = domain.NewBag(s.newID(), sess.CourierID, confirmed, n, now)
		return tx.InsertBag(ctx, &bag)
	})
	if err != nil {
		return domain.Bag{}, err
	}
	return bag, nil
}

func handOver(ctx context.Context, tx handovertx.Repository, orderID, courierID, actor string, now time.Time) error {
	o, err := tx.GetOrderForUpdate(ctx, orderID)
	if err != nil {
		return err
	}
	if o == nil {
		return fmt.Errorf("order %q: %w", orderID, apperr.ErrNotFound)
	}
	if !o.HasCourier(courierID) {
		return fmt.Errorf("order %q is no longer assigned to courier %q: %w", o.Code, courierID, apperr.ErrConflict)
	}
	if !IsPlanned(*o, courierID) {
		return fmt.Errorf("order %q is already handed over: %w", o.Code, apperr.ErrConflict)
	}
	if !o.Status.CanTransition(domain.StatusAssigned) {
		return fmt.Errorf("order %q %s -> %s: %w", o.Code, o.Status, domain.StatusAssigned, apperr.ErrIllegalTransition)
	}
	o.Status = domain.StatusAssigned
	st := o.Status
	o.AppendEvent(domain.OrderEvent{At: now, Type: domain.EventStatusChanged, Status: &st, Actor: actor})
	o.AppendEvent(domain.OrderEvent{At: now, Type: domain.EventHandedOver, Actor: actor})
	o.UpdatedAt = now
	return tx.SaveOrder(ctx, o)
}

// BagDetails is a bag with its orders and courier, as the printable documents need them.
type BagDetails struct {
	Bag     domain.Bag
	Orders  []domain.Order
	Courier *domain.Courier
}

// GetBag returns a bag by id.
func (s *Service) GetBag(ctx context.Context, id string) (*domain.Bag, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	b, err := s.store.GetBag(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("bag %q: %w", id, apperr.ErrNotFound)
	}
	return b, nil
}

// ListBags lists bags, optionally of one courier.
func (s *Service) ListBags(ctx context.Context, courierID string) ([]domain.Bag, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.store.ListBags(ctx, strings.TrimSpace(courierID))
}

// Details loads a bag with its orders in bag order and its courier.
func (s *Service) Details(ctx context.Context, id string) (BagDetails, error) {
	b, err := s.GetBag(ctx, id)
	if err != nil {
		return BagDetails{}, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	list, err := s.store.GetMany(ctx, b.OrderIDs)
	if err != nil {
		return BagDetails{}, err
	}
	if len(list) != len(b.OrderIDs) {
		s.logger.Warn("bag references missing orders",
			logx.String("bag_id", b.ID),
			logx.Int("expected", len(b.OrderIDs)),
			logx.Int("found", len(list)),
		)
	}
	c, err := s.store.GetCourier(ctx, b.CourierID)
	if err != nil && !errors.Is(err, apperr.ErrNotFound) {
		return BagDetails{}, err
	}
	return BagDetails{Bag: *b, Orders: list, Courier: c}, nil
}

// Active returns the number of open sessions.
func (s *Service) Active() int { return s.reg.len() }
