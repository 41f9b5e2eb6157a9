package handover

import (
	"fmt"
	"strings"
	"time"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
)

// State is a point of the reconciliation workflow.
type State string

// Session states.
const (
	StateIdle            State = "idle"
	StateCourierSelected State = "courier_selected"
	StateScanning        State = "scanning"
	StateCommitted       State = "committed"
)

// FeedbackCode classifies the outcome of a scan.
type FeedbackCode string

// Scan outcomes.
const (
	FeedbackAccepted         FeedbackCode = "accepted"
	FeedbackNoCourier        FeedbackCode = "no_courier"
	FeedbackNotPlanned       FeedbackCode = "not_planned"
	FeedbackAlreadyConfirmed FeedbackCode = "already_confirmed"
	FeedbackSessionClosed    FeedbackCode = "session_closed"
)

var feedbackMessages = map[FeedbackCode]string{
	FeedbackAccepted:         "confirmed",
	FeedbackNoCourier:        "select a courier first",
	FeedbackNotPlanned:       "barcode does not belong to this courier's planned set",
	FeedbackAlreadyConfirmed: "already confirmed",
	FeedbackSessionClosed:    "session already committed",
}

// Feedback is the result of the last scan. Rejections are values, not errors.
type Feedback struct {
	OK      bool
	Code    FeedbackCode
	Message string
	Barcode string
	OrderID string
}

func newFeedback(code FeedbackCode, barcode, orderID string) Feedback {
	return Feedback{
		OK:      code == FeedbackAccepted,
		Code:    code,
		Message: feedbackMessages[code],
		Barcode: barcode,
		OrderID: orderID,
	}
}

// PlannedOrder is the part of an order the scan loop needs.
type PlannedOrder struct {
	OrderID string
	Code    string
	Barcode string
}

// Session is one operator's reconciliation state. Its methods are the only
// transitions; a session is never shared between operators.
type Session struct {
	ID        string
	State     State
	CourierID string
	Planned   []PlannedOrder
	Confirmed []string
	Feedback  *Feedback
	BagID     string
	UpdatedAt time.Time

	byBarcode map[string]int
	confirmed map[string]struct{}
}

// NewSession returns an idle session.
func NewSession(id string, now time.Time) *Session {
	return &Session{ID: id, State: StateIdle, UpdatedAt: now}
}

// IsPlanned is the planned-set predicate: assigned to the courier and not
// yet in the assigned status.
func IsPlanned(o domain.Order, courierID string) bool {
	return o.HasCourier(courierID) && o.Status != domain.StatusAssigned
}

// SelectCourier picks the courier and recomputes the planned set from orders.
// Any previous confirmation is discarded.
func (s *Session) SelectCourier(courierID string, orders []domain.Order, now time.Time) error {
	if s.State == StateCommitted {
		return fmt.Errorf("session %s: %w", s.ID, apperr.ErrConflict)
	}
	s.clear()
	s.CourierID = courierID
	s.byBarcode = make(map[string]int)
	for _, o := range orders {
		if !IsPlanned(o, courierID) {
			continue
		}
		s.byBarcode[o.Barcode] = len(s.Planned)
		s.Planned = append(s.Planned, PlannedOrder{OrderID: o.ID, Code: o.Code, Barcode: o.Barcode})
	}
	s.State = StateCourierSelected
	s.UpdatedAt = now
	return nil
}

// Scan validates one scanned barcode. Only an accepted scan changes the
// planned/confirmed state; every outcome is recorded as the last feedback.
func (s *Session) Scan(raw string, now time.Time) Feedback {
	fb := s.scan(raw)
	s.Feedback = &fb
	s.UpdatedAt = now
	return fb
}

func (s *Session) scan(raw string) Feedback {
	if s.State == StateCommitted {
		return newFeedback(FeedbackSessionClosed, "", "")
	}
	if s.CourierID == "" {
		return newFeedback(FeedbackNoCourier, "", "")
	}
	barcode := strings.TrimSpace(raw)
	i, ok := s.byBarcode[barcode]
	if !ok {
		return newFeedback(FeedbackNotPlanned, barcode, "")
	}
	id := s.Planned[i].OrderID
	if _, dup := s.confirmed[id]; dup {
		return newFeedback(FeedbackAlreadyConfirmed, barcode, id)
	}
	if s.confirmed == nil {
		s.confirmed = make(map[string]struct{})
	}
	s.confirmed[id] = struct{}{}
	s.Confirmed = append(s.Confirmed, id)
	s.State = StateScanning
	return newFeedback(FeedbackAccepted, barcode, id)
}

// CanCommit reports whether a commit may be attempted.
func (s *Session) CanCommit() error {
	switch {
	case s.State == StateCommitted:
		return fmt.Errorf("session %s already committed: %w", s.ID, apperr.ErrConflict)
	case s.CourierID == "":
		return fmt.Errorf("session %s has no courier: %w", s.ID, apperr.ErrInvalid)
	case len(s.Confirmed) == 0:
		return fmt.Errorf("session %s has nothing confirmed: %w", s.ID, apperr.ErrInvalid)
	}
	return nil
}

// MarkCommitted ends the session with the created bag.
func (s *Session) MarkCommitted(bagID string, now time.Time) {
	s.State = StateCommitted
	s.BagID = bagID
	s.UpdatedAt = now
}

// Reset returns the session to idle from any state.
func (s *Session) Reset(now time.Time) {
	s.clear()
	s.State = StateIdle
	s.UpdatedAt = now
}

func (s *Session) clear() {
	s.CourierID = ""
	s.Planned = nil
	s.Confirmed = nil
	s.Feedback = nil
	s.BagID = ""
	s.byBarcode = nil
	s.confirmed = nil
}

// Snapshot returns a copy safe to hand out after the session lock is released.
func (s *Session) Snapshot() Session {
	out := Session{
		ID:        s.ID,
		State:     s.State,
		CourierID: s.CourierID,
		Planned:   append([]PlannedOrder(nil), s.Planned...),
		Confirmed: append([]string(nil), s.Confirmed...),
		BagID:     s.BagID,
		UpdatedAt: s.UpdatedAt,
	}
	if s.Feedback != nil {
		fb := *s.Feedback
		out.Feedback = &fb
	}
	return out
}
