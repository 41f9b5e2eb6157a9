package domain

import "github.com/shopspring/decimal"

// CourierMatch selects how OrderQuery constrains the courier dimension.
type CourierMatch int

// Courier constraint kinds.
const (
	// CourierAny puts no constraint on the courier.
	CourierAny CourierMatch = iota
	// CourierNone matches orders without a courier.
	CourierNone
	// CourierExact matches orders assigned to CourierFilter.ID.
	CourierExact
)

// CourierFilter is the courier dimension of OrderQuery.
type CourierFilter struct {
	Match CourierMatch
	ID    string
}

// OrderQuery is a filter specification. Zero values mean "no constraint".
type OrderQuery struct {
	Text     string
	Statuses []OrderStatus
	SLA      []SLARisk
	City     string
	Courier  CourierFilter
	MinTotal *decimal.Decimal
	MaxTotal *decimal.Decimal
	DateFrom string
	DateTo   string
}

type (
	// SortKey names the single active sort key.
	SortKey string
	// SortDir is the sort direction.
	SortDir string
)

// Sort keys.
const (
	SortCreatedAt     SortKey = "createdAt"
	SortScheduledDate SortKey = "scheduledDate"
	SortTotal         SortKey = "total"
	SortStatus        SortKey = "status"
)

// Sort directions.
const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// OrderSort is a sort key plus direction.
type OrderSort struct {
	Key SortKey
	Dir SortDir
}

// DefaultSort lists the newest orders first.
var DefaultSort = OrderSort{Key: SortCreatedAt, Dir: SortDesc}

// Valid checks if the key is supported.
func (k SortKey) Valid() bool {
	switch k {
	case SortCreatedAt, SortScheduledDate, SortTotal, SortStatus:
		return true
	}
	return false
}

// Valid checks if the direction is supported.
func (d SortDir) Valid() bool {
	return d == SortAsc || d == SortDesc
}

// Paged is one page of a filtered, sorted result. Total is the filtered count before slicing.
type Paged[T any] struct {
	Items    []T
	Page     int
	PageSize int
	Total    int
}

// OrderPatch carries optional order fields. A nil field means "do not change".
// ClearCourier unassigns the courier and takes precedence over CourierID.
type OrderPatch struct {
	Status        *OrderStatus
	CourierID     *string
	ClearCourier  bool
	ScheduledDate *string
	Tags          *[]string
	Sender        *Party
	Recipient     *Party
	PaymentMethod *PaymentMethod
	WeightKg      *float64
	VolumeM3      *float64
	Pieces        *int
}

// Empty reports whether the patch changes nothing.
func (p OrderPatch) Empty() bool {
	return p.Status == nil && p.CourierID == nil && !p.ClearCourier &&
		p.ScheduledDate == nil && p.Tags == nil && p.Sender == nil &&
		p.Recipient == nil && p.PaymentMethod == nil && p.WeightKg == nil &&
		p.VolumeM3 == nil && p.Pieces == nil
}

// BulkResult counts per-id outcomes of a bulk update.
type BulkResult struct {
	OK   int
	Fail int
}
