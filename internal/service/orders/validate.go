package orders

import (
	"regexp"
	"strings"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
)

var (
	currencyRe = regexp.MustCompile(`^[A-Z]{3}$`)
	codeRe     = regexp.MustCompile(`^[A-Z]{2}-[0-9]{3,8}$`)
	barcodeRe  = regexp.MustCompile(`^[0-9]{6,20}$`)
)

// CreateInput is the payload of a new order. Empty ID, Code and Barcode are generated.
type CreateInput struct {
	ID            string
	Code          string
	Barcode       string
	Status        domain.OrderStatus
	Sender        domain.Party
	Recipient     domain.Party
	ProductValue  domain.Money
	DeliveryFee   domain.Money
	PaymentMethod domain.PaymentMethod
	WeightKg      float64
	VolumeM3      float64
	Pieces        int
	Tags          []string
	CourierID     *string
	ScheduledDate string
	Actor         string
}

func validateCreate(in *CreateInput) error {
	ve := apperr.NewValidationError()
	in.Code = strings.TrimSpace(in.Code)
	in.Barcode = strings.TrimSpace(in.Barcode)
	if in.Code != "" && !codeRe.MatchString(in.Code) {
		ve.Add("code", "must look like AB-123")
	}
	if in.Barcode != "" && !barcodeRe.MatchString(in.Barcode) {
		ve.Add("barcode", "must be 6-20 digits")
	}
	in.Sender = normalizeParty(in.Sender)
	in.Recipient = normalizeParty(in.Recipient)
	validateParty(ve, "sender", in.Sender)
	validateParty(ve, "recipient", in.Recipient)

	if in.Status != "" && !in.Status.Valid() {
		ve.Add("status", "unknown status")
	}
	if in.DeliveryFee.Currency == "" {
		in.DeliveryFee.Currency = in.ProductValue.Currency
	}
	if !currencyRe.MatchString(in.ProductValue.Currency) {
		ve.Add("productValue.currency", "must be a 3-letter ISO code")
	}
	if in.DeliveryFee.Currency != in.ProductValue.Currency {
		ve.Add("deliveryFee.currency", "must match productValue currency")
	}
	if in.ProductValue.Amount.IsNegative() {
		ve.Add("productValue.amount", "must not be negative")
	}
	if in.DeliveryFee.Amount.IsNegative() {
		ve.Add("deliveryFee.amount", "must not be negative")
	}
	if !in.PaymentMethod.Valid() {
		ve.Add("paymentMethod", "unknown payment method")
	}
	validateMeasures(ve, &in.WeightKg, &in.VolumeM3, &in.Pieces)
	if in.ScheduledDate != "" && !domain.ValidateDate(in.ScheduledDate) {
		ve.Add("scheduledDate", "must be YYYY-MM-DD")
	}
	if in.CourierID != nil && strings.TrimSpace(*in.CourierID) == "" {
		ve.Add("courierId", "must not be blank")
	}
	in.Tags = normalizeTags(in.Tags)
	return ve.OrNil()
}

func validatePatch(p *domain.OrderPatch) error {
	ve := apperr.NewValidationError()
	if p.Empty() {
		ve.Add("patch", "nothing to update")
		return ve
	}
	if p.Status != nil && !p.Status.Valid() {
		ve.Add("status", "unknown status")
	}
	if p.CourierID != nil && strings.TrimSpace(*p.CourierID) == "" {
		ve.Add("courierId", "must not be blank")
	}
	if p.ScheduledDate != nil && *p.ScheduledDate != "" && !domain.ValidateDate(*p.ScheduledDate) {
		ve.Add("scheduledDate", "must be YYYY-MM-DD")
	}
	if p.Sender != nil {
		*p.Sender = normalizeParty(*p.Sender)
		validateParty(ve, "sender", *p.Sender)
	}
	if p.Recipient != nil {
		*p.Recipient = normalizeParty(*p.Recipient)
		validateParty(ve, "recipient", *p.Recipient)
	}
	if p.PaymentMethod != nil && !p.PaymentMethod.Valid() {
		ve.Add("paymentMethod", "unknown payment method")
	}
	validateMeasures(ve, p.WeightKg, p.VolumeM3, p.Pieces)
	if p.Tags != nil {
		tags := normalizeTags(*p.Tags)
		p.Tags = &tags
	}
	return ve.OrNil()
}

func validateParty(ve *apperr.ValidationError, prefix string, p domain.Party) {
	if p.Name == "" {
		ve.Add(prefix+".name", "required")
	}
	if !domain.ValidatePhone(p.Phone) {
		ve.Add(prefix+".phone", "must be + followed by 10-15 digits")
	}
	if p.Address == "" {
		ve.Add(prefix+".address", "required")
	}
	if p.City == "" {
		ve.Add(prefix+".city", "required")
	}
	if g := p.Geo; g != nil && (g.Lat < -90 || g.Lat > 90 || g.Lng < -180 || g.Lng > 180) {
		ve.Add(prefix+".geo", "out of range")
	}
}

func validateMeasures(ve *apperr.ValidationError, weight, volume *float64, pieces *int) {
	if weight != nil && *weight < 0 {
		ve.Add("weightKg", "must not be negative")
	}
	if volume != nil && *volume < 0 {
		ve.Add("volumeM3", "must not be negative")
	}
	if pieces != nil && *pieces < 1 {
		ve.Add("pieces", "must be at least 1")
	}
}

func normalizeParty(p domain.Party) domain.Party {
	p.Name = strings.TrimSpace(p.Name)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Address = strings.TrimSpace(p.Address)
	p.City = strings.TrimSpace(p.City)
	p.Country = strings.TrimSpace(p.Country)
	return p
}

func normalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// ValidateQuery rejects unknown enum values, malformed dates and inverted
// bounds instead of treating them as "no constraint".
func ValidateQuery(q domain.OrderQuery, s domain.OrderSort) error {
	ve := apperr.NewValidationError()
	for _, st := range q.Statuses {
		if !st.Valid() {
			ve.Add("status", "unknown status "+string(st))
		}
	}
	for _, r := range q.SLA {
		if !r.Valid() {
			ve.Add("sla", "unknown sla risk "+string(r))
		}
	}
	if q.Courier.Match == domain.CourierExact && q.Courier.ID == "" {
		ve.Add("courier", "courier id required")
	}
	if q.MinTotal != nil && q.MaxTotal != nil && q.MinTotal.GreaterThan(*q.MaxTotal) {
		ve.Add("minTotal", "greater than maxTotal")
	}
	if q.DateFrom != "" && !domain.ValidateDate(q.DateFrom) {
		ve.Add("dateFrom", "must be YYYY-MM-DD")
	}
	if q.DateTo != "" && !domain.ValidateDate(q.DateTo) {
		ve.Add("dateTo", "must be YYYY-MM-DD")
	}
	if s.Key != "" && !s.Key.Valid() {
		ve.Add("sort", "unknown sort key")
	}
	if s.Dir != "" && !s.Dir.Valid() {
		ve.Add("dir", "must be asc or desc")
	}
	return ve.OrNil()
}
