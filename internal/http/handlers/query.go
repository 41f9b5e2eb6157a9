package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
)

const (
	defaultPageSize = 20
	maxPageSize     = 200
	courierNone     = "none"
)

type listParams struct {
	Query    domain.OrderQuery
	Sort     domain.OrderSort
	Page     int
	PageSize int
}

// parseListParams reads the orders query string. Malformed values are
// reported as field errors, enum and date checks are left to the service.
func parseListParams(v url.Values) (listParams, error) {
	ve := apperr.NewValidationError()
	p := listParams{Page: 1, PageSize: defaultPageSize}

	p.Query.Text = strings.TrimSpace(v.Get("q"))
	p.Query.City = strings.TrimSpace(v.Get("city"))
	for _, s := range multi(v, "status") {
		p.Query.Statuses = append(p.Query.Statuses, domain.OrderStatus(strings.ToLower(s)))
	}
	for _, s := range multi(v, "sla") {
		p.Query.SLA = append(p.Query.SLA, domain.SLARisk(strings.ToLower(s)))
	}

	switch c := strings.TrimSpace(v.Get("courier")); {
	case c == "":
	case strings.EqualFold(c, courierNone):
		p.Query.Courier = domain.CourierFilter{Match: domain.CourierNone}
	default:
		p.Query.Courier = domain.CourierFilter{Match: domain.CourierExact, ID: c}
	}

	p.Query.MinTotal = parseDecimal(ve, v, "minTotal")
	p.Query.MaxTotal = parseDecimal(ve, v, "maxTotal")
	p.Query.DateFrom = strings.TrimSpace(v.Get("dateFrom"))
	p.Query.DateTo = strings.TrimSpace(v.Get("dateTo"))

	p.Sort.Key = domain.SortKey(strings.TrimSpace(v.Get("sort")))
	p.Sort.Dir = domain.SortDir(strings.ToLower(strings.TrimSpace(v.Get("dir"))))

	if n, ok := parseInt(ve, v, "page"); ok {
		if n < 1 {
			ve.Add("page", "must be at least 1")
		}
		p.Page = n
	}
	if n, ok := parseInt(ve, v, "pageSize"); ok {
		if n < 1 || n > maxPageSize {
			ve.Add("pageSize", "must be between 1 and "+strconv.Itoa(maxPageSize))
		}
		p.PageSize = n
	}
	return p, ve.OrNil()
}

// multi accepts both repeated and comma separated values.
func multi(v url.Values, key string) []string {
	var out []string
	for _, raw := range v[key] {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func parseDecimal(ve *apperr.ValidationError, v url.Values, key string) *decimal.Decimal {
	raw := strings.TrimSpace(v.Get(key))
	if raw == "" {
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		ve.Add(key, "must be a number")
		return nil
	}
	return &d
}

func parseInt(ve *apperr.ValidationError, v url.Values, key string) (int, bool) {
	raw := strings.TrimSpace(v.Get(key))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		ve.Add(key, "must be an integer")
		return 0, false
	}
	return n, true
}
