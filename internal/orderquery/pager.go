package orderquery

import (
	"fmt"

	"service-dispatch/internal/apperr"
	"service-dispatch/internal/domain"
)

// Page slices [(page-1)*size, page*size) out of orders, clipped to its length.
// A page past the end is empty, not an error.
func Page(orders []domain.Order, page, size int) (domain.Paged[domain.Order], error) {
	if err := ValidatePage(page, size); err != nil {
		return domain.Paged[domain.Order]{}, err
	}
	from, to := Bounds(len(orders), page, size)
	items := make([]domain.Order, to-from)
	copy(items, orders[from:to])
	return domain.Paged[domain.Order]{
		Items:    items,
		Page:     page,
		PageSize: size,
		Total:    len(orders),
	}, nil
}

// ValidatePage rejects non-positive page numbers and sizes.
func ValidatePage(page, size int) error {
	if size <= 0 {
		return fmt.Errorf("page size %d: %w", size, apperr.ErrInvalid)
	}
	if page < 1 {
		return fmt.Errorf("page %d: %w", page, apperr.ErrInvalid)
	}
	return nil
}

// Bounds returns the clipped slice bounds of a page over n items. Pages far
// past the end clip to n without computing (page-1)*size.
func Bounds(n, page, size int) (from, to int) {
	if page-1 > n/size {
		return n, n
	}
	from = (page - 1) * size
	if from > n {
		from = n
	}
	if size > n-from {
		return from, n
	}
	return from, from + size
}

// Run filters, sorts and pages orders in one call.
func Run(orders []domain.Order, q domain.OrderQuery, s domain.OrderSort, page, size int) (domain.Paged[domain.Order], error) {
	if err := ValidatePage(page, size); err != nil {
		return domain.Paged[domain.Order]{}, err
	}
	return Page(Sort(Filter(orders, q), s), page, size)
}
