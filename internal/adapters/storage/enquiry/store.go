package enquiry

import (
	"context"

	domain "aurafest/internal/domain/enquiry"
)

// Store persists Enquiry state. Enquiries are insert-only.
type Store interface {
	Save(ctx context.Context, value domain.Enquiry) error
	// List returns all enquiries ordered by creation time descending.
	List(ctx context.Context) ([]domain.Enquiry, error)
}
