package booking

import (
	"context"

	domain "aurafest/internal/domain/booking"
)

// Store persists Booking state. Bookings are insert-only.
type Store interface {
	Save(ctx context.Context, value domain.Booking) error
	// List returns all bookings ordered by creation time descending.
	List(ctx context.Context) ([]domain.Booking, error)
	// ListByDate returns all bookings ordered by event date descending.
	ListByDate(ctx context.Context) ([]domain.Booking, error)
	// ListByContact returns bookings whose email or phone equals the given
	// identifier, ordered by event date descending. Ownership is this string
	// match, not a foreign key: two accounts sharing a contact string see the
	// same bookings.
	ListByContact(ctx context.Context, identifier string) ([]domain.Booking, error)
}
