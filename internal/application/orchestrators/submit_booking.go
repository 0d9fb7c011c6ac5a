package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"aurafest/internal/domain/booking"
)

// BookingStoreForSubmit defines the store interface needed by SubmitBooking.
type BookingStoreForSubmit interface {
	Save(ctx context.Context, b booking.Booking) error
}

// SubmitBookingInput carries input for the submit-booking orchestrator.
type SubmitBookingInput struct {
	Name      string
	Email     string
	Phone     string
	EventType string
	Date      string
	Location  string
	Budget    string
	Notes     string
}

// SubmitBookingDeps holds dependencies for SubmitBooking.
type SubmitBookingDeps struct {
	BookingStore BookingStoreForSubmit
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteSubmitBooking validates and persists an event-booking request.
// PRE: Deps are non-nil
// POST: Booking persisted with UTC creation time, or a validation error and no write
func ExecuteSubmitBooking(ctx context.Context, input SubmitBookingInput, deps SubmitBookingDeps) (booking.Booking, error) {
	b := booking.Booking{
		ID:        deps.GenerateID(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		EventType: input.EventType,
		Date:      input.Date,
		Location:  input.Location,
		Budget:    input.Budget,
		Notes:     input.Notes,
	}
	b.Trim()
	if err := b.Validate(); err != nil {
		return booking.Booking{}, err
	}
	b.CreatedAt = deps.Now().UTC()

	if err := deps.BookingStore.Save(ctx, b); err != nil {
		return booking.Booking{}, err
	}

	slog.Info("intake_event", "event", "booking_submitted", "id", b.ID, "event_type", b.EventType, "date", b.Date)
	return b, nil
}
