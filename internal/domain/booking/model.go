package booking

import (
	"errors"
	"strings"
	"time"
)

// ErrMissingRequiredFields carries the exact message shown to form submitters.
var ErrMissingRequiredFields = errors.New("Missing required fields")

// Booking holds state for a structured event-booking request. Bookings are
// write-once: created by the public form or a signed-in user, read by the
// admin and by the owner.
//
// Ownership is not a foreign key: a booking belongs to whichever account's
// email-or-phone identifier matches its Email or Phone field at read time.
type Booking struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	EventType string
	Date      string // event date as submitted, e.g. "2026-09-12"; not parsed
	Location  string
	Budget    string
	Notes     string
	CreatedAt time.Time
}

// Trim normalizes all user-supplied fields by trimming whitespace.
// POST: No field has leading or trailing whitespace
func (b *Booking) Trim() {
	b.Name = strings.TrimSpace(b.Name)
	b.Email = strings.TrimSpace(b.Email)
	b.Phone = strings.TrimSpace(b.Phone)
	b.EventType = strings.TrimSpace(b.EventType)
	b.Date = strings.TrimSpace(b.Date)
	b.Location = strings.TrimSpace(b.Location)
	b.Budget = strings.TrimSpace(b.Budget)
	b.Notes = strings.TrimSpace(b.Notes)
}

// Validate checks if the Booking has valid data. Email, budget and notes are
// optional; name, phone, event type, date and location must be non-blank.
// The date is accepted as an opaque string, matching the intake form.
// PRE: Trim has been called
// POST: Returns nil if valid, error otherwise
func (b *Booking) Validate() error {
	if b.Name == "" || b.Phone == "" || b.EventType == "" || b.Date == "" || b.Location == "" {
		return ErrMissingRequiredFields
	}
	return nil
}
