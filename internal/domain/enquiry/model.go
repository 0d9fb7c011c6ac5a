package enquiry

import (
	"errors"
	"strings"
	"time"
)

// ErrNameAndPhoneRequired carries the exact message shown to form submitters.
var ErrNameAndPhoneRequired = errors.New("Name and phone are required")

// Enquiry holds state for a general contact-form submission. Enquiries are
// write-once: created by the public form, read only by the admin.
type Enquiry struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Message   string
	CreatedAt time.Time
}

// Trim normalizes all user-supplied fields by trimming whitespace.
// POST: No field has leading or trailing whitespace
func (e *Enquiry) Trim() {
	e.Name = strings.TrimSpace(e.Name)
	e.Email = strings.TrimSpace(e.Email)
	e.Phone = strings.TrimSpace(e.Phone)
	e.Message = strings.TrimSpace(e.Message)
}

// Validate checks if the Enquiry has valid data. Email and message are
// optional; only name and phone must be non-blank.
// PRE: Trim has been called
// POST: Returns nil if valid, error otherwise
func (e *Enquiry) Validate() error {
	if e.Name == "" || e.Phone == "" {
		return ErrNameAndPhoneRequired
	}
	return nil
}
