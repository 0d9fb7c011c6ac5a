package orchestrators

import (
	"context"
	"log/slog"
	"time"

	"aurafest/internal/domain/enquiry"
)

// EnquiryStoreForSubmit defines the store interface needed by SubmitEnquiry.
type EnquiryStoreForSubmit interface {
	Save(ctx context.Context, e enquiry.Enquiry) error
}

// SubmitEnquiryInput carries input for the submit-enquiry orchestrator.
type SubmitEnquiryInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// SubmitEnquiryDeps holds dependencies for SubmitEnquiry.
type SubmitEnquiryDeps struct {
	EnquiryStore EnquiryStoreForSubmit
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteSubmitEnquiry validates and persists a contact-form enquiry.
// PRE: Deps are non-nil
// POST: Enquiry persisted with UTC creation time, or a validation error and no write
func ExecuteSubmitEnquiry(ctx context.Context, input SubmitEnquiryInput, deps SubmitEnquiryDeps) (enquiry.Enquiry, error) {
	e := enquiry.Enquiry{
		ID:      deps.GenerateID(),
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Message: input.Message,
	}
	e.Trim()
	if err := e.Validate(); err != nil {
		return enquiry.Enquiry{}, err
	}
	e.CreatedAt = deps.Now().UTC()

	if err := deps.EnquiryStore.Save(ctx, e); err != nil {
		return enquiry.Enquiry{}, err
	}

	slog.Info("intake_event", "event", "enquiry_submitted", "id", e.ID, "name", e.Name)
	return e, nil
}
