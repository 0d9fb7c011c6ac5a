package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"

	"aurafest/internal/adapters/email"
	"aurafest/internal/domain/booking"
	"aurafest/internal/domain/enquiry"
)

// NotifyDeps holds dependencies for submission notifications.
type NotifyDeps struct {
	Sender email.Sender
	To     string // business inbox
}

// NotifyEnquiry sends a best-effort notification for a new enquiry. Failures
// are logged and never surfaced: the submission has already been persisted.
// PRE: e has been persisted
// POST: Notification attempted if a sender and recipient are configured
func NotifyEnquiry(ctx context.Context, deps NotifyDeps, e enquiry.Enquiry) {
	if deps.Sender == nil || deps.To == "" {
		return
	}
	body := fmt.Sprintf(
		"<h2>New enquiry</h2><p><strong>%s</strong> &lt;%s&gt; / %s</p><p>%s</p>",
		html.EscapeString(e.Name),
		html.EscapeString(e.Email),
		html.EscapeString(e.Phone),
		html.EscapeString(e.Message),
	)
	_, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{deps.To},
		Subject: "New enquiry from " + e.Name,
		HTML:    body,
	})
	if err != nil {
		slog.Error("notify_failed", "kind", "enquiry", "id", e.ID, "error", err)
	}
}

// NotifyBooking sends a best-effort notification for a new booking request.
// PRE: b has been persisted
// POST: Notification attempted if a sender and recipient are configured
func NotifyBooking(ctx context.Context, deps NotifyDeps, b booking.Booking) {
	if deps.Sender == nil || deps.To == "" {
		return
	}
	body := fmt.Sprintf(
		"<h2>New booking request</h2><p><strong>%s</strong> &lt;%s&gt; / %s</p>"+
			"<p>%s on %s at %s</p><p>Budget: %s</p><p>%s</p>",
		html.EscapeString(b.Name),
		html.EscapeString(b.Email),
		html.EscapeString(b.Phone),
		html.EscapeString(b.EventType),
		html.EscapeString(b.Date),
		html.EscapeString(b.Location),
		html.EscapeString(b.Budget),
		html.EscapeString(b.Notes),
	)
	_, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{deps.To},
		Subject: fmt.Sprintf("New %s booking for %s", b.EventType, b.Date),
		HTML:    body,
	})
	if err != nil {
		slog.Error("notify_failed", "kind", "booking", "id", b.ID, "error", err)
	}
}
