package web

import (
	"net/http"
	"time"

	"aurafest/internal/adapters/http/middleware"
	"aurafest/internal/application/orchestrators"
	bookingDomain "aurafest/internal/domain/booking"
	enquiryDomain "aurafest/internal/domain/enquiry"
)

// requireAdmin gates an admin-only HTML route. Anonymous callers are sent to
// the admin login page; authenticated non-admin callers get the 403 page.
// The check is explicit per route: identity kind, not an inferred role.
func (s *Server) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/admin-login", http.StatusSeeOther)
		return false
	}
	if !sess.Identity.IsAdmin() {
		s.renderError(w, r, http.StatusForbidden, "Forbidden")
		return false
	}
	return true
}

// handleAdminLogin handles GET (form) and POST (token exchange) for /admin-login.
func (s *Server) handleAdminLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if middleware.IsAdmin(r.Context()) {
			http.Redirect(w, r, "/admin", http.StatusSeeOther)
			return
		}
		s.renderTemplate(w, r, "admin_login.html", map[string]any{
			"Title": "Admin Login",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		id, err := orchestrators.ExecuteAdminLogin(
			orchestrators.AdminLoginInput{Token: r.FormValue("token")},
			orchestrators.AdminLoginDeps{AdminToken: s.cfg.AdminToken},
		)
		if err != nil {
			s.renderTemplate(w, r, "admin_login.html", map[string]any{
				"Title": "Admin Login",
				"Error": "Invalid admin token!",
			})
			return
		}

		token, err := s.sessions.Create(id)
		if err != nil {
			internalError(w, err)
			return
		}
		middleware.SetSessionCookie(w, token, s.cfg.SecureCookies)
		s.flash.Set(w, "Welcome back, Admin!", "success")
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleAdmin handles GET /admin: all enquiries and bookings, newest first.
func (s *Server) handleAdmin(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}

	enquiries, err := s.stores.EnquiryStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}
	bookings, err := s.stores.BookingStore.List(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	s.renderTemplate(w, r, "admin.html", map[string]any{
		"Title":     "Admin — Aura Fest Events",
		"Enquiries": enquiries,
		"Bookings":  bookings,
	})
}

// handleAdminBookings handles GET /admin/bookings: bookings by event date.
func (s *Server) handleAdminBookings(w http.ResponseWriter, r *http.Request) {
	if !s.requireAdmin(w, r) {
		return
	}

	bookings, err := s.stores.BookingStore.ListByDate(r.Context())
	if err != nil {
		internalError(w, err)
		return
	}

	s.renderTemplate(w, r, "admin_bookings.html", map[string]any{
		"Title":    "Bookings — Aura Fest Events",
		"Bookings": bookings,
	})
}

// enquiryJSON is the wire shape of an enquiry in the admin data feed.
type enquiryJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone"`
	Message   string `json:"message,omitempty"`
	CreatedAt string `json:"created_at"`
}

// bookingJSON is the wire shape of a booking in the admin data feed.
type bookingJSON struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone"`
	EventType string `json:"event_type"`
	Date      string `json:"date"`
	Location  string `json:"location"`
	Budget    string `json:"budget,omitempty"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
}

func toEnquiryJSON(e enquiryDomain.Enquiry) enquiryJSON {
	return enquiryJSON{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Phone:     e.Phone,
		Message:   e.Message,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func toBookingJSON(b bookingDomain.Booking) bookingJSON {
	return bookingJSON{
		ID:        b.ID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		EventType: b.EventType,
		Date:      b.Date,
		Location:  b.Location,
		Budget:    b.Budget,
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// handleAPIAdminData handles GET /api/admin/data. Non-admin callers get a
// 403 JSON body rather than the HTML error page.
func (s *Server) handleAPIAdminData(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	if !middleware.IsAdmin(r.Context()) {
		apiError(w, http.StatusForbidden, "forbidden")
		return
	}

	enquiries, err := s.stores.EnquiryStore.List(r.Context())
	if err != nil {
		apiError(w, http.StatusInternalServerError, genericFailure)
		return
	}
	bookings, err := s.stores.BookingStore.List(r.Context())
	if err != nil {
		apiError(w, http.StatusInternalServerError, genericFailure)
		return
	}

	enquiryList := make([]enquiryJSON, 0, len(enquiries))
	for _, e := range enquiries {
		enquiryList = append(enquiryList, toEnquiryJSON(e))
	}
	bookingList := make([]bookingJSON, 0, len(bookings))
	for _, b := range bookings {
		bookingList = append(bookingList, toBookingJSON(b))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok": true,
		"data": map[string]any{
			"enquiries": enquiryList,
			"bookings":  bookingList,
		},
	})
}
