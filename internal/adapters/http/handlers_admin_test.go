package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	bookingDomain "aurafest/internal/domain/booking"
	enquiryDomain "aurafest/internal/domain/enquiry"
	"aurafest/internal/domain/identity"
)

func seedIntake(mocks *testMocks) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	mocks.enquiries.enquiries = []enquiryDomain.Enquiry{
		{ID: "e-1", Name: "Priya", Phone: "021555123", Message: "Wedding in June", CreatedAt: now},
	}
	mocks.bookings.bookings = []bookingDomain.Booking{
		{ID: "b-1", Name: "Arjun", Phone: "021555987", EventType: "wedding", Date: "2026-06-20", Location: "Chennai", CreatedAt: now},
	}
}

func TestAdmin_Anonymous(t *testing.T) {
	s, _ := newTestServer(t)
	mux := s.Routes()

	for _, path := range []string{"/admin", "/admin/bookings"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
			if w.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want 303", w.Code)
			}
			if loc := w.Header().Get("Location"); loc != "/admin-login" {
				t.Errorf("Location = %q, want /admin-login", loc)
			}
		})
	}
}

func TestAdmin_UserForbidden(t *testing.T) {
	s, _ := newTestServer(t)
	mux := s.Routes()

	for _, path := range []string{"/admin", "/admin/bookings"} {
		t.Run(path, func(t *testing.T) {
			r := withSession(httptest.NewRequest("GET", path, nil), identity.NewUser("u-1", "priya@example.com"))
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, r)
			if w.Code != http.StatusForbidden {
				t.Errorf("status = %d, want 403", w.Code)
			}
		})
	}
}

func TestAdmin_AsAdmin(t *testing.T) {
	s, mocks := newTestServer(t)
	seedIntake(mocks)
	mux := s.Routes()

	r := withSession(httptest.NewRequest("GET", "/admin", nil), identity.NewAdmin())
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "Priya") || !strings.Contains(body, "Arjun") {
		t.Error("admin page missing enquiry or booking")
	}
}

func TestAdminBookings_AsAdmin(t *testing.T) {
	s, mocks := newTestServer(t)
	seedIntake(mocks)
	mux := s.Routes()

	r := withSession(httptest.NewRequest("GET", "/admin/bookings", nil), identity.NewAdmin())
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "2026-06-20") {
		t.Error("bookings page missing event date")
	}
}

func TestAdminLogin_WrongToken(t *testing.T) {
	s, _ := newTestServer(t)
	mux := s.Routes()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, postForm("/admin-login", url.Values{"token": {"guess"}}))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 re-render", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Invalid admin token!") {
		t.Error("admin login page missing error message")
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == "aurafest_session" {
			t.Error("failed admin login set a session cookie")
		}
	}
}

func TestAdminLogin_Success(t *testing.T) {
	s, _ := newTestServer(t)
	mux := s.Routes()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, postForm("/admin-login", url.Values{"token": {"s3cret"}}))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin" {
		t.Errorf("Location = %q, want /admin", loc)
	}

	var token string
	for _, c := range w.Result().Cookies() {
		if c.Name == "aurafest_session" {
			token = c.Value
		}
	}
	if token == "" {
		t.Fatal("no session cookie set")
	}
	sess, ok := s.sessions.Get(token)
	if !ok || !sess.Identity.IsAdmin() {
		t.Errorf("expected admin session, got %+v", sess.Identity)
	}
}

func TestAPIAdminData_Forbidden(t *testing.T) {
	s, _ := newTestServer(t)
	mux := s.Routes()

	tests := []struct {
		name string
		req  *http.Request
	}{
		{"anonymous", httptest.NewRequest("GET", "/api/admin/data", nil)},
		{"user session", withSession(httptest.NewRequest("GET", "/api/admin/data", nil), identity.NewUser("u-1", "priya@example.com"))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, tt.req)
			if w.Code != http.StatusForbidden {
				t.Fatalf("status = %d, want 403", w.Code)
			}
			resp := decodeError(t, w)
			if resp.OK || resp.Error != "forbidden" {
				t.Errorf("unexpected body: %+v", resp)
			}
		})
	}
}

func TestAPIAdminData_AsAdmin(t *testing.T) {
	s, mocks := newTestServer(t)
	seedIntake(mocks)
	mux := s.Routes()

	r := withSession(httptest.NewRequest("GET", "/api/admin/data", nil), identity.NewAdmin())
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		OK   bool `json:"ok"`
		Data struct {
			Enquiries []enquiryJSON `json:"enquiries"`
			Bookings  []bookingJSON `json:"bookings"`
		} `json:"data"`
	}
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if !resp.OK {
		t.Error("expected ok: true")
	}
	if len(resp.Data.Enquiries) != 1 || resp.Data.Enquiries[0].Name != "Priya" {
		t.Errorf("unexpected enquiries: %+v", resp.Data.Enquiries)
	}
	if len(resp.Data.Bookings) != 1 || resp.Data.Bookings[0].Date != "2026-06-20" {
		t.Errorf("unexpected bookings: %+v", resp.Data.Bookings)
	}
	if resp.Data.Enquiries[0].CreatedAt != "2026-03-14T10:00:00Z" {
		t.Errorf("CreatedAt = %q, want RFC3339", resp.Data.Enquiries[0].CreatedAt)
	}
}
