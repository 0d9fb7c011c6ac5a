package web

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	accountDomain "aurafest/internal/domain/account"
	bookingDomain "aurafest/internal/domain/booking"
	"aurafest/internal/domain/identity"
)

func seedUser(t *testing.T, mocks *testMocks, identifier, password string) accountDomain.User {
	t.Helper()
	u := accountDomain.User{ID: "u-1", EmailOrPhone: identifier, CreatedAt: time.Now()}
	if err := u.SetPassword(password); err != nil {
		t.Fatalf("SetPassword failed: %v", err)
	}
	mocks.accounts.users[identifier] = u
	return u
}

func TestSignup_Form(t *testing.T) {
	s, mocks := newTestServer(t)
	mux := s.Routes()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, postForm("/signup", url.Values{
		"email":    {"priya@example.com"},
		"password": {"festive-orchid-42"},
	}))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303, body: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
	if _, ok := mocks.accounts.users["priya@example.com"]; !ok {
		t.Error("account not stored")
	}
	// Signup must not create a session.
	for _, c := range w.Result().Cookies() {
		if c.Name == "aurafest_session" {
			t.Error("signup set a session cookie")
		}
	}
}

func TestSignup_Duplicate(t *testing.T) {
	s, mocks := newTestServer(t)
	seedUser(t, mocks, "priya@example.com", "pw")
	mux := s.Routes()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, postForm("/signup", url.Values{
		"email":    {"priya@example.com"},
		"password": {"pw2"},
	}))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "already exists") {
		t.Error("duplicate signup page missing error message")
	}
	if len(mocks.accounts.users) != 1 {
		t.Errorf("expected 1 stored user, got %d", len(mocks.accounts.users))
	}
}

func TestLogin_Success(t *testing.T) {
	s, mocks := newTestServer(t)
	seedUser(t, mocks, "priya@example.com", "festive-orchid-42")
	mux := s.Routes()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, postForm("/login", url.Values{
		"email":    {"priya@example.com"},
		"password": {"festive-orchid-42"},
	}))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303, body: %s", w.Code, w.Body.String())
	}
	if loc := w.Header().Get("Location"); loc != "/dashboard" {
		t.Errorf("Location = %q, want /dashboard", loc)
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
	if !ok {
		t.Fatal("session not stored")
	}
	if sess.Identity.Kind != identity.KindUser || sess.Identity.EmailOrPhone != "priya@example.com" {
		t.Errorf("unexpected session identity: %+v", sess.Identity)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	s, mocks := newTestServer(t)
	seedUser(t, mocks, "priya@example.com", "festive-orchid-42")
	mux := s.Routes()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, postForm("/login", url.Values{
		"email":    {"priya@example.com"},
		"password": {"wrong"},
	}))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 re-render", w.Code)
	}
	if !strings.Contains(w.Body.String(), "invalid credentials") {
		t.Error("login page missing error message")
	}
	for _, c := range w.Result().Cookies() {
		if c.Name == "aurafest_session" {
			t.Error("failed login set a session cookie")
		}
	}
}

func TestDashboard_Anonymous(t *testing.T) {
	s, _ := newTestServer(t)
	mux := s.Routes()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/dashboard", nil))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}

func TestDashboard_FiltersByContact(t *testing.T) {
	s, mocks := newTestServer(t)
	mocks.bookings.bookings = []bookingDomain.Booking{
		{ID: "b-1", Name: "Priya", Email: "priya@example.com", Phone: "021555123", EventType: "wedding", Date: "2026-06-20", Location: "Chennai", CreatedAt: time.Now()},
		{ID: "b-2", Name: "Other", Email: "other@example.com", Phone: "021999999", EventType: "birthday", Date: "2026-07-01", Location: "Madurai", CreatedAt: time.Now()},
	}
	mux := s.Routes()

	r := withSession(httptest.NewRequest("GET", "/dashboard", nil), identity.NewUser("u-1", "priya@example.com"))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", w.Code, w.Body.String())
	}
	if mocks.bookings.lastContact != "priya@example.com" {
		t.Errorf("queried contact = %q, want session identifier", mocks.bookings.lastContact)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Chennai") {
		t.Error("dashboard missing own booking")
	}
	if strings.Contains(body, "Madurai") {
		t.Error("dashboard shows another contact's booking")
	}
}

func TestDashboard_AdminRedirects(t *testing.T) {
	s, _ := newTestServer(t)
	mux := s.Routes()

	r := withSession(httptest.NewRequest("GET", "/dashboard", nil), identity.NewAdmin())
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin" {
		t.Errorf("Location = %q, want /admin", loc)
	}
}

func TestLogout(t *testing.T) {
	s, _ := newTestServer(t)
	mux := s.Routes()

	token, err := s.sessions.Create(identity.NewUser("u-1", "priya@example.com"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	r := httptest.NewRequest("GET", "/logout", nil)
	r.AddCookie(&http.Cookie{Name: "aurafest_session", Value: token})
	r = withSession(r, identity.NewUser("u-1", "priya@example.com"))
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
	if _, ok := s.sessions.Get(token); ok {
		t.Error("session still valid after logout")
	}
}

func TestLogout_Anonymous(t *testing.T) {
	s, _ := newTestServer(t)
	mux := s.Routes()

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/logout", nil))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
}
