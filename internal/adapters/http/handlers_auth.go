package web

import (
	"errors"
	"net/http"

	"aurafest/internal/adapters/http/middleware"
	"aurafest/internal/application/orchestrators"
	accountDomain "aurafest/internal/domain/account"
)

// handleSignup handles GET (form) and POST (create account) for /signup.
// Signup never logs the user in; on success they are sent to /login.
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		s.renderTemplate(w, r, "signup.html", map[string]any{
			"Title": "Sign Up — Aura Fest Events",
		})
		return
	}

	if r.Method == "POST" {
		isJSON := isJSONRequest(r)
		var input orchestrators.SignupInput
		if isJSON {
			var body struct {
				Email    string `json:"email"`
				Phone    string `json:"phone"`
				Password string `json:"password"`
			}
			if err := decodeJSON(r, &body); err != nil {
				apiError(w, http.StatusBadRequest, "Invalid request body")
				return
			}
			input = orchestrators.SignupInput(body)
		} else {
			if err := r.ParseForm(); err != nil {
				http.Error(w, "Invalid form submission", http.StatusBadRequest)
				return
			}
			input = orchestrators.SignupInput{
				Email:    r.FormValue("email"),
				Phone:    r.FormValue("phone"),
				Password: r.FormValue("password"),
			}
		}

		deps := orchestrators.SignupDeps{
			AccountStore: s.stores.AccountStore,
			GenerateID:   generateID,
			Now:          timeNow,
		}
		_, err := orchestrators.ExecuteSignup(r.Context(), input, deps)
		if err != nil {
			message := err.Error()
			status := http.StatusBadRequest
			if !isSignupUserError(err) {
				message = genericFailure
				status = http.StatusInternalServerError
			}
			if isJSON {
				apiError(w, status, message)
				return
			}
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.WriteHeader(status)
			s.renderTemplate(w, r, "signup.html", map[string]any{
				"Title": "Sign Up — Aura Fest Events",
				"Error": message,
			})
			return
		}

		if isJSON {
			writeJSON(w, http.StatusOK, okResponse{OK: true})
			return
		}
		s.flash.Set(w, "Account created. Please log in.", "success")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// isSignupUserError reports whether a signup failure is the caller's fault
// (blank fields, duplicate identifier) rather than a persistence fault.
func isSignupUserError(err error) bool {
	return errors.Is(err, accountDomain.ErrEmptyIdentifier) ||
		errors.Is(err, accountDomain.ErrEmptyPassword) ||
		errors.Is(err, accountDomain.ErrIdentifierTaken)
}

// handleLogin handles GET (form) and POST (authenticate) for /login.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		if _, ok := middleware.GetSessionFromContext(r.Context()); ok {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		s.renderTemplate(w, r, "login.html", map[string]any{
			"Title": "Login — Aura Fest Events",
		})
		return
	}

	if r.Method == "POST" {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		input := orchestrators.LoginInput{
			Identifier: r.FormValue("email"),
			Password:   r.FormValue("password"),
		}
		deps := orchestrators.LoginDeps{
			AccountStore: s.stores.AccountStore,
		}

		id, err := orchestrators.ExecuteLogin(r.Context(), input, deps)
		if err != nil {
			s.renderTemplate(w, r, "login.html", map[string]any{
				"Title": "Login — Aura Fest Events",
				"Error": err.Error(),
			})
			return
		}

		token, err := s.sessions.Create(id)
		if err != nil {
			internalError(w, err)
			return
		}
		middleware.SetSessionCookie(w, token, s.cfg.SecureCookies)
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	w.WriteHeader(http.StatusMethodNotAllowed)
}

// handleLogout handles GET /logout. Protected: anonymous callers are sent to
// the login page; for everyone else the session is cleared unconditionally.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.GetSessionFromContext(r.Context()); !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if token := middleware.SessionToken(r); token != "" {
		s.sessions.Delete(token)
	}
	middleware.ClearSessionCookie(w, s.cfg.SecureCookies)
	s.flash.Set(w, "You have been logged out.", "info")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleDashboard handles GET /dashboard: the signed-in user's bookings,
// matched by their contact identifier, newest event date first.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	sess, ok := middleware.GetSessionFromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	// The admin identity has no contact identifier to match on.
	if sess.Identity.IsAdmin() {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	bookings, err := s.stores.BookingStore.ListByContact(r.Context(), sess.Identity.EmailOrPhone)
	if err != nil {
		internalError(w, err)
		return
	}

	s.renderTemplate(w, r, "dashboard.html", map[string]any{
		"Title":    "My Bookings — Aura Fest Events",
		"Bookings": bookings,
	})
}
