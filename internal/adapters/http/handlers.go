package web

import (
	"bytes"
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/csrf"
	"github.com/yuin/goldmark"
	goldmarkHTML "github.com/yuin/goldmark/renderer/html"

	"aurafest/internal/adapters/http/middleware"
)

// timeNow is a variable for testability.
var timeNow = time.Now

// mdRenderer is a goldmark instance configured for safe HTML output.
// Raw HTML in markdown input is escaped (WithUnsafe is NOT set), so enquiry
// messages and booking notes render without XSS risk in the admin views.
var mdRenderer = goldmark.New(
	goldmark.WithRendererOptions(
		goldmarkHTML.WithHardWraps(),
	),
)

// generateID creates a new UUID string.
func generateID() string {
	return uuid.New().String()
}

// genericFailure is the message shown when persistence fails for any reason
// other than the anticipated duplicate-identifier case.
const genericFailure = "Something went wrong. Please try again."

// internalError logs the real error and returns a generic message to the client.
func internalError(w http.ResponseWriter, err error) {
	slog.Error("internal_error", "error", err.Error())
	http.Error(w, "internal server error", http.StatusInternalServerError)
}

// decodeJSON decodes JSON from the request body. Unknown fields are ignored:
// submissions carry whatever extra keys the client script sends along.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func isJSONRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/json")
}

// renderTemplate renders layout.html wrapped around the named page template.
func (s *Server) renderTemplate(w http.ResponseWriter, r *http.Request, templateName string, data map[string]any) {
	sess, loggedIn := middleware.GetSessionFromContext(r.Context())

	funcMap := template.FuncMap{
		"csrfToken":  func() string { return csrf.Token(r) },
		"isLoggedIn": func() bool { return loggedIn },
		"isAdmin":    func() bool { return loggedIn && sess.Identity.IsAdmin() },
		"currentContact": func() string {
			if !loggedIn {
				return ""
			}
			return sess.Identity.EmailOrPhone
		},
		"year": func() int { return timeNow().Year() },
		"renderMarkdown": func(md string) template.HTML {
			var buf bytes.Buffer
			if err := mdRenderer.Convert([]byte(md), &buf); err != nil {
				return template.HTML(template.HTMLEscapeString(md))
			}
			return template.HTML(buf.String())
		},
	}

	if data == nil {
		data = map[string]any{}
	}
	if flash, ok := s.flash.Pop(w, r); ok {
		data["Flash"] = flash
	}

	layoutPath := filepath.Join(s.cfg.TemplatesDir, "layout.html")
	pagePath := filepath.Join(s.cfg.TemplatesDir, templateName)
	tpl, err := template.New("layout.html").Funcs(funcMap).ParseFiles(layoutPath, pagePath)
	if err != nil {
		internalError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tpl.Execute(w, data); err != nil {
		slog.Error("render_error", "template", templateName, "error", err.Error())
	}
}

// renderError renders the shared error page with the given status.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, code int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	s.renderTemplate(w, r, "error.html", map[string]any{
		"Title":   message,
		"Code":    code,
		"Message": message,
	})
}

// handleIndex serves the home page and is the 404 fallback for unknown paths.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.renderError(w, r, http.StatusNotFound, "Page not found")
		return
	}
	s.renderTemplate(w, r, "index.html", map[string]any{
		"Title": "Aura Fest Events | Premium Event Decoration",
	})
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, r, "services.html", map[string]any{
		"Title": "Services — Aura Fest Events",
	})
}

// handleGallery lists image files found under the static images directory.
func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	var images []string
	imgDir := filepath.Join(s.cfg.StaticDir, "images")
	entries, err := os.ReadDir(imgDir)
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(entry.Name())) {
			case ".png", ".jpg", ".jpeg", ".webp", ".gif", ".svg":
				images = append(images, "/static/images/"+entry.Name())
			}
		}
		sort.Strings(images)
	}
	s.renderTemplate(w, r, "gallery.html", map[string]any{
		"Title":  "Gallery — Aura Fest Events",
		"Images": images,
	})
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, r, "contact.html", map[string]any{
		"Title": "Contact — Aura Fest Events",
	})
}

// handleEventPage returns a handler for one of the event-type landing pages.
func (s *Server) handleEventPage(templateName, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderTemplate(w, r, templateName, map[string]any{
			"Title": title + " — Aura Fest Events",
		})
	}
}

func (s *Server) handleBookingSuccess(w http.ResponseWriter, r *http.Request) {
	s.renderTemplate(w, r, "booking_success.html", map[string]any{
		"Title": "Booking Received — Aura Fest Events",
	})
}
