package web

import (
	"net/http"
	"time"

	"aurafest/internal/adapters/email"
	"aurafest/internal/adapters/http/middleware"
	accountStore "aurafest/internal/adapters/storage/account"
	bookingStore "aurafest/internal/adapters/storage/booking"
	enquiryStore "aurafest/internal/adapters/storage/enquiry"
)

// Stores holds all storage dependencies.
type Stores struct {
	AccountStore accountStore.Store
	EnquiryStore enquiryStore.Store
	BookingStore bookingStore.Store
}

// Config carries the settings the HTTP layer needs. SecretKey signs CSRF and
// flash cookies; AdminToken is the admin bearer secret. Both are validated at
// startup, never defaulted here.
type Config struct {
	StaticDir      string
	TemplatesDir   string
	SecretKey      []byte
	AdminToken     string
	NotifyTo       string
	TrustedOrigins []string
	SecureCookies  bool

	// RateLimitPerSecond is the per-IP request budget. Zero means the
	// default of 10.
	RateLimitPerSecond int
}

// Server dispatches HTTP requests. It is constructed once at startup and
// holds every dependency the handlers touch: no package-level mutable state.
type Server struct {
	stores   *Stores
	sessions *middleware.SessionStore
	flash    *middleware.FlashCodec
	sender   email.Sender
	cfg      Config
}

// NewServer creates a Server with its own session store and flash codec.
// PRE: cfg.SecretKey is 32 bytes; cfg.AdminToken is non-empty
func NewServer(cfg Config, stores *Stores, sender email.Sender) *Server {
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = "internal/adapters/http/templates"
	}
	if cfg.RateLimitPerSecond <= 0 {
		cfg.RateLimitPerSecond = 10
	}
	if sender == nil {
		sender = email.NewNoopSender()
	}
	return &Server{
		stores:   stores,
		sessions: middleware.NewSessionStore(),
		flash:    middleware.NewFlashCodec(cfg.SecretKey, cfg.SecureCookies),
		sender:   sender,
		cfg:      cfg,
	}
}

// Routes registers all handlers on a fresh mux.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	// Public pages
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/services", s.handleServices)
	mux.HandleFunc("/gallery", s.handleGallery)
	mux.HandleFunc("/contact", s.handleContact)
	mux.HandleFunc("/wedding", s.handleEventPage("wedding.html", "Wedding Decoration"))
	mux.HandleFunc("/birthday", s.handleEventPage("birthday.html", "Birthday Decoration"))
	mux.HandleFunc("/babyshower", s.handleEventPage("babyshower.html", "Baby Shower Decoration"))
	mux.HandleFunc("/corprate", s.handleEventPage("corprate.html", "Corporate Events"))
	mux.HandleFunc("/booking-success", s.handleBookingSuccess)

	// Form intake
	mux.HandleFunc("/api/enquiry", s.handleAPIEnquiry)
	mux.HandleFunc("/api/book", s.handleAPIBook)

	// Accounts
	mux.HandleFunc("/signup", s.handleSignup)
	mux.HandleFunc("/login", s.handleLogin)
	mux.HandleFunc("/logout", s.handleLogout)
	mux.HandleFunc("/dashboard", s.handleDashboard)

	// Admin
	mux.HandleFunc("/admin-login", s.handleAdminLogin)
	mux.HandleFunc("/admin", s.handleAdmin)
	mux.HandleFunc("/admin/bookings", s.handleAdminBookings)
	mux.HandleFunc("/api/admin/data", s.handleAPIAdminData)

	// Static assets
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(s.cfg.StaticDir))))

	return mux
}

// NewMux wires the full handler: routes plus the middleware chain.
func NewMux(cfg Config, stores *Stores, sender email.Sender) (*Server, http.Handler) {
	s := NewServer(cfg, stores, sender)
	limiter := middleware.NewRateLimiter(s.cfg.RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> Auth -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	h := middleware.Chain(s.Routes(),
		middleware.SecurityHeaders,
		middleware.CSRF(cfg.SecretKey, s.flash, cfg.TrustedOrigins, cfg.SecureCookies),
		middleware.Auth(s.sessions),
		middleware.RateLimit(limiter),
		middleware.Timing(),
	)
	return s, h
}
