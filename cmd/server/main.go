package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	emailPkg "aurafest/internal/adapters/email"
	web "aurafest/internal/adapters/http"
	"aurafest/internal/adapters/storage"
	accountStore "aurafest/internal/adapters/storage/account"
	bookingStore "aurafest/internal/adapters/storage/booking"
	enquiryStore "aurafest/internal/adapters/storage/enquiry"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	env := envOrDefault("AURAFEST_ENV", "development")
	production := env == "production"

	// The admin bearer token has no fallback in any environment.
	adminToken := os.Getenv("AURAFEST_ADMIN_TOKEN")
	if adminToken == "" {
		log.Fatal("AURAFEST_ADMIN_TOKEN is required")
	}

	secretKey := loadSecretKey(production)

	// Open database with WAL mode and busy timeout
	dbPath := envOrDefault("AURAFEST_DB", "aurafest.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	log.Println("Database initialized successfully!")

	stores := &web.Stores{
		AccountStore: accountStore.NewSQLiteStore(db),
		EnquiryStore: enquiryStore.NewSQLiteStore(db),
		BookingStore: bookingStore.NewSQLiteStore(db),
	}

	userCount, err := stores.AccountStore.Count(context.Background())
	if err != nil {
		log.Fatalf("failed to count users: %v", err)
	}
	log.Printf("%d registered user(s)", userCount)

	// Configure notification sender
	notifyTo := os.Getenv("AURAFEST_NOTIFY_TO")
	emailFrom := envOrDefault("AURAFEST_RESEND_FROM", "Aura Fest Events <noreply@aurafestevents.in>")
	var sender emailPkg.Sender
	if resendKey := os.Getenv("AURAFEST_RESEND_KEY"); resendKey != "" {
		sender = emailPkg.NewResendSender(resendKey, emailFrom)
		log.Println("Email sender configured (Resend)")
	} else {
		sender = emailPkg.NewNoopSender()
		if production {
			log.Println("WARNING: AURAFEST_RESEND_KEY is not set — submission notifications are DISABLED in production")
		} else {
			log.Println("Email sender configured (noop — set AURAFEST_RESEND_KEY for real delivery)")
		}
	}

	addr := envOrDefault("AURAFEST_ADDR", ":8080")
	cfg := web.Config{
		StaticDir:      envOrDefault("AURAFEST_STATIC_DIR", "static"),
		SecretKey:      secretKey,
		AdminToken:     adminToken,
		NotifyTo:       notifyTo,
		TrustedOrigins: trustedOrigins(addr),
		SecureCookies:  production,
	}
	_, handler := web.NewMux(cfg, stores, sender)

	log.Printf("Aura Fest %s starting on %s (env=%s)", version, addr, env)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// loadSecretKey reads the cookie-signing secret from AURAFEST_SECRET_KEY
// (hex-encoded, 32 bytes). In production the key MUST be set. In development
// a random key is generated per startup.
func loadSecretKey(production bool) []byte {
	if keyHex := os.Getenv("AURAFEST_SECRET_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("AURAFEST_SECRET_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if production {
		log.Fatal("AURAFEST_SECRET_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate secret key: %v", err)
	}
	log.Println("WARNING: using random secret key (sessions won't survive restart). Set AURAFEST_SECRET_KEY for production.")
	return key
}

// trustedOrigins derives the CSRF trusted-origin list from configuration.
func trustedOrigins(addr string) []string {
	if v := os.Getenv("AURAFEST_TRUSTED_ORIGINS"); v != "" {
		return strings.Split(v, ",")
	}
	port := addr
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		port = addr[i:]
	}
	return []string{"localhost" + port, "127.0.0.1" + port}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
