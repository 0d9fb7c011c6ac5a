package orchestrators

import (
	"crypto/subtle"
	"errors"
	"log/slog"

	"aurafest/internal/domain/identity"
)

// AdminLoginInput carries input for the admin-login orchestrator.
type AdminLoginInput struct {
	Token string
}

// AdminLoginDeps holds dependencies for AdminLogin.
type AdminLoginDeps struct {
	// AdminToken is the configured bearer secret. Startup fails if it is
	// unset, so an empty value here is a programming error, not a wildcard.
	AdminToken string
}

// ErrInvalidAdminToken is returned when the presented token does not match.
var ErrInvalidAdminToken = errors.New("invalid admin token")

// ExecuteAdminLogin compares the presented token against the configured
// secret in constant time and returns the singleton admin identity on match.
// PRE: deps.AdminToken is non-empty
// POST: Returns the admin identity, or ErrInvalidAdminToken with no session effect
func ExecuteAdminLogin(input AdminLoginInput, deps AdminLoginDeps) (identity.Identity, error) {
	if deps.AdminToken == "" {
		return identity.Identity{}, ErrInvalidAdminToken
	}
	if subtle.ConstantTimeCompare([]byte(input.Token), []byte(deps.AdminToken)) != 1 {
		slog.Info("auth_event", "event", "admin_login_failed")
		return identity.Identity{}, ErrInvalidAdminToken
	}

	slog.Info("auth_event", "event", "admin_login_success")
	return identity.NewAdmin(), nil
}
