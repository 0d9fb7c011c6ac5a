package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"aurafest/internal/domain/account"
	"aurafest/internal/domain/identity"
)

// AccountStoreForLogin defines the store interface needed by Login.
type AccountStoreForLogin interface {
	GetByIdentifier(ctx context.Context, emailOrPhone string) (account.User, error)
}

// LoginInput carries input for the login orchestrator.
type LoginInput struct {
	Identifier string
	Password   string
}

// LoginDeps holds dependencies for Login.
type LoginDeps struct {
	AccountStore AccountStoreForLogin
}

// ErrInvalidCredentials is returned for any failed login: unknown identifier,
// blank input, or wrong password. The caller must not distinguish which.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ExecuteLogin verifies credentials and returns the identity for session creation.
// PRE: Deps are non-nil
// POST: Returns a user identity on success; no session side effects on failure
func ExecuteLogin(ctx context.Context, input LoginInput, deps LoginDeps) (identity.Identity, error) {
	id := strings.TrimSpace(input.Identifier)
	if id == "" || input.Password == "" {
		return identity.Identity{}, ErrInvalidCredentials
	}

	u, err := deps.AccountStore.GetByIdentifier(ctx, id)
	if err != nil {
		slog.Info("auth_event", "event", "login_failed", "identifier", id, "reason", "not_found")
		return identity.Identity{}, ErrInvalidCredentials
	}

	if err := u.CheckPassword(input.Password); err != nil {
		slog.Info("auth_event", "event", "login_failed", "identifier", id, "reason", "wrong_password")
		return identity.Identity{}, ErrInvalidCredentials
	}

	slog.Info("auth_event", "event", "login_success", "identifier", id)
	return identity.NewUser(u.ID, u.EmailOrPhone), nil
}
