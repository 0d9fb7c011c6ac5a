package orchestrators

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"aurafest/internal/domain/account"
)

// AccountStoreForSignup defines the store interface needed by Signup.
type AccountStoreForSignup interface {
	GetByIdentifier(ctx context.Context, emailOrPhone string) (account.User, error)
	Save(ctx context.Context, u account.User) error
}

// SignupInput carries input for the signup orchestrator. Email and Phone are
// the two optional contact fields from the form; whichever is supplied
// becomes the account identifier, email preferred.
type SignupInput struct {
	Email    string
	Phone    string
	Password string
}

// SignupDeps holds dependencies for Signup.
type SignupDeps struct {
	AccountStore AccountStoreForSignup
	GenerateID   func() string
	Now          func() time.Time
}

// ExecuteSignup creates a new user account. Signup does not log the user in;
// a subsequent explicit login is required.
// PRE: Deps are non-nil
// POST: User persisted with bcrypt password hash
// INVARIANT: EmailOrPhone is unique
func ExecuteSignup(ctx context.Context, input SignupInput, deps SignupDeps) (account.User, error) {
	identifier := strings.TrimSpace(input.Email)
	if identifier == "" {
		identifier = strings.TrimSpace(input.Phone)
	}

	u := account.User{
		ID:           deps.GenerateID(),
		EmailOrPhone: identifier,
		CreatedAt:    deps.Now().UTC(),
	}
	if err := u.Validate(); err != nil {
		return account.User{}, err
	}
	if err := u.SetPassword(input.Password); err != nil {
		return account.User{}, err
	}

	// Pre-check for a friendlier path; the UNIQUE constraint in Save remains
	// the source of truth under concurrent signups.
	if _, err := deps.AccountStore.GetByIdentifier(ctx, identifier); err == nil {
		return account.User{}, account.ErrIdentifierTaken
	}

	if err := deps.AccountStore.Save(ctx, u); err != nil {
		return account.User{}, err
	}

	slog.Info("auth_event", "event", "signup", "identifier", identifier)
	return u, nil
}
