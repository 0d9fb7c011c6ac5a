package account

import (
	"context"

	domain "aurafest/internal/domain/account"
)

// Store persists User state. Users are insert-only: there is no update or
// delete path after signup.
type Store interface {
	GetByIdentifier(ctx context.Context, emailOrPhone string) (domain.User, error)
	// Save inserts a new user. Returns domain.ErrIdentifierTaken if the
	// identifier is already registered.
	Save(ctx context.Context, value domain.User) error
	Count(ctx context.Context) (int, error)
}
