package account

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	domain "aurafest/internal/domain/account"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new AccountStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// GetByIdentifier retrieves a User by email-or-phone identifier.
// PRE: emailOrPhone is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByIdentifier(ctx context.Context, emailOrPhone string) (domain.User, error) {
	query := "SELECT id, email_or_phone, password_hash, created_at FROM users WHERE email_or_phone = ?"
	row := s.db.QueryRowContext(ctx, query, emailOrPhone)

	entity, err := scanUser(row.Scan)
	if err == sql.ErrNoRows {
		return domain.User{}, fmt.Errorf("account not found: %w", err)
	}
	return entity, err
}

// Save inserts a User. The UNIQUE constraint on email_or_phone is the source
// of truth for duplicates and is surfaced as domain.ErrIdentifierTaken.
// PRE: entity has been validated
// POST: Entity is persisted, or ErrIdentifierTaken on duplicate identifier
func (s *SQLiteStore) Save(ctx context.Context, entity domain.User) error {
	query := "INSERT INTO users (id, email_or_phone, password_hash, created_at) VALUES (?, ?, ?, ?)"
	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.EmailOrPhone,
		entity.PasswordHash,
		entity.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return domain.ErrIdentifierTaken
	}
	return err
}

// Count returns the total number of users.
// POST: Returns total user count
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	return count, err
}

// scanUser extracts a User from a row scanner function.
func scanUser(scan func(dest ...interface{}) error) (domain.User, error) {
	var entity domain.User
	var createdAt string
	err := scan(
		&entity.ID,
		&entity.EmailOrPhone,
		&entity.PasswordHash,
		&createdAt,
	)
	if err != nil {
		return domain.User{}, err
	}
	entity.CreatedAt, _ = parseTime(createdAt)
	return entity, nil
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02 15:04:05",
	}
	for _, f := range formats {
		t, err := time.Parse(f, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("cannot parse time: %s", s)
}
