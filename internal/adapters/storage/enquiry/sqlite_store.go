package enquiry

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	domain "aurafest/internal/domain/enquiry"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new EnquiryStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save inserts an Enquiry.
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Enquiry) error {
	query := "INSERT INTO enquiries (id, name, email, phone, message, created_at) VALUES (?, ?, ?, ?, ?, ?)"
	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.Name,
		entity.Email,
		entity.Phone,
		entity.Message,
		entity.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// List retrieves all enquiries, newest first.
// POST: Returns entities ordered by created_at descending
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Enquiry, error) {
	query := "SELECT id, name, email, phone, message, created_at FROM enquiries ORDER BY created_at DESC"
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Enquiry
	for rows.Next() {
		entity, err := scanEnquiry(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// scanEnquiry extracts an Enquiry from a row scanner function.
func scanEnquiry(scan func(dest ...interface{}) error) (domain.Enquiry, error) {
	var entity domain.Enquiry
	var email, message sql.NullString
	var createdAt string
	err := scan(
		&entity.ID,
		&entity.Name,
		&email,
		&entity.Phone,
		&message,
		&createdAt,
	)
	if err != nil {
		return domain.Enquiry{}, err
	}
	entity.Email = email.String
	entity.Message = message.String
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
