package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	domain "aurafest/internal/domain/booking"
)

const selectColumns = "id, name, email, phone, event_type, date, location, budget, notes, created_at"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new BookingStore.
func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Save inserts a Booking.
// PRE: entity has been validated
// POST: Entity is persisted
func (s *SQLiteStore) Save(ctx context.Context, entity domain.Booking) error {
	query := "INSERT INTO bookings (" + selectColumns + ") VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)"
	_, err := s.db.ExecContext(ctx, query,
		entity.ID,
		entity.Name,
		entity.Email,
		entity.Phone,
		entity.EventType,
		entity.Date,
		entity.Location,
		entity.Budget,
		entity.Notes,
		entity.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	return err
}

// List retrieves all bookings, newest submission first.
// POST: Returns entities ordered by created_at descending
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Booking, error) {
	return s.query(ctx, "SELECT "+selectColumns+" FROM bookings ORDER BY created_at DESC")
}

// ListByDate retrieves all bookings ordered by event date descending.
// POST: Returns entities ordered by date descending
func (s *SQLiteStore) ListByDate(ctx context.Context) ([]domain.Booking, error) {
	return s.query(ctx, "SELECT "+selectColumns+" FROM bookings ORDER BY date DESC")
}

// ListByContact retrieves bookings owned by the given identifier.
// PRE: identifier is non-empty
// POST: Returns bookings where email or phone equals identifier, by date descending
func (s *SQLiteStore) ListByContact(ctx context.Context, identifier string) ([]domain.Booking, error) {
	query := "SELECT " + selectColumns + " FROM bookings WHERE email = ? OR phone = ? ORDER BY date DESC"
	return s.query(ctx, query, identifier, identifier)
}

func (s *SQLiteStore) query(ctx context.Context, query string, args ...interface{}) ([]domain.Booking, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.Booking
	for rows.Next() {
		entity, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, err
		}
		results = append(results, entity)
	}
	return results, rows.Err()
}

// scanBooking extracts a Booking from a row scanner function.
func scanBooking(scan func(dest ...interface{}) error) (domain.Booking, error) {
	var entity domain.Booking
	var email, budget, notes sql.NullString
	var createdAt string
	err := scan(
		&entity.ID,
		&entity.Name,
		&email,
		&entity.Phone,
		&entity.EventType,
		&entity.Date,
		&entity.Location,
		&budget,
		&notes,
		&createdAt,
	)
	if err != nil {
		return domain.Booking{}, err
	}
	entity.Email = email.String
	entity.Budget = budget.String
	entity.Notes = notes.String
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
