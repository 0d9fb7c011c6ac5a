package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"aurafest/internal/adapters/storage"
	domain "aurafest/internal/domain/booking"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	return NewSQLiteStore(db)
}

func testBooking(id, email, phone, date string) domain.Booking {
	return domain.Booking{
		ID:        id,
		Name:      "Guest",
		Email:     email,
		Phone:     phone,
		EventType: "wedding",
		Date:      date,
		Location:  "Chennai",
		CreatedAt: time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
	}
}

func TestSaveAndListByDate(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, b := range []domain.Booking{
		testBooking("b-1", "a@example.com", "021000001", "2026-05-01"),
		testBooking("b-2", "b@example.com", "021000002", "2026-07-15"),
		testBooking("b-3", "c@example.com", "021000003", "2026-06-20"),
	} {
		if err := store.Save(ctx, b); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	got, err := store.ListByDate(ctx)
	if err != nil {
		t.Fatalf("ListByDate failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(got))
	}
	// Latest event date first.
	want := []string{"b-2", "b-3", "b-1"}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestListByContact(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	mine := testBooking("b-1", "priya@example.com", "021555123", "2026-05-01")
	mineByPhone := testBooking("b-2", "", "021555123", "2026-07-15")
	other := testBooking("b-3", "other@example.com", "021999999", "2026-06-20")

	for _, b := range []domain.Booking{mine, mineByPhone, other} {
		if err := store.Save(ctx, b); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}

	t.Run("matches email", func(t *testing.T) {
		got, err := store.ListByContact(ctx, "priya@example.com")
		if err != nil {
			t.Fatalf("ListByContact failed: %v", err)
		}
		if len(got) != 1 || got[0].ID != "b-1" {
			t.Errorf("expected [b-1], got %+v", got)
		}
	})

	t.Run("matches phone", func(t *testing.T) {
		got, err := store.ListByContact(ctx, "021555123")
		if err != nil {
			t.Fatalf("ListByContact failed: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("expected 2 bookings, got %d", len(got))
		}
		// Latest event date first.
		if got[0].ID != "b-2" || got[1].ID != "b-1" {
			t.Errorf("unexpected order: %s, %s", got[0].ID, got[1].ID)
		}
	})

	t.Run("no match", func(t *testing.T) {
		got, err := store.ListByContact(ctx, "stranger@example.com")
		if err != nil {
			t.Fatalf("ListByContact failed: %v", err)
		}
		if len(got) != 0 {
			t.Errorf("expected no bookings, got %d", len(got))
		}
	})
}

func TestRoundTrip_OptionalFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	b := testBooking("b-1", "", "021555123", "2026-05-01")
	b.Budget = "50000"
	b.Notes = "Outdoor mandap"
	if err := store.Save(ctx, b); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(got))
	}
	if got[0].Email != "" || got[0].Budget != "50000" || got[0].Notes != "Outdoor mandap" {
		t.Errorf("round trip mismatch: %+v", got[0])
	}
}
