package repositories

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"routecraft-service/internal/domain"
	"routecraft-service/internal/ports"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "trips.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := InitSchema(db); err != nil {
		t.Fatalf("init schema: %v", err)
	}

	return db
}

func testTrip(bookingID string, createdAt time.Time) *domain.Trip {
	return &domain.Trip{
		BookingID:            bookingID,
		RouteID:              "Hyderabad-Bangalore-train",
		FromCity:             "Hyderabad",
		DestinationLabel:     "Bangalore",
		DateLabel:            "14 Sep 2026",
		Chain:                "train",
		TotalCost:            1539,
		TotalDurationMinutes: 489,
		Preference:           domain.PreferenceLowBudget,
		CreatedAt:            createdAt,
	}
}

func TestSQLTripRepositoryRoundTrip(t *testing.T) {
	repo := NewSQLTripRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	older := testTrip("RC000001", base)
	newer := testTrip("RC000002", base.Add(time.Hour))

	if err := repo.SaveTrip(ctx, older); err != nil {
		t.Fatalf("save older: %v", err)
	}
	if err := repo.SaveTrip(ctx, newer); err != nil {
		t.Fatalf("save newer: %v", err)
	}

	trips, err := repo.ListTrips(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(trips) != 2 {
		t.Fatalf("len(trips) = %d, want 2", len(trips))
	}
	if trips[0].BookingID != "RC000002" {
		t.Errorf("trips[0] = %q, want most recent booking first", trips[0].BookingID)
	}

	got := trips[1]
	if got.RouteID != older.RouteID || got.Chain != older.Chain {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if got.TotalCost != 1539 || got.TotalDurationMinutes != 489 {
		t.Errorf("totals = %d/%d, want 1539/489", got.TotalCost, got.TotalDurationMinutes)
	}
	if got.Preference != domain.PreferenceLowBudget {
		t.Errorf("preference = %q, want low_budget", got.Preference)
	}
}

func TestSQLTripRepositorySaveOverwrites(t *testing.T) {
	repo := NewSQLTripRepository(newTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	trip := testTrip("RC000001", base)
	if err := repo.SaveTrip(ctx, trip); err != nil {
		t.Fatalf("save: %v", err)
	}

	trip.TotalCost = 2000
	if err := repo.SaveTrip(ctx, trip); err != nil {
		t.Fatalf("re-save: %v", err)
	}

	trips, err := repo.ListTrips(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(trips) != 1 {
		t.Fatalf("len(trips) = %d, want 1 after overwrite", len(trips))
	}
	if trips[0].TotalCost != 2000 {
		t.Errorf("TotalCost = %d, want 2000", trips[0].TotalCost)
	}
}

func TestSQLTripRepositoryDelete(t *testing.T) {
	repo := NewSQLTripRepository(newTestDB(t))
	ctx := context.Background()

	trip := testTrip("RC000001", time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC))
	if err := repo.SaveTrip(ctx, trip); err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.DeleteTrip(ctx, "RC000001"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := repo.DeleteTrip(ctx, "RC000001"); !errors.Is(err, ports.ErrTripNotFound) {
		t.Fatalf("second delete err = %v, want ErrTripNotFound", err)
	}

	trips, err := repo.ListTrips(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(trips) != 0 {
		t.Fatalf("len(trips) = %d, want 0", len(trips))
	}
}

func TestSQLTripRepositoryValidation(t *testing.T) {
	repo := NewSQLTripRepository(newTestDB(t))
	ctx := context.Background()

	if err := repo.SaveTrip(ctx, nil); err == nil {
		t.Error("SaveTrip(nil) succeeded, want error")
	}

	trip := testTrip("  ", time.Now())
	trip.BookingID = "  "
	if err := repo.SaveTrip(ctx, trip); err == nil {
		t.Error("SaveTrip with blank booking id succeeded, want error")
	}
}
