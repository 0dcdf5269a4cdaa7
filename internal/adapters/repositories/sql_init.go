package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"routecraft-service/internal/domain"
)

// Initialize the trips schema. The DDL is restricted to the subset both
// SQLite and Postgres accept, so the same call works for either backend.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	createTripsQuery := `
	CREATE TABLE IF NOT EXISTS trips (
		booking_id TEXT PRIMARY KEY,
		route_id TEXT NOT NULL,
		from_city TEXT NOT NULL,
		destination_label TEXT NOT NULL,
		date_label TEXT NOT NULL,
		chain TEXT NOT NULL,
		total_cost INTEGER NOT NULL,
		total_duration_minutes INTEGER NOT NULL,
		preference TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	);
	`

	if _, err := db.Exec(createTripsQuery); err != nil {
		return fmt.Errorf("init schema: create trips table: %w", err)
	}

	return nil
}

type seedTrip struct {
	BookingID            string `json:"booking_id"`
	RouteID              string `json:"route_id"`
	FromCity             string `json:"from_city"`
	DestinationLabel     string `json:"destination_label"`
	DateLabel            string `json:"date_label"`
	Chain                string `json:"chain"`
	TotalCost            int    `json:"total_cost"`
	TotalDurationMinutes int    `json:"total_duration_minutes"`
	Preference           string `json:"preference"`
}

// Seed demo trips from a JSON file. A missing file is not an error so
// fresh checkouts can start without seed data.
func SeedFromJSON(db *sql.DB, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("seed trips: read %q: %w", path, err)
	}

	var seeds []seedTrip
	if err := json.Unmarshal(raw, &seeds); err != nil {
		return fmt.Errorf("seed trips: parse %q: %w", path, err)
	}

	repo := NewSQLTripRepository(db)
	now := time.Now().UTC()

	for i, s := range seeds {
		trip := &domain.Trip{
			BookingID:            s.BookingID,
			RouteID:              s.RouteID,
			FromCity:             s.FromCity,
			DestinationLabel:     s.DestinationLabel,
			DateLabel:            s.DateLabel,
			Chain:                s.Chain,
			TotalCost:            s.TotalCost,
			TotalDurationMinutes: s.TotalDurationMinutes,
			Preference:           domain.ParsePreference(s.Preference),
			CreatedAt:            now.Add(time.Duration(i) * time.Second),
		}
		if err := repo.SaveTrip(context.Background(), trip); err != nil {
			return fmt.Errorf("seed trips: save booking %q: %w", s.BookingID, err)
		}
	}

	return nil
}
