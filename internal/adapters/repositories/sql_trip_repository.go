package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"routecraft-service/internal/domain"
	"routecraft-service/internal/platform/obs"
	"routecraft-service/internal/ports"
)

// SQLTripRepository persists booked trips in a SQL database.
// The statements stick to the portable subset shared by Postgres (pgx)
// and SQLite, so one repository serves both backends.
type SQLTripRepository struct {
	DB *sql.DB
}

func NewSQLTripRepository(db *sql.DB) *SQLTripRepository {
	return &SQLTripRepository{DB: db}
}

func (r *SQLTripRepository) SaveTrip(ctx context.Context, trip *domain.Trip) (err error) {
	defer obs.Time(ctx, "trips.repo.SaveTrip")(&err)

	if r.DB == nil {
		return errors.New("trip repository: db is nil")
	}
	if trip == nil {
		return errors.New("save trip: trip must be non-nil")
	}
	if strings.TrimSpace(trip.BookingID) == "" {
		return errors.New("save trip: booking id must be non-empty")
	}

	q := `
	INSERT INTO trips (
		booking_id, route_id, from_city, destination_label, date_label,
		chain, total_cost, total_duration_minutes, preference, created_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (booking_id) DO UPDATE
	SET route_id = EXCLUDED.route_id,
		from_city = EXCLUDED.from_city,
		destination_label = EXCLUDED.destination_label,
		date_label = EXCLUDED.date_label,
		chain = EXCLUDED.chain,
		total_cost = EXCLUDED.total_cost,
		total_duration_minutes = EXCLUDED.total_duration_minutes,
		preference = EXCLUDED.preference,
		created_at = EXCLUDED.created_at;
	`

	_, err = r.DB.ExecContext(ctx, q,
		trip.BookingID, trip.RouteID, trip.FromCity, trip.DestinationLabel,
		trip.DateLabel, trip.Chain, trip.TotalCost, trip.TotalDurationMinutes,
		string(trip.Preference), trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save trip: insert booking %q: %w", trip.BookingID, err)
	}

	return nil
}

func (r *SQLTripRepository) ListTrips(ctx context.Context) (_ []*domain.Trip, err error) {
	defer obs.Time(ctx, "trips.repo.ListTrips")(&err)

	if r.DB == nil {
		return nil, errors.New("trip repository: db is nil")
	}

	q := `
	SELECT booking_id, route_id, from_city, destination_label, date_label,
		chain, total_cost, total_duration_minutes, preference, created_at
	FROM trips
	ORDER BY created_at DESC, booking_id;
	`

	rows, err := r.DB.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list trips: query trips table: %w", err)
	}
	defer rows.Close()

	trips := []*domain.Trip{}
	for rows.Next() {
		var t domain.Trip
		var pref string
		if err := rows.Scan(
			&t.BookingID, &t.RouteID, &t.FromCity, &t.DestinationLabel,
			&t.DateLabel, &t.Chain, &t.TotalCost, &t.TotalDurationMinutes,
			&pref, &t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("list trips: scan row: %w", err)
		}
		t.Preference = domain.Preference(pref)
		trips = append(trips, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: row iteration: %w", err)
	}

	return trips, nil
}

func (r *SQLTripRepository) DeleteTrip(ctx context.Context, bookingID string) (err error) {
	defer obs.Time(ctx, "trips.repo.DeleteTrip")(&err)

	if r.DB == nil {
		return errors.New("trip repository: db is nil")
	}

	res, err := r.DB.ExecContext(ctx, `DELETE FROM trips WHERE booking_id = $1;`, bookingID)
	if err != nil {
		return fmt.Errorf("delete trip: booking %q: %w", bookingID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete trip: rows affected for booking %q: %w", bookingID, err)
	}
	if n == 0 {
		return ports.ErrTripNotFound
	}

	return nil
}
