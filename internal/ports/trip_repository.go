package ports

import (
	"context"
	"errors"

	"routecraft-service/internal/domain"
)

// Returned by DeleteTrip when no trip matches the booking id.
var ErrTripNotFound = errors.New("trip not found")

// Port: a boundary for persisting booked trips in a data source.
type TripRepository interface {
	// Store a booked trip. Saving the same booking id twice overwrites.
	SaveTrip(ctx context.Context, trip *domain.Trip) error

	// Retrieve all saved trips, most recent first.
	ListTrips(ctx context.Context) ([]*domain.Trip, error)

	// Remove a trip by booking id. Returns ErrTripNotFound when absent.
	DeleteTrip(ctx context.Context, bookingID string) error
}
