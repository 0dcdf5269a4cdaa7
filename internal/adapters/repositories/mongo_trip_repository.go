package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"routecraft-service/internal/domain"
	"routecraft-service/internal/platform/obs"
	"routecraft-service/internal/ports"
)

// MongoTripRepository persists booked trips in a MongoDB collection.
// It is the hosted-database alternative to the SQL repository and
// implements the same TripRepository port.
type MongoTripRepository struct {
	coll *mongo.Collection
}

type tripDoc struct {
	BookingID            string    `bson:"booking_id"`
	RouteID              string    `bson:"route_id"`
	FromCity             string    `bson:"from_city"`
	DestinationLabel     string    `bson:"destination_label"`
	DateLabel            string    `bson:"date_label"`
	Chain                string    `bson:"chain"`
	TotalCost            int       `bson:"total_cost"`
	TotalDurationMinutes int       `bson:"total_duration_minutes"`
	Preference           string    `bson:"preference"`
	CreatedAt            time.Time `bson:"created_at"`
}

func NewMongoTripRepository(coll *mongo.Collection) *MongoTripRepository {
	return &MongoTripRepository{coll: coll}
}

func (r *MongoTripRepository) SaveTrip(ctx context.Context, trip *domain.Trip) (err error) {
	defer obs.Time(ctx, "trips.repo.SaveTrip")(&err)

	if trip == nil {
		return errors.New("save trip: trip must be non-nil")
	}

	doc := tripDoc{
		BookingID:            trip.BookingID,
		RouteID:              trip.RouteID,
		FromCity:             trip.FromCity,
		DestinationLabel:     trip.DestinationLabel,
		DateLabel:            trip.DateLabel,
		Chain:                trip.Chain,
		TotalCost:            trip.TotalCost,
		TotalDurationMinutes: trip.TotalDurationMinutes,
		Preference:           string(trip.Preference),
		CreatedAt:            trip.CreatedAt,
	}

	filter := bson.M{"booking_id": trip.BookingID}
	opts := options.Replace().SetUpsert(true)

	if _, err := r.coll.ReplaceOne(ctx, filter, doc, opts); err != nil {
		return fmt.Errorf("save trip: upsert booking %q: %w", trip.BookingID, err)
	}

	return nil
}

func (r *MongoTripRepository) ListTrips(ctx context.Context) (_ []*domain.Trip, err error) {
	defer obs.Time(ctx, "trips.repo.ListTrips")(&err)

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list trips: find: %w", err)
	}
	defer cur.Close(ctx)

	trips := []*domain.Trip{}
	for cur.Next(ctx) {
		var doc tripDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("list trips: decode document: %w", err)
		}

		trips = append(trips, &domain.Trip{
			BookingID:            doc.BookingID,
			RouteID:              doc.RouteID,
			FromCity:             doc.FromCity,
			DestinationLabel:     doc.DestinationLabel,
			DateLabel:            doc.DateLabel,
			Chain:                doc.Chain,
			TotalCost:            doc.TotalCost,
			TotalDurationMinutes: doc.TotalDurationMinutes,
			Preference:           domain.Preference(doc.Preference),
			CreatedAt:            doc.CreatedAt,
		})
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list trips: cursor iteration: %w", err)
	}

	return trips, nil
}

func (r *MongoTripRepository) DeleteTrip(ctx context.Context, bookingID string) (err error) {
	defer obs.Time(ctx, "trips.repo.DeleteTrip")(&err)

	res, err := r.coll.DeleteOne(ctx, bson.M{"booking_id": bookingID})
	if err != nil {
		return fmt.Errorf("delete trip: booking %q: %w", bookingID, err)
	}
	if res.DeletedCount == 0 {
		return ports.ErrTripNotFound
	}

	return nil
}
