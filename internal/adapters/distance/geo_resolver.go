package distance

import (
	"math"

	"routecraft-service/internal/domain"
)

// GeoResolver resolves distances between named, geo-located places
// (cities or landmarks within a city) from their coordinates.
//
// The distance is a flat-plane heuristic over raw lat/lng deltas scaled
// to roughly match road distances in the demo region, floored at 60 km
// so short in-city hops still produce visible costs and durations. It is
// not a geodesic calculation; the engine is a demo planner, not a
// navigation system.
type GeoResolver struct {
	places map[string]domain.Location
}

const (
	geoScaleKm   = 140
	minGeoKm     = 60
	unknownGeoKm = FallbackDistanceKm
)

// Demo cities and landmark destinations with approximate coordinates.
func DefaultPlaces() []domain.Location {
	return []domain.Location{
		{Key: "Guntur", Label: "Guntur", City: "Guntur", Lat: 16.3067, Lng: 80.4365},
		{Key: "Vijayawada", Label: "Vijayawada", City: "Vijayawada", Lat: 16.5062, Lng: 80.648},
		{Key: "Hyderabad", Label: "Hyderabad", City: "Hyderabad", Lat: 17.385, Lng: 78.4867},
		{Key: "Chennai", Label: "Chennai", City: "Chennai", Lat: 13.0827, Lng: 80.2707},
		{Key: "pvpMall", Label: "PVP Mall, Vijayawada", City: "Vijayawada", Lat: 16.5085, Lng: 80.646},
		{Key: "benzCircle", Label: "Benz Circle, Vijayawada", City: "Vijayawada", Lat: 16.5055, Lng: 80.6485},
		{Key: "charminar", Label: "Charminar, Hyderabad", City: "Hyderabad", Lat: 17.3616, Lng: 78.4747},
		{Key: "marinaBeach", Label: "Marina Beach, Chennai", City: "Chennai", Lat: 13.05, Lng: 80.2824},
	}
}

func NewGeoResolver(places []domain.Location) *GeoResolver {
	m := make(map[string]domain.Location, len(places))
	for _, p := range places {
		m[p.Key] = p
	}
	return &GeoResolver{places: m}
}

func (r *GeoResolver) DistanceKm(from, to string) float64 {
	if from == to {
		return 0
	}

	a, okA := r.places[from]
	b, okB := r.places[to]
	if !okA || !okB {
		return unknownGeoKm
	}

	dLat := math.Abs(a.Lat - b.Lat)
	dLng := math.Abs(a.Lng - b.Lng)
	km := math.Round(math.Sqrt(dLat*dLat+dLng*dLng) * geoScaleKm)
	if km < minGeoKm {
		return minGeoKm
	}
	return km
}

// Lookup a place by key. Used by callers that need display labels or
// map coordinates for a resolved location.
func (r *GeoResolver) Place(key string) (domain.Location, bool) {
	p, ok := r.places[key]
	return p, ok
}
