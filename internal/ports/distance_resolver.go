package ports

// Port: a boundary for resolving the distance between two named locations.
//
// Implementations are total functions: an unknown pair degrades to a
// plausible fallback distance instead of failing, and identical endpoints
// resolve to zero. They read only immutable configuration, so a resolver
// is safe to share across concurrent searches.
type DistanceResolver interface {
	// Return the distance in kilometers between two named locations.
	DistanceKm(from string, to string) float64
}
