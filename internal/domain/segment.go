package domain

// Represents one single-mode leg of a journey between two named points.
// A Segment is immutable once built: it is a pure function of
// (from, to, mode, departure time) plus static mode configuration.
type Segment struct {
	From            string
	To              string
	Mode            TransportMode
	DistanceKm      float64
	DurationMinutes int
	Cost            int
	Comfort         float64
	DepartureTime   string
	ArrivalTime     string
}
