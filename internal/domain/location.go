package domain

// Location is a named, geo-located point a route can start or end at.
// It covers both whole cities and landmarks within a city; the City
// field carries the parent city for landmark destinations.
type Location struct {
	Key   string
	Label string
	City  string
	Lat   float64
	Lng   float64
}
