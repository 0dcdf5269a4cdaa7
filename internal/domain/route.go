package domain

// Represents one assembled, scored route candidate between two points.
// A Route is the output of the engine and is immutable planning data:
// it holds the ordered segment chain, aggregate metrics, and the
// preference-aware score, rank, and label filled in during ranking.
//
// TotalDurationMinutes sums raw segment durations only. The fixed
// transfer buffer between segments shows up in each segment's clock
// times but is intentionally excluded from the total.
type Route struct {
	ID                   string
	From                 string
	To                   string
	DateLabel            string
	Segments             []Segment
	TotalCost            int
	TotalDurationMinutes int
	Transfers            int
	Comfort              float64
	PrimaryMode          TransportMode
	Score                int
	Rank                 int
	PreferenceMatchLabel string
}
