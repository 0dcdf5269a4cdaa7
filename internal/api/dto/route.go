package dto

type SearchRequest struct {
	From       string `json:"from"`
	To         string `json:"to"`
	Date       string `json:"date"`
	Preference string `json:"preference"`
}

type SegmentResponse struct {
	From            string  `json:"from"`
	To              string  `json:"to"`
	Mode            string  `json:"mode"`
	DistanceKm      float64 `json:"distance_km"`
	DurationMinutes int     `json:"duration_minutes"`
	Cost            int     `json:"cost"`
	Comfort         float64 `json:"comfort"`
	DepartureTime   string  `json:"departure_time"`
	ArrivalTime     string  `json:"arrival_time"`
}

type RouteResponse struct {
	ID                   string            `json:"id"`
	From                 string            `json:"from"`
	To                   string            `json:"to"`
	DateLabel            string            `json:"date_label"`
	Segments             []SegmentResponse `json:"segments"`
	TotalCost            int               `json:"total_cost"`
	TotalDurationMinutes int               `json:"total_duration_minutes"`
	Transfers            int               `json:"transfers"`
	Comfort              float64           `json:"comfort"`
	PrimaryMode          string            `json:"primary_mode"`
	Score                int               `json:"score"`
	Rank                 int               `json:"rank"`
	PreferenceMatchLabel string            `json:"preference_match_label,omitempty"`
}

type SearchResponse struct {
	Routes []RouteResponse `json:"routes"`
}
