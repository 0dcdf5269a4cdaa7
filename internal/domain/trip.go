package domain

import "time"

// Represents a booked trip saved after the traveler confirms a route.
// A Trip is a snapshot of the chosen route's display fields, not a
// reference into engine output: routes are recomputed fresh on every
// search, so the booking keeps its own copy of the totals.
type Trip struct {
	BookingID            string
	RouteID              string
	FromCity             string
	DestinationLabel     string
	DateLabel            string
	Chain                string
	TotalCost            int
	TotalDurationMinutes int
	Preference           Preference
	CreatedAt            time.Time
}
