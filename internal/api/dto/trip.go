package dto

import "time"

type TripRequest struct {
	RouteID              string `json:"route_id"`
	FromCity             string `json:"from_city"`
	DestinationLabel     string `json:"destination_label"`
	DateLabel            string `json:"date_label"`
	Chain                string `json:"chain"`
	TotalCost            int    `json:"total_cost"`
	TotalDurationMinutes int    `json:"total_duration_minutes"`
	Preference           string `json:"preference"`
}

type TripResponse struct {
	BookingID            string    `json:"booking_id"`
	RouteID              string    `json:"route_id"`
	FromCity             string    `json:"from_city"`
	DestinationLabel     string    `json:"destination_label"`
	DateLabel            string    `json:"date_label"`
	Chain                string    `json:"chain"`
	TotalCost            int       `json:"total_cost"`
	TotalDurationMinutes int       `json:"total_duration_minutes"`
	Preference           string    `json:"preference"`
	CreatedAt            time.Time `json:"created_at"`
}

type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}
