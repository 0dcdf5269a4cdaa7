package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"routecraft-service/internal/api/dto"
	"routecraft-service/internal/domain"
	"routecraft-service/internal/services"
)

type RouteHandler struct {
	Engine *services.Engine
}

// Search runs one route search and returns the ranked candidates.
// Degenerate inputs (missing or identical endpoints) are not an error:
// the engine contract returns an empty list, and so does this endpoint.
func (h *RouteHandler) Search(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
			return
		}
		date = parsed
	}

	preference := domain.ParsePreference(req.Preference)
	routes := h.Engine.SearchRoutes(req.From, req.To, date, preference)

	res := dto.SearchResponse{Routes: make([]dto.RouteResponse, 0, len(routes))}
	for _, route := range routes {
		res.Routes = append(res.Routes, toRouteResponse(route))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func toRouteResponse(route domain.Route) dto.RouteResponse {
	segments := make([]dto.SegmentResponse, 0, len(route.Segments))
	for _, s := range route.Segments {
		segments = append(segments, dto.SegmentResponse{
			From:            s.From,
			To:              s.To,
			Mode:            string(s.Mode),
			DistanceKm:      s.DistanceKm,
			DurationMinutes: s.DurationMinutes,
			Cost:            s.Cost,
			Comfort:         s.Comfort,
			DepartureTime:   s.DepartureTime,
			ArrivalTime:     s.ArrivalTime,
		})
	}

	return dto.RouteResponse{
		ID:                   route.ID,
		From:                 route.From,
		To:                   route.To,
		DateLabel:            route.DateLabel,
		Segments:             segments,
		TotalCost:            route.TotalCost,
		TotalDurationMinutes: route.TotalDurationMinutes,
		Transfers:            route.Transfers,
		Comfort:              route.Comfort,
		PrimaryMode:          string(route.PrimaryMode),
		Score:                route.Score,
		Rank:                 route.Rank,
		PreferenceMatchLabel: route.PreferenceMatchLabel,
	}
}
