package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	"routecraft-service/internal/api/dto"
	"routecraft-service/internal/domain"
	"routecraft-service/internal/ports"
)

// TripHandler exposes the booking step: saving, listing, and removing
// trips the traveler booked from engine output.
type TripHandler struct {
	Repo ports.TripRepository
}

func (h *TripHandler) List(w http.ResponseWriter, r *http.Request) {
	trips, err := h.Repo.ListTrips(r.Context())
	if err != nil {
		log.Printf("list trips failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListTripsResponse{Trips: make([]dto.TripResponse, 0, len(trips))}
	for _, t := range trips {
		res.Trips = append(res.Trips, toTripResponse(t))
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *TripHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.TripRequest

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

	if strings.TrimSpace(req.RouteID) == "" {
		writeError(w, r, http.StatusBadRequest, "route_id is required")
		return
	}
	if strings.TrimSpace(req.FromCity) == "" || strings.TrimSpace(req.DestinationLabel) == "" {
		writeError(w, r, http.StatusBadRequest, "from_city and destination_label are required")
		return
	}
	if req.TotalCost < 0 || req.TotalDurationMinutes < 0 {
		writeError(w, r, http.StatusBadRequest, "totals must be non-negative")
		return
	}

	now := time.Now().UTC()
	trip := &domain.Trip{
		BookingID:            newBookingID(req.RouteID, now),
		RouteID:              req.RouteID,
		FromCity:             req.FromCity,
		DestinationLabel:     req.DestinationLabel,
		DateLabel:            req.DateLabel,
		Chain:                req.Chain,
		TotalCost:            req.TotalCost,
		TotalDurationMinutes: req.TotalDurationMinutes,
		Preference:           domain.ParsePreference(req.Preference),
		CreatedAt:            now,
	}

	if err := h.Repo.SaveTrip(r.Context(), trip); err != nil {
		log.Printf("save trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusCreated, toTripResponse(trip))
}

func (h *TripHandler) Delete(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["id"]

	if err := h.Repo.DeleteTrip(r.Context(), bookingID); err != nil {
		if errors.Is(err, ports.ErrTripNotFound) {
			writeError(w, r, http.StatusNotFound, "trip not found")
			return
		}
		log.Printf("delete trip failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// newBookingID derives an "RC" + 6 digit booking reference from the
// route id and booking time.
func newBookingID(routeID string, at time.Time) string {
	h := fnv.New32a()
	h.Write([]byte(routeID))
	h.Write([]byte(at.Format(time.RFC3339Nano)))
	return fmt.Sprintf("RC%06d", h.Sum32()%1000000)
}

func toTripResponse(t *domain.Trip) dto.TripResponse {
	return dto.TripResponse{
		BookingID:            t.BookingID,
		RouteID:              t.RouteID,
		FromCity:             t.FromCity,
		DestinationLabel:     t.DestinationLabel,
		DateLabel:            t.DateLabel,
		Chain:                t.Chain,
		TotalCost:            t.TotalCost,
		TotalDurationMinutes: t.TotalDurationMinutes,
		Preference:           string(t.Preference),
		CreatedAt:            t.CreatedAt,
	}
}
