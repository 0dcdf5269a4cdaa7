package services

import (
	"strings"
	"time"

	"routecraft-service/internal/domain"
	"routecraft-service/internal/ports"
)

// Engine synthesizes and ranks multi-modal route candidates between two
// named locations.
//
// All configuration (mode profiles, hub list, distance resolver) is
// fixed at construction and never mutated, so a single Engine is safe
// for concurrent searches. Every search allocates fresh output; nothing
// is cached between calls.
type Engine struct {
	profiles map[domain.TransportMode]domain.ModeProfile
	hubs     []string
	resolver ports.DistanceResolver
}

// Static travel profiles for the supported transport modes.
// Modes absent here (e.g. carpool) fall through the unknown-mode
// fallbacks in the segment builder.
func DefaultProfiles() map[domain.TransportMode]domain.ModeProfile {
	return map[domain.TransportMode]domain.ModeProfile{
		domain.ModeBus:    {SpeedKmh: 55, CostPerKm: 3, Comfort: 0.6},
		domain.ModeTrain:  {SpeedKmh: 70, CostPerKm: 2.5, Comfort: 0.7},
		domain.ModeMetro:  {SpeedKmh: 40, CostPerKm: 2, Comfort: 0.75},
		domain.ModeCab:    {SpeedKmh: 35, CostPerKm: 10, Comfort: 0.85},
		domain.ModeFlight: {SpeedKmh: 650, CostPerKm: 8, Comfort: 0.9},
	}
}

// Major cities eligible as intermediate transfer points. Iteration
// order is fixed so candidate generation is deterministic.
func DefaultHubs() []string {
	return []string{"Hyderabad", "Bangalore", "Chennai", "Mumbai", "Delhi"}
}

func NewEngine(resolver ports.DistanceResolver) *Engine {
	return NewEngineWithConfig(resolver, DefaultProfiles(), DefaultHubs())
}

func NewEngineWithConfig(
	resolver ports.DistanceResolver,
	profiles map[domain.TransportMode]domain.ModeProfile,
	hubs []string,
) *Engine {
	return &Engine{
		profiles: profiles,
		hubs:     hubs,
		resolver: resolver,
	}
}

// SearchRoutes computes the ranked route candidates for one search.
//
// Missing or identical endpoints return an empty slice, never an error:
// degenerate input is the engine's only failure mode. The zero date
// yields an empty date label.
func (e *Engine) SearchRoutes(from, to string, date time.Time, preference domain.Preference) []domain.Route {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)
	if from == "" || to == "" || from == to {
		return []domain.Route{}
	}

	dateLabel := ""
	if !date.IsZero() {
		dateLabel = date.Format("02 Jan 2006")
	}

	templates := e.candidateTemplates(from, to)

	routes := make([]domain.Route, 0, len(templates))
	for _, tpl := range templates {
		routes = append(routes, e.assembleRoute(from, to, tpl, dateLabel))
	}

	return rankRoutes(routes, preference)
}
