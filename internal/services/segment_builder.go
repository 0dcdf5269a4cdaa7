package services

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"routecraft-service/internal/domain"
)

const (
	// Comfort assigned to modes without a profile.
	baselineComfort = 0.6

	// Fixed cost markup applied to every leg. The original design meant
	// this to make prices look uneven; it is a constant so repeated
	// searches stay byte-identical.
	costVariation = 0.08

	minutesPerDay = 24 * 60
)

// buildSegment computes one concrete leg: distance, duration, cost,
// comfort, and clock times. It is total over any inputs: an unknown
// mode yields zero duration and cost with baseline comfort rather than
// an error.
func (e *Engine) buildSegment(from, to string, mode domain.TransportMode, departureTime string) domain.Segment {
	km := e.resolver.DistanceKm(from, to)

	var durationMinutes, cost int
	comfort := baselineComfort

	if profile, ok := e.profiles[mode]; ok {
		durationMinutes = int(math.Round(km / profile.SpeedKmh * 60))
		cost = int(math.Round(km * profile.CostPerKm * (1 + costVariation)))
		comfort = profile.Comfort
	}

	arrival := (parseClock(departureTime) + durationMinutes) % minutesPerDay

	return domain.Segment{
		From:            from,
		To:              to,
		Mode:            mode,
		DistanceKm:      km,
		DurationMinutes: durationMinutes,
		Cost:            cost,
		Comfort:         comfort,
		DepartureTime:   departureTime,
		ArrivalTime:     formatClock(arrival),
	}
}

// parseClock converts "HH:MM" to minutes since midnight.
// Malformed input parses as 00:00; the builder never fails on it.
func parseClock(s string) int {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

// formatClock converts minutes since midnight to zero-padded "HH:MM".
// Values past midnight wrap silently; no next-day date is tracked.
func formatClock(minutes int) string {
	minutes %= minutesPerDay
	if minutes < 0 {
		minutes += minutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
