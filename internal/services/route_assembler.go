package services

import (
	"strings"

	"routecraft-service/internal/domain"
)

const (
	// First segment of every route departs at this clock anchor.
	firstDepartureMinutes = 8 * 60

	// Idle connection time inserted between chained segments.
	transferBufferMinutes = 30
)

// assembleRoute turns a template into a concrete route: it chains
// segments forward through the template's via stops, threads clock
// times, and accumulates totals.
//
// The transfer buffer shifts each following segment's departure clock
// but is NOT added to TotalDurationMinutes, which sums raw segment
// durations only. The total therefore undercounts wall-clock elapsed
// time by transferBufferMinutes per transfer. That asymmetry matches
// the original design and is pinned by tests; do not reconcile it here.
func (e *Engine) assembleRoute(from, to string, template domain.RouteTemplate, dateLabel string) domain.Route {
	segments := make([]domain.Segment, 0, len(template))
	modes := make([]string, 0, len(template))

	currentFrom := from
	totalCost := 0
	totalDuration := 0
	nextStart := firstDepartureMinutes

	for i, step := range template {
		stepTo := step.Via
		if i == len(template)-1 {
			stepTo = to
		}

		seg := e.buildSegment(currentFrom, stepTo, step.Mode, formatClock(nextStart))

		segments = append(segments, seg)
		modes = append(modes, string(seg.Mode))
		totalCost += seg.Cost
		totalDuration += seg.DurationMinutes
		nextStart += seg.DurationMinutes + transferBufferMinutes
		currentFrom = stepTo
	}

	comfortSum := 0.0
	for _, seg := range segments {
		comfortSum += seg.Comfort
	}

	return domain.Route{
		ID:                   from + "-" + to + "-" + strings.Join(modes, "+"),
		From:                 from,
		To:                   to,
		DateLabel:            dateLabel,
		Segments:             segments,
		TotalCost:            totalCost,
		TotalDurationMinutes: totalDuration,
		Transfers:            len(segments) - 1,
		Comfort:              comfortSum / float64(len(segments)),
		PrimaryMode:          segments[0].Mode,
	}
}
