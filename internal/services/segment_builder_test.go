package services

import (
	"testing"

	"routecraft-service/internal/adapters/distance"
	"routecraft-service/internal/domain"
)

func newTestEngine() *Engine {
	return NewEngine(distance.NewStaticResolver())
}

func TestBuildSegmentBusLeg(t *testing.T) {
	e := newTestEngine()

	seg := e.buildSegment("Hyderabad", "Bangalore", domain.ModeBus, "08:00")

	if seg.DistanceKm != 570 {
		t.Fatalf("DistanceKm = %v, want 570", seg.DistanceKm)
	}
	// round(570/55*60) and round(570*3*1.08)
	if seg.DurationMinutes != 622 {
		t.Errorf("DurationMinutes = %d, want 622", seg.DurationMinutes)
	}
	if seg.Cost != 1847 {
		t.Errorf("Cost = %d, want 1847", seg.Cost)
	}
	if seg.Comfort != 0.6 {
		t.Errorf("Comfort = %v, want 0.6", seg.Comfort)
	}
	if seg.DepartureTime != "08:00" {
		t.Errorf("DepartureTime = %q, want 08:00", seg.DepartureTime)
	}
	if seg.ArrivalTime != "18:22" {
		t.Errorf("ArrivalTime = %q, want 18:22", seg.ArrivalTime)
	}
}

func TestBuildSegmentMidnightWrap(t *testing.T) {
	e := newTestEngine()

	// Cab over 1550 km takes 2657 minutes; a 20:00 departure wraps past
	// midnight with no next-day tracking.
	seg := e.buildSegment("Hyderabad", "Delhi", domain.ModeCab, "20:00")

	if seg.DurationMinutes != 2657 {
		t.Fatalf("DurationMinutes = %d, want 2657", seg.DurationMinutes)
	}
	if seg.ArrivalTime != "16:17" {
		t.Fatalf("ArrivalTime = %q, want 16:17", seg.ArrivalTime)
	}
}

func TestBuildSegmentUnknownMode(t *testing.T) {
	e := newTestEngine()

	seg := e.buildSegment("Hyderabad", "Bangalore", domain.ModeCarpool, "09:30")

	if seg.DurationMinutes != 0 {
		t.Errorf("DurationMinutes = %d, want 0", seg.DurationMinutes)
	}
	if seg.Cost != 0 {
		t.Errorf("Cost = %d, want 0", seg.Cost)
	}
	if seg.Comfort != baselineComfort {
		t.Errorf("Comfort = %v, want %v", seg.Comfort, baselineComfort)
	}
	if seg.ArrivalTime != "09:30" {
		t.Errorf("ArrivalTime = %q, want 09:30", seg.ArrivalTime)
	}
}

func TestBuildSegmentDeterminism(t *testing.T) {
	e := newTestEngine()

	a := e.buildSegment("Mumbai", "Delhi", domain.ModeFlight, "08:00")
	b := e.buildSegment("Mumbai", "Delhi", domain.ModeFlight, "08:00")

	if a != b {
		t.Fatalf("identical inputs produced different segments:\n%+v\n%+v", a, b)
	}
}

func TestClockRoundTrip(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{480, "08:00"},
		{1102, "18:22"},
		{1439, "23:59"},
		{1440, "00:00"},
		{1497, "00:57"},
	}

	for _, c := range cases {
		if got := formatClock(c.minutes); got != c.want {
			t.Errorf("formatClock(%d) = %q, want %q", c.minutes, got, c.want)
		}
	}

	if got := parseClock("18:22"); got != 1102 {
		t.Errorf("parseClock(18:22) = %d, want 1102", got)
	}
	if got := parseClock("garbage"); got != 0 {
		t.Errorf("parseClock(garbage) = %d, want 0", got)
	}
}
