package domain

// TransportMode identifies the vehicle type of a single journey leg.
type TransportMode string

const (
	ModeBus     TransportMode = "bus"
	ModeTrain   TransportMode = "train"
	ModeMetro   TransportMode = "metro"
	ModeCab     TransportMode = "cab"
	ModeFlight  TransportMode = "flight"
	ModeCarpool TransportMode = "carpool"
)

// ModeProfile holds the static travel characteristics of a transport mode.
// Profiles are read-only configuration shared across concurrent searches.
type ModeProfile struct {
	SpeedKmh  float64
	CostPerKm float64
	Comfort   float64
}
