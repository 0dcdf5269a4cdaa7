package domain

// Preference is the traveler's optimization objective for route ranking.
type Preference string

const (
	PreferenceLowBudget Preference = "low_budget"
	PreferenceFast      Preference = "fast"
	PreferenceLuxury    Preference = "luxury"
)

// Relative importance of cost, time, and comfort when scoring a route.
// The three weights sum to 1.0 for every preference.
type Weights struct {
	Cost    float64
	Time    float64
	Comfort float64
}

// ParsePreference maps a raw preference string to a Preference.
// "budget" is accepted as an alias for low_budget; anything unrecognized
// clamps to low_budget rather than failing.
func ParsePreference(s string) Preference {
	switch s {
	case "low_budget", "budget":
		return PreferenceLowBudget
	case "fast":
		return PreferenceFast
	case "luxury":
		return PreferenceLuxury
	default:
		return PreferenceLowBudget
	}
}

// Weights returns the scoring weight triple for the preference.
// Unknown preferences behave as low_budget.
func (p Preference) Weights() Weights {
	switch p {
	case PreferenceFast:
		return Weights{Cost: 0.2, Time: 0.6, Comfort: 0.2}
	case PreferenceLuxury:
		return Weights{Cost: 0.15, Time: 0.25, Comfort: 0.6}
	default:
		return Weights{Cost: 0.6, Time: 0.25, Comfort: 0.15}
	}
}
