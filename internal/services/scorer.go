package services

import (
	"math"
	"sort"

	"routecraft-service/internal/domain"
)

// Label thresholds on the preference's dominant normalized metric.
const (
	strongMatchThreshold = 0.8
	goodMatchThreshold   = 0.6
)

// rankRoutes normalizes cost, duration, and comfort across the candidate
// set, applies the preference's weights to produce a 0-100 score, assigns
// preference-match labels, and sorts by descending score with rank 1..N.
//
// The input order is the tie-breaker: the sort is stable, so candidates
// with equal scores keep their generation order. Empty in, empty out.
func rankRoutes(routes []domain.Route, preference domain.Preference) []domain.Route {
	if len(routes) == 0 {
		return routes
	}

	minCost, maxCost := math.MaxFloat64, -math.MaxFloat64
	minDur, maxDur := math.MaxFloat64, -math.MaxFloat64
	minComfort, maxComfort := math.MaxFloat64, -math.MaxFloat64

	for _, r := range routes {
		minCost = math.Min(minCost, float64(r.TotalCost))
		maxCost = math.Max(maxCost, float64(r.TotalCost))
		minDur = math.Min(minDur, float64(r.TotalDurationMinutes))
		maxDur = math.Max(maxDur, float64(r.TotalDurationMinutes))
		minComfort = math.Min(minComfort, r.Comfort)
		maxComfort = math.Max(maxComfort, r.Comfort)
	}

	weights := domain.ParsePreference(string(preference)).Weights()

	ranked := make([]domain.Route, len(routes))
	for i, r := range routes {
		costNorm := normalizeBetterLow(float64(r.TotalCost), minCost, maxCost)
		timeNorm := normalizeBetterLow(float64(r.TotalDurationMinutes), minDur, maxDur)
		comfortNorm := normalizeBetterHigh(r.Comfort, minComfort, maxComfort)

		weighted := costNorm*weights.Cost + timeNorm*weights.Time + comfortNorm*weights.Comfort

		ranked[i] = r
		ranked[i].Score = int(math.Round(weighted * 100))
		ranked[i].PreferenceMatchLabel = matchLabel(preference, costNorm, timeNorm, comfortNorm)
	}

	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].Score > ranked[b].Score
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	return ranked
}

// normalizeBetterLow maps a "lower is better" metric into [0,1].
// When all candidates tie the metric carries no signal, so every
// candidate counts as maximally good (also avoids dividing by zero).
func normalizeBetterLow(v, lo, hi float64) float64 {
	if hi == lo {
		return 1
	}
	return (hi - v) / (hi - lo)
}

// normalizeBetterHigh maps a "higher is better" metric into [0,1].
func normalizeBetterHigh(v, lo, hi float64) float64 {
	if hi == lo {
		return 1
	}
	return (v - lo) / (hi - lo)
}

// matchLabel picks the single preference-match badge for a route, or
// empty when the route is not a notable match. First rule wins.
func matchLabel(preference domain.Preference, costNorm, timeNorm, comfortNorm float64) string {
	switch domain.ParsePreference(string(preference)) {
	case domain.PreferenceFast:
		if timeNorm > strongMatchThreshold {
			return "Fastest choice"
		}
		if timeNorm > goodMatchThreshold {
			return "Time-efficient"
		}
	case domain.PreferenceLuxury:
		if comfortNorm > strongMatchThreshold {
			return "Most comfortable"
		}
		if comfortNorm > goodMatchThreshold {
			return "High comfort"
		}
	default:
		if costNorm > strongMatchThreshold {
			return "Cheapest choice"
		}
		if costNorm > goodMatchThreshold {
			return "Budget-friendly"
		}
	}
	return ""
}
