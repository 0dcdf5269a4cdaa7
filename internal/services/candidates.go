package services

import (
	"routecraft-service/internal/domain"
)

// candidateTemplates enumerates the route shapes to evaluate for one
// search: every direct single-leg mode, plus two-leg combinations that
// pair a long-haul mode with a connector through each hub city.
//
// Generation is purely combinatorial over static configuration; it does
// not consult timetables or real connectivity, so geographically odd
// combinations are possible and accepted. For a fixed origin and
// destination the output is identical on every call, in hub-list order.
func (e *Engine) candidateTemplates(from, to string) []domain.RouteTemplate {
	// Metro is excluded from direct intercity legs: it only makes sense
	// as a connector inside a hub.
	templates := []domain.RouteTemplate{
		{{Mode: domain.ModeBus}},
		{{Mode: domain.ModeTrain}},
		{{Mode: domain.ModeFlight}},
		{{Mode: domain.ModeCab}},
	}

	for _, hub := range e.hubs {
		if hub == from || hub == to {
			continue
		}

		templates = append(templates,
			domain.RouteTemplate{
				{Mode: domain.ModeBus, Via: hub},
				{Mode: domain.ModeTrain, Via: hub},
			},
			domain.RouteTemplate{
				{Mode: domain.ModeTrain, Via: hub},
				{Mode: domain.ModeMetro, Via: hub},
			},
			domain.RouteTemplate{
				{Mode: domain.ModeFlight, Via: hub},
				{Mode: domain.ModeCab, Via: hub},
			},
		)
	}

	return templates
}
