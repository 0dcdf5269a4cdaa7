package domain

// TemplateStep is one hop of a route template: a mode plus, for
// multi-leg templates, the hub city the hop connects through.
// The final step of a template always ends at the search destination,
// so its Via is ignored there.
type TemplateStep struct {
	Mode TransportMode
	Via  string
}

// RouteTemplate is the abstract shape of a candidate route (which modes,
// how many hops) before concrete cities, costs, and times are attached.
type RouteTemplate []TemplateStep
