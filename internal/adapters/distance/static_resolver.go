package distance

// StaticResolver resolves city-pair distances from a manually curated
// table. Lookups are symmetric: a pair stored as (from, to) also
// resolves as (to, from). Pairs absent from the table degrade to a
// fixed fallback distance so the engine never errors on an unknown city.
type StaticResolver struct {
	table      map[string]map[string]float64
	fallbackKm float64
}

// Approximate intercity distances in km between the major demo cities.
func DefaultCityDistances() map[string]map[string]float64 {
	return map[string]map[string]float64{
		"Hyderabad": {"Bangalore": 570, "Chennai": 630, "Mumbai": 710, "Delhi": 1550},
		"Bangalore": {"Hyderabad": 570, "Chennai": 350, "Mumbai": 980, "Delhi": 2150},
		"Chennai":   {"Hyderabad": 630, "Bangalore": 350, "Mumbai": 1330, "Delhi": 2200},
		"Mumbai":    {"Hyderabad": 710, "Bangalore": 980, "Chennai": 1330, "Delhi": 1400},
		"Delhi":     {"Hyderabad": 1550, "Bangalore": 2150, "Chennai": 2200, "Mumbai": 1400},
	}
}

// FallbackDistanceKm is used for city pairs missing from the table.
const FallbackDistanceKm = 500

func NewStaticResolver() *StaticResolver {
	return &StaticResolver{
		table:      DefaultCityDistances(),
		fallbackKm: FallbackDistanceKm,
	}
}

func NewStaticResolverWithTable(table map[string]map[string]float64, fallbackKm float64) *StaticResolver {
	return &StaticResolver{table: table, fallbackKm: fallbackKm}
}

func (r *StaticResolver) DistanceKm(from, to string) float64 {
	if from == to {
		return 0
	}
	if d, ok := r.table[from][to]; ok {
		return d
	}
	if d, ok := r.table[to][from]; ok {
		return d
	}
	return r.fallbackKm
}
