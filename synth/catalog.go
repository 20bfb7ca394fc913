// Package synth: the static carrier and visitor-profile catalogue.
//
// The numbers are the model: preference rows sum to 1, profile weights
// sum to 1, and boost pairs encode which carriers a visitor type tends
// to compare in the same session.

package synth

// Tier classifies a carrier's market segment.
type Tier string

// Carrier market segments.
const (
	TierPremium Tier = "premium"
	TierBudget  Tier = "budget"
)

// Region classifies a carrier's home market.
type Region string

// Carrier home markets.
const (
	RegionUK     Region = "UK"
	RegionEurope Region = "Europe"
)

// Carrier describes one airline in the synthetic market.
type Carrier struct {
	Name   string
	Tier   Tier
	Region Region
}

// Profile describes one visitor behaviour type.
//
// Preferences maps carrier name to first-choice probability (rows sum
// to 1). MeanVisits is the Poisson mean for how many distinct carriers a
// visitor of this type compares. Boosts multiplies the preference of the
// second carrier of a pair once the first has been visited (and vice
// versa), producing the co-occurrence structure CA is meant to recover.
type Profile struct {
	Name        string
	Weight      float64
	Preferences map[string]float64
	MeanVisits  float64
	Boosts      map[[2]string]float64
}

// carriers is the fixed carrier catalogue, in canonical row order.
var carriers = []Carrier{
	{Name: "British_Airways", Tier: TierPremium, Region: RegionUK},
	{Name: "Virgin_Atlantic", Tier: TierPremium, Region: RegionUK},
	{Name: "Lufthansa", Tier: TierPremium, Region: RegionEurope},
	{Name: "Air_France", Tier: TierPremium, Region: RegionEurope},
	{Name: "Ryanair", Tier: TierBudget, Region: RegionEurope},
}

// profiles is the fixed visitor-profile catalogue, in draw order.
var profiles = []Profile{
	{
		Name:   "business_uk",
		Weight: 0.22,
		Preferences: map[string]float64{
			"British_Airways": 0.55,
			"Virgin_Atlantic": 0.35,
			"Lufthansa":       0.08,
			"Air_France":      0.02,
			"Ryanair":         0.00,
		},
		MeanVisits: 2.2,
		Boosts: map[[2]string]float64{
			{"British_Airways", "Virgin_Atlantic"}: 5.0,
		},
	},
	{
		Name:   "business_european",
		Weight: 0.18,
		Preferences: map[string]float64{
			"Lufthansa":       0.50,
			"Air_France":      0.40,
			"British_Airways": 0.08,
			"Virgin_Atlantic": 0.02,
			"Ryanair":         0.00,
		},
		MeanVisits: 2.1,
		Boosts: map[[2]string]float64{
			{"Lufthansa", "Air_France"}: 5.0,
		},
	},
	{
		Name:   "leisure_premium",
		Weight: 0.25,
		Preferences: map[string]float64{
			"British_Airways": 0.30,
			"Virgin_Atlantic": 0.30,
			"Lufthansa":       0.25,
			"Air_France":      0.15,
			"Ryanair":         0.00,
		},
		MeanVisits: 2.8,
		Boosts: map[[2]string]float64{
			{"British_Airways", "Virgin_Atlantic"}: 3.5,
			{"Lufthansa", "Air_France"}:            3.0,
		},
	},
	{
		Name:   "budget_conscious",
		Weight: 0.25,
		Preferences: map[string]float64{
			"Ryanair":         0.75,
			"British_Airways": 0.08,
			"Lufthansa":       0.07,
			"Air_France":      0.06,
			"Virgin_Atlantic": 0.04,
		},
		MeanVisits: 1.8,
		Boosts: map[[2]string]float64{
			{"Ryanair", "British_Airways"}: 2.0,
		},
	},
	{
		Name:   "price_shopper",
		Weight: 0.10,
		Preferences: map[string]float64{
			"Ryanair":         0.40,
			"British_Airways": 0.20,
			"Lufthansa":       0.18,
			"Air_France":      0.12,
			"Virgin_Atlantic": 0.10,
		},
		MeanVisits: 3.5,
		Boosts: map[[2]string]float64{
			{"Ryanair", "British_Airways"}:   4.0,
			{"Ryanair", "Lufthansa"}:         3.5,
			{"British_Airways", "Lufthansa"}: 2.5,
		},
	},
}

// Carriers returns the carrier catalogue in canonical row order.
// The slice is a copy; mutating it does not affect the generator.
func Carriers() []Carrier {
	return append([]Carrier(nil), carriers...)
}

// Profiles returns the visitor-profile catalogue. Shallow copies: the
// preference and boost maps are shared and must be treated as read-only.
func Profiles() []Profile {
	return append([]Profile(nil), profiles...)
}

// CarrierNames returns the carrier names in canonical row order.
func CarrierNames() []string {
	names := make([]string, len(carriers))
	for i, c := range carriers {
		names[i] = c.Name
	}

	return names
}
