// Package synth: cross-tabulation of generated sessions into validated
// contingency tables.
//
// All builders put carriers on the rows (canonical catalogue order) and a
// derived categorical axis on the columns, sorted alphabetically over the
// categories actually present. Tables are validated on construction, so
// a pathological draw (e.g. a carrier nobody visited in a tiny sample)
// surfaces as the core's sentinel instead of a later numeric failure.

package synth

import (
	"errors"
	"sort"

	"corresp/ca"
)

// ErrNoSessions indicates an empty session slice.
var ErrNoSessions = errors.New("synth: no sessions to tabulate")

// Visit-pattern bands: how many distinct carriers one session compared.
const (
	patternSingle = "single_airline"
	patternTwo    = "two_airlines"
	patternThree  = "three_airlines"
	patternMulti  = "multi_airline"
)

// Geographic-preference classes derived from the visited set.
const (
	geoUK      = "UK_focused"
	geoEU      = "EU_focused"
	geoBudget  = "Budget_focused"
	geoPan     = "Pan_European"
	geoMixed   = "Mixed_Premium_Budget"
	geoUnclear = "No_clear_preference"
)

// CrossTabProfiles tabulates carriers × visitor profiles — the canonical
// correspondence-analysis input for this dataset.
func CrossTabProfiles(sessions []Session) (*ca.Table, error) {
	return crossTab(sessions, func(s Session) string { return s.Profile })
}

// CrossTabVisitPatterns tabulates carriers × visit-count bands.
func CrossTabVisitPatterns(sessions []Session) (*ca.Table, error) {
	return crossTab(sessions, func(s Session) string {
		switch len(s.Visited) {
		case 1:
			return patternSingle
		case 2:
			return patternTwo
		case 3:
			return patternThree
		default:
			return patternMulti
		}
	})
}

// CrossTabRegions tabulates carriers × geographic shopping preference.
// The class is derived from which market segments a session touched:
// exclusively UK-premium, EU-premium or budget carriers give the focused
// classes; premium across both regions is pan-European whether or not a
// budget carrier was also visited; budget plus premium in a single
// region is mixed.
func CrossTabRegions(sessions []Session) (*ca.Table, error) {
	return crossTab(sessions, classifyRegion)
}

// classifyRegion maps one session's visited set to its geographic class.
func classifyRegion(s Session) string {
	var ukPremium, euPremium, budget int
	for _, name := range s.Visited {
		c := carriers[carrierIndex(name)]
		switch {
		case c.Tier == TierBudget:
			budget++
		case c.Region == RegionUK:
			ukPremium++
		default:
			euPremium++
		}
	}

	switch {
	case ukPremium > 0 && euPremium == 0 && budget == 0:
		return geoUK
	case euPremium > 0 && ukPremium == 0 && budget == 0:
		return geoEU
	case budget > 0 && ukPremium == 0 && euPremium == 0:
		return geoBudget
	case ukPremium > 0 && euPremium > 0:
		return geoPan
	case budget > 0:
		return geoMixed
	default:
		return geoUnclear
	}
}

// crossTab counts, for every (carrier, class) pair, the sessions of that
// class that visited the carrier. Columns are the classes present in the
// input, sorted alphabetically for reproducible output.
func crossTab(sessions []Session, classify func(Session) string) (*ca.Table, error) {
	if len(sessions) == 0 {
		return nil, ErrNoSessions
	}

	counts := make(map[string][]float64) // class → per-carrier visit counts
	for _, s := range sessions {
		class := classify(s)
		col, ok := counts[class]
		if !ok {
			col = make([]float64, len(carriers))
			counts[class] = col
		}
		for _, name := range s.Visited {
			col[carrierIndex(name)]++
		}
	}

	classes := make([]string, 0, len(counts))
	for class := range counts {
		classes = append(classes, class)
	}
	sort.Strings(classes)

	data := make([][]float64, len(carriers))
	for i := range carriers {
		data[i] = make([]float64, len(classes))
		for j, class := range classes {
			data[i][j] = counts[class][i]
		}
	}

	return ca.NewTable(CarrierNames(), classes, data)
}
