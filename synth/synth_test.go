package synth_test

import (
	"testing"

	"corresp/ca"
	"corresp/synth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerate_Deterministic: identical (count, seed) pairs reproduce
// identical sessions; a different seed diverges.
func TestGenerate_Deterministic(t *testing.T) {
	first, err := synth.Generate(500)
	require.NoError(t, err)
	second, err := synth.Generate(500)
	require.NoError(t, err)
	assert.Equal(t, first, second, "default seed must reproduce the same sessions")

	other, err := synth.Generate(500, synth.WithSeed(7))
	require.NoError(t, err)
	assert.NotEqual(t, first, other, "another seed must produce different sessions")
}

// TestGenerate_BadCount rejects non-positive session counts.
func TestGenerate_BadCount(t *testing.T) {
	_, err := synth.Generate(0)
	assert.ErrorIs(t, err, synth.ErrBadCount)
}

// TestGenerate_SessionInvariants: every session visits between 1 and 5
// distinct carriers from the catalogue, under a valid profile, and a
// profile never visits a carrier it assigns zero preference and no boost.
func TestGenerate_SessionInvariants(t *testing.T) {
	sessions, err := synth.Generate(2000)
	require.NoError(t, err)
	require.Len(t, sessions, 2000)

	names := map[string]bool{}
	for _, c := range synth.Carriers() {
		names[c.Name] = true
	}
	profileNames := map[string]bool{}
	for _, p := range synth.Profiles() {
		profileNames[p.Name] = true
	}

	for _, s := range sessions {
		assert.True(t, profileNames[s.Profile], "unknown profile %q", s.Profile)
		require.NotEmpty(t, s.Visited, "session %s must visit at least one carrier", s.ID)
		require.LessOrEqual(t, len(s.Visited), len(names))

		seen := map[string]bool{}
		for _, v := range s.Visited {
			assert.True(t, names[v], "unknown carrier %q", v)
			assert.False(t, seen[v], "session %s visits %q twice", s.ID, v)
			seen[v] = true
		}
	}
}

// TestGenerate_Progress: the callback fires at checkpoints and once at
// completion with done == total.
func TestGenerate_Progress(t *testing.T) {
	var calls int
	var lastDone, lastTotal int
	_, err := synth.Generate(100, synth.WithProgress(func(done, total int) {
		calls++
		lastDone, lastTotal = done, total
	}))
	require.NoError(t, err)

	assert.Greater(t, calls, 1, "progress must fire more than once")
	assert.Equal(t, 100, lastDone, "final report must be complete")
	assert.Equal(t, 100, lastTotal)
}

// TestCrossTabProfiles: carriers × profiles, counts preserved, ready for
// the core.
func TestCrossTabProfiles(t *testing.T) {
	sessions, err := synth.Generate(5000)
	require.NoError(t, err)

	tbl, err := synth.CrossTabProfiles(sessions)
	require.NoError(t, err)

	assert.Equal(t, synth.CarrierNames(), tbl.RowLabels, "rows must be the carrier catalogue")
	assert.Equal(t,
		[]string{"budget_conscious", "business_european", "business_uk", "leisure_premium", "price_shopper"},
		tbl.ColLabels, "columns must be the profiles, sorted")

	// Every visit lands in exactly one cell.
	var visits float64
	for _, s := range sessions {
		visits += float64(len(s.Visited))
	}
	assert.InDelta(t, visits, tbl.GrandTotal(), 0, "cell counts must preserve total visits")

	res, err := ca.Analyze(tbl)
	require.NoError(t, err)
	assert.Equal(t, 4, res.Dims())
}

// TestCrossTabVisitPatterns: column bands are drawn from the fixed set.
func TestCrossTabVisitPatterns(t *testing.T) {
	sessions, err := synth.Generate(5000)
	require.NoError(t, err)

	tbl, err := synth.CrossTabVisitPatterns(sessions)
	require.NoError(t, err)

	allowed := map[string]bool{
		"single_airline": true, "two_airlines": true,
		"three_airlines": true, "multi_airline": true,
	}
	for _, c := range tbl.ColLabels {
		assert.True(t, allowed[c], "unexpected visit-pattern band %q", c)
	}
	assert.NoError(t, ca.Validate(tbl))
}

// TestCrossTabRegions: geographic classes are drawn from the fixed set
// and exclusive premium shoppers never count as mixed.
func TestCrossTabRegions(t *testing.T) {
	sessions, err := synth.Generate(5000)
	require.NoError(t, err)

	tbl, err := synth.CrossTabRegions(sessions)
	require.NoError(t, err)

	allowed := map[string]bool{
		"UK_focused": true, "EU_focused": true, "Budget_focused": true,
		"Pan_European": true, "Mixed_Premium_Budget": true, "No_clear_preference": true,
	}
	for _, c := range tbl.ColLabels {
		assert.True(t, allowed[c], "unexpected geographic class %q", c)
	}
	assert.NoError(t, ca.Validate(tbl))
}

// TestCrossTabRegions_Classification pins each geographic class to a
// hand-built visited set. In particular, premium carriers from both
// regions make a session pan-European even when a budget carrier is in
// the set; mixed is reserved for budget plus a single premium region.
func TestCrossTabRegions_Classification(t *testing.T) {
	sessions := []synth.Session{
		{ID: "uk", Profile: "business_uk", Visited: []string{"British_Airways"}},
		{ID: "eu", Profile: "business_european", Visited: []string{"Lufthansa"}},
		{ID: "budget", Profile: "budget_conscious", Visited: []string{"Ryanair"}},
		{ID: "pan", Profile: "leisure_premium", Visited: []string{"British_Airways", "Air_France"}},
		{ID: "pan_budget", Profile: "price_shopper", Visited: []string{"British_Airways", "Lufthansa", "Ryanair"}},
		{ID: "mixed", Profile: "price_shopper", Visited: []string{"Virgin_Atlantic", "Ryanair"}},
	}

	tbl, err := synth.CrossTabRegions(sessions)
	require.NoError(t, err)

	require.Equal(t,
		[]string{"Budget_focused", "EU_focused", "Mixed_Premium_Budget", "Pan_European", "UK_focused"},
		tbl.ColLabels)
	require.Equal(t, synth.CarrierNames(), tbl.RowLabels)

	assert.Equal(t, [][]float64{
		{0, 0, 0, 2, 1}, // British_Airways
		{0, 0, 1, 0, 0}, // Virgin_Atlantic
		{0, 1, 0, 1, 0}, // Lufthansa
		{0, 0, 0, 1, 0}, // Air_France
		{1, 0, 1, 1, 0}, // Ryanair
	}, tbl.Data)
}

// TestCrossTab_NoSessions rejects empty input with the package sentinel.
func TestCrossTab_NoSessions(t *testing.T) {
	_, err := synth.CrossTabProfiles(nil)
	assert.ErrorIs(t, err, synth.ErrNoSessions)
}
