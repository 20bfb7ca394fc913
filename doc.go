// Package corresp maps categorical association: it turns a contingency
// table of co-occurrence counts into a low-dimensional chi-square map
// via Correspondence Analysis (CA).
//
// 🚀 What is corresp?
//
//	A small, focused statistics library plus a companion CLI:
//		• Core decomposition: masses, standardized residuals, generalized SVD
//		• Principal coordinates: chi-square distance preserving row/column maps
//		• Inertia accounting: eigenvalues, variance-explained, contributions
//		• CSV convenience: contingency tables in and out, optional size weights
//		• Synthetic data: a deterministic airline cross-visitation generator
//
// ✨ Why choose corresp?
//
//   - Transparent numerics – the whole CA normalization is explicit, not
//     hidden behind a statistics framework
//   - Fail-fast validation – every malformed table is rejected with a typed
//     sentinel before any floating-point work begins
//   - Pure functions – one table in, one immutable result out, no state
//
// Everything is organized in small per-concern packages:
//
//	ca/          — the numerical core: validate, transform, decompose, project
//	table/       — CSV parsing/serialization of contingency tables
//	synth/       — seeded synthetic session data + cross-tabulation
//	cmd/corresp/ — the command-line front end (analyze, generate, crosstab)
//
// Quick example:
//
//	t, err := ca.NewTable(
//	    []string{"Espresso", "Filter"},
//	    []string{"Morning", "Afternoon"},
//	    [][]float64{{30, 10}, {5, 25}},
//	)
//	if err != nil { ... }
//	res, err := ca.Analyze(t)
//	fmt.Println(res.VarianceRatios) // share of inertia per dimension
//
// See each package's doc.go for contracts, error sentinels and complexity.
package corresp
