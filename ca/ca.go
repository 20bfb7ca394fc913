// Package ca implements Correspondence Analysis of contingency tables.
//
// Pipeline (fail-fast, pure, allocation-per-call):
//
//  1. Validate     – structural preconditions, typed sentinels.
//  2. Residuals    – masses, expected frequencies, standardized residuals.
//  3. Decompose    – ordinary SVD of the residual matrix, trivial
//     dimension dropped, min(rows,cols)−1 dimensions retained.
//  4. project      – principal coordinates, eigenvalues, variance ratios,
//     optional contributions.
package ca

// Analyze runs the full Correspondence Analysis pipeline on t and
// returns a freshly allocated, immutable Result.
//
// The call is a deterministic pure function of t: no internal state, no
// randomness, no I/O. Calling it twice on the same table yields identical
// output (per-dimension global sign included, since the backend is
// deterministic too — though only sign-invariant properties are
// contractual, see the package doc).
//
// Errors:
//   - Any Validate sentinel for malformed input, before numerical work.
//   - ErrDecomposition if the SVD does not converge.
//
// Complexity: O(r·c·min(r,c)) time, dominated by the SVD.
func Analyze(t *Table, opts ...Option) (*Result, error) {
	// 1) Resolve configuration.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate every precondition before touching floating point.
	if err := Validate(t); err != nil {
		return nil, err
	}

	// 3) Residual transform on the now-trusted table, rescaled into
	//    inertia units so that eigenvalues sum to chi²/N and principal
	//    coordinates reproduce chi-square distances exactly.
	m := masses(t)
	resid := residuals(t, m)
	inertiaScale(resid, t.GrandTotal())

	// 4) Spectral decomposition.
	sp, err := Decompose(resid)
	if err != nil {
		return nil, err
	}

	// 5) Project back into category space.
	return project(t, m, sp, cfg.Dimensions, cfg.Contributions), nil
}
