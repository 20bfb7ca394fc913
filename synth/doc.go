// Package synth generates deterministic synthetic airline cross-visitation
// data and cross-tabulates it into contingency tables ready for the ca
// core.
//
// The generator models five carriers (premium UK, premium European, and a
// budget carrier) visited by five visitor profiles with strongly
// differentiated preferences, mean visit counts, and pairwise co-visit
// boosts. Each generated Session records which carriers one visitor
// compared. The resulting co-occurrence structure is deliberately strong
// so that a correspondence analysis of the cross-tabulations separates
// the premium-UK, premium-EU and budget clusters.
//
// Determinism: the generator is a pure function of its seed (default 42).
// The same seed and session count always reproduce the same sessions,
// which keeps downstream analyses and tests reproducible. Randomness
// never leaks into the ca core — it lives entirely in this package.
//
// Cross-tabulations (each returns a validated *ca.Table with carriers as
// rows):
//
//   - CrossTabProfiles      – carriers × visitor profiles. The canonical
//     CA input: profiles are an independent categorical axis.
//   - CrossTabVisitPatterns – carriers × how many carriers the visitor
//     compared (single/two/three/multi).
//   - CrossTabRegions       – carriers × geographic shopping preference
//     derived from the visited set (UK/EU/budget focused, pan-European,
//     mixed, unclear).
//
// Example usage:
//
//	sessions, err := synth.Generate(100000, synth.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tbl, err := synth.CrossTabProfiles(sessions)
//	res, err := ca.Analyze(tbl)
package synth
