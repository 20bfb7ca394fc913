// Package synth: the session generator.
//
// Draw procedure per session (mirrors the co-occurrence model described
// in doc.go):
//  1. profile  – weighted draw over the profile catalogue
//  2. budget   – Poisson draw around the profile's mean visit count,
//     clamped to [1, number of carriers]
//  3. first    – weighted draw over the profile's base preferences
//  4. rest     – repeated draws over preferences re-weighted by the
//     boost pairs of already-visited carriers, visited carriers removed
//
// Every draw consumes the same deterministic stream, so a (seed, count)
// pair fully determines the output.

package synth

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrBadCount indicates that Generate was asked for fewer than one session.
var ErrBadCount = errors.New("synth: session count must be at least 1")

// Session is one visitor's comparison session: which carriers they
// visited, in visit order, and which behaviour profile generated them.
type Session struct {
	ID      string
	Profile string
	Visited []string
}

// Options configures Generate.
//
// Seed     – seed for the deterministic random stream (default 42).
// Progress – optional callback invoked at ~5% checkpoints and on
// completion with (generated, total); nil disables reporting. The
// generator itself never prints or logs.
type Options struct {
	Seed     int64
	Progress func(done, total int)
}

// Option is a functional option for configuring Generate.
type Option func(*Options)

// DefaultOptions returns the canonical generator configuration.
func DefaultOptions() Options {
	return Options{Seed: 42}
}

// WithSeed sets the random stream seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

// WithProgress installs a progress callback.
func WithProgress(fn func(done, total int)) Option {
	return func(o *Options) {
		o.Progress = fn
	}
}

// Generate produces n synthetic sessions. Deterministic in (n, seed).
//
// Complexity: O(n·carriers²) time, O(n) space.
func Generate(n int, opts ...Option) ([]Session, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCount, n)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	checkpoint := n / 20 // ~5% progress granularity
	if checkpoint == 0 {
		checkpoint = 1
	}

	sessions := make([]Session, 0, n)
	for i := 0; i < n; i++ {
		if cfg.Progress != nil && i%checkpoint == 0 {
			cfg.Progress(i, n)
		}
		p := drawProfile(rng)
		sessions = append(sessions, Session{
			ID:      fmt.Sprintf("user_%06d", i),
			Profile: p.Name,
			Visited: drawVisits(rng, p),
		})
	}
	if cfg.Progress != nil {
		cfg.Progress(n, n)
	}

	return sessions, nil
}

// drawProfile picks a visitor profile by catalogue weight.
func drawProfile(rng *rand.Rand) Profile {
	u := rng.Float64()
	var cum float64
	for _, p := range profiles {
		cum += p.Weight
		if u < cum {
			return p
		}
	}

	// Weight rounding can leave u just above the cumulative sum.
	return profiles[len(profiles)-1]
}

// drawVisits generates the visited-carrier sequence for one session.
func drawVisits(rng *rand.Rand, p Profile) []string {
	// Visit budget: Poisson around the profile mean, at least one visit,
	// never more carriers than exist.
	budget := poisson(rng, p.MeanVisits)
	if budget < 1 {
		budget = 1
	}
	if budget > len(carriers) {
		budget = len(carriers)
	}

	visited := make([]string, 0, budget)
	weights := make([]float64, len(carriers))

	// First visit: base preferences only.
	for i, c := range carriers {
		weights[i] = p.Preferences[c.Name]
	}
	first := drawCarrier(rng, weights)
	if first < 0 {
		return visited
	}
	visited = append(visited, carriers[first].Name)

	// Subsequent visits: boost carriers co-shopped with what was already
	// visited, remove the visited ones, renormalize implicitly in the draw.
	for len(visited) < budget {
		for i, c := range carriers {
			weights[i] = p.Preferences[c.Name]
		}
		for _, seen := range visited {
			for pair, boost := range p.Boosts {
				if pair[0] == seen && !contains(visited, pair[1]) {
					weights[carrierIndex(pair[1])] *= boost
				} else if pair[1] == seen && !contains(visited, pair[0]) {
					weights[carrierIndex(pair[0])] *= boost
				}
			}
		}
		for _, seen := range visited {
			weights[carrierIndex(seen)] = 0
		}

		next := drawCarrier(rng, weights)
		if next < 0 {
			break // every remaining carrier has zero preference
		}
		visited = append(visited, carriers[next].Name)
	}

	return visited
}

// drawCarrier picks an index proportional to weights, or -1 when all
// weights are zero. One uniform variate per call.
func drawCarrier(rng *rand.Rand, weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total == 0 {
		return -1
	}

	u := rng.Float64() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if u < cum {
			return i
		}
	}

	return len(weights) - 1
}

// poisson draws a Poisson variate with the given mean (Knuth's method;
// fine for the small means used here).
func poisson(rng *rand.Rand, mean float64) int {
	limit := math.Exp(-mean)
	k := 0
	p := 1.0
	for {
		p *= rng.Float64()
		if p <= limit {
			return k
		}
		k++
	}
}

// carrierIndex resolves a carrier name to its catalogue position.
// Names come from the catalogue itself, so a miss is a programmer error.
func carrierIndex(name string) int {
	for i, c := range carriers {
		if c.Name == name {
			return i
		}
	}
	panic("synth: unknown carrier " + name)
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}

	return false
}
