package geom

import (
	"fmt"
	"math/rand"
)

// defaultSeed is used when no WithSeed/WithRand option is supplied, so that
// RandomCities is reproducible by default.
const defaultSeed int64 = 1

// Option customizes RandomCities.
type Option func(*config)

type config struct {
	rng *rand.Rand
}

// WithSeed draws coordinates from a fresh source seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand draws coordinates from r. Panics on nil: a missing source is a
// programming error, not an input error.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("geom: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// RandomCities returns n cities drawn uniformly from [0,1)².
// The same seed always yields the same instance.
//
// Complexity: O(n).
func RandomCities(n int, opts ...Option) ([]City, error) {
	if n < 1 {
		return nil, fmt.Errorf("random instance of %d cities: %w", n, ErrTooFewCities)
	}
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	cities := make([]City, n)
	for i := range cities {
		cities[i] = City{X: cfg.rng.Float64(), Y: cfg.rng.Float64()}
	}

	return cities, nil
}
