package simcast

import "math/rand/v2"

// Noise perturbs the hourly external demand. Factor returns a multiplier
// centered on 1.0. Injected so runs can be pinned for reproducibility.
type Noise interface {
	Factor() float64
}

// GaussianNoise draws multipliers from N(1.0, sigma).
type GaussianNoise struct {
	rng   *rand.Rand
	sigma float64
}

// NewGaussianNoise creates a seeded gaussian noise source. Two sources built
// from the same seed and sigma produce identical draw sequences.
func NewGaussianNoise(seed int64, sigma float64) *GaussianNoise {
	return &GaussianNoise{
		rng:   rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
		sigma: sigma,
	}
}

func (g *GaussianNoise) Factor() float64 {
	return 1 + g.rng.NormFloat64()*g.sigma
}

// UnitNoise always returns 1.0, removing the stochastic element entirely.
type UnitNoise struct{}

func (UnitNoise) Factor() float64 { return 1 }
