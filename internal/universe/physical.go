package universe

import (
	"math"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/rng"
)

// Physical property assignment. Masses are log-normal scaled per body type,
// radii follow a power law of mass, orbital distances grow exponentially
// outward with jitter, and speeds fall off with the inverse square root of
// distance.

func sampleMass(s *rng.Sampler, cfg *GenerationConfig, scale float64) float64 {
	return s.LogNormal(cfg.Mass.Mu, cfg.Mass.Sigma) * scale
}

func radiusFromMass(cfg *GenerationConfig, mass float64) float64 {
	return math.Pow(mass, cfg.RadiusPower)
}

// orbitalDistance returns the distance of the nth child of a parent:
// base * growth^n plus uniform jitter. Growth above 1 keeps the sequence
// monotonically increasing in expectation.
func orbitalDistance(s *rng.Sampler, cfg *GenerationConfig, n int) float64 {
	d := cfg.Orbit.BaseDistance*math.Pow(cfg.Orbit.GrowthFactor, float64(n)) +
		s.UniformFloat(-cfg.Orbit.Jitter, cfg.Orbit.Jitter)
	if min := cfg.Orbit.BaseDistance * 0.25; d < min {
		d = min
	}
	return d
}

func orbitalSpeed(cfg *GenerationConfig, distance float64) float64 {
	if distance <= 0 {
		return 0
	}
	return cfg.Orbit.SpeedConstant / math.Sqrt(distance)
}

func orbitalPhase(s *rng.Sampler) float64 {
	return s.UniformFloat(0, 360)
}
