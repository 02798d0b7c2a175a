package universe

import (
	"math"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/rng"
)

// applyOrbitStyle layers the elliptical extension on the circular baseline.
// With the circular style nothing is sampled and every orbit keeps its
// defaults, which is bit-for-bit the circular case.
func applyOrbitStyle(cfg *GenerationConfig, s *rng.Sampler, bodies []*Body) {
	if cfg.Eccentricity.Style == EccentricityCircular {
		return
	}

	for _, b := range bodies {
		if b.ParentID == nil {
			continue
		}

		var ecc float64
		switch cfg.Eccentricity.Style {
		case EccentricityMixed:
			ecc = s.UniformFloat(0, 0.3)
		case EccentricityEccentric:
			ecc = s.UniformFloat(0.1, 0.7)
		}

		b.Orbit.Eccentricity = ecc
		b.Orbit.SemiMajorAxis = b.OrbitalDistance

		max := cfg.Eccentricity.MaxRotationDeg
		b.Orbit.RotationX = s.UniformFloat(-max, max)
		b.Orbit.RotationY = s.UniformFloat(-max, max)
		b.Orbit.RotationZ = s.UniformFloat(-max, max)

		b.Orbit.OffsetX, b.Orbit.OffsetY, b.Orbit.OffsetZ = sampleOffset(s, cfg.Eccentricity.MaxOffset)
	}
}

// sampleOffset draws a center offset inside a sphere of the given radius:
// a normalized gaussian triple for the direction, a uniform magnitude.
func sampleOffset(s *rng.Sampler, maxOffset float64) (x, y, z float64) {
	if maxOffset <= 0 {
		return 0, 0, 0
	}

	dx := s.Normal(0, 1)
	dy := s.Normal(0, 1)
	dz := s.Normal(0, 1)
	norm := dx*dx + dy*dy + dz*dz
	if norm == 0 {
		return 0, 0, 0
	}

	r := s.UniformFloat(0, maxOffset)
	scale := r / math.Sqrt(norm)
	return dx * scale, dy * scale, dz * scale
}
