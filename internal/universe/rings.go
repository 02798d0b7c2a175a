package universe

import "github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/rng"

// generateRings rolls a ring for every planet of the system. Ring radii are
// multiples of the planet radius.
func (g *Generator) generateRings(cfg *GenerationConfig, s *rng.Sampler, sys *systemContext) {
	if !cfg.Rings.Enabled {
		return
	}

	for _, planet := range sys.allPlanets {
		ps := s.Fork("ring:" + planet.ID)
		if !ps.Bool(cfg.Rings.Probability) {
			continue
		}

		inner := planet.Radius * ps.UniformFloat(1.4, 2.2)
		outer := inner * ps.UniformFloat(1.3, 2.0)

		color := rockyBeltColors[ps.Intn(len(rockyBeltColors))]
		if planet.Icy {
			color = icyBeltColors[ps.Intn(len(icyBeltColors))]
		}

		planet.Ring = &RingDescriptor{
			InnerRadius: inner,
			OuterRadius: outer,
			Thickness:   planet.Radius * ps.UniformFloat(0.01, 0.08),
			Opacity:     ps.UniformFloat(0.3, 0.9),
			Density:     ps.UniformFloat(0.2, 1),
			Color:       color,
		}
	}
}
