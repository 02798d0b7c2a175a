package universe

import (
	"fmt"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/rng"
)

// generateBelts emits asteroid belt fields for one system. Main belts sit in
// the gap between two planets, or beyond the outermost when only one planet
// exists; the Kuiper-like outer belt sits at a multiple of the outermost
// planet's distance with an icy palette and a wider inclination spread.
// Systems without planets silently get no belts.
func (g *Generator) generateBelts(snap *UniverseSnapshot, cfg *GenerationConfig, s *rng.Sampler, sys *systemContext) {
	if !cfg.Belts.Enabled {
		return
	}

	planets := sys.rootPlanets

	for i := 0; i < cfg.Belts.MaxPerSystem; i++ {
		if !s.Bool(cfg.Belts.Probability) {
			continue
		}
		if len(planets) == 0 {
			return
		}

		var inner, outer float64
		if len(planets) >= 2 {
			gap := s.Choice(len(planets) - 1)
			lo := planets[gap].OrbitalDistance
			hi := planets[gap+1].OrbitalDistance
			width := hi - lo
			inner = lo + width*s.UniformFloat(0.15, 0.35)
			outer = lo + width*s.UniformFloat(0.6, 0.85)
		} else {
			inner = planets[0].OrbitalDistance * s.UniformFloat(1.25, 1.5)
			outer = inner * s.UniformFloat(1.2, 1.6)
		}

		snap.Belts = append(snap.Belts, BeltField{
			ID:                g.newID("belt:%s:%d", sys.root.ID, i),
			Name:              fmt.Sprintf("%s Belt", sys.name),
			Kind:              BeltKindMain,
			HostStarID:        sys.root.ID,
			InnerRadius:       inner,
			OuterRadius:       outer,
			Thickness:         s.UniformFloat(1, 4),
			InclinationSpread: s.UniformFloat(2, 6),
			ParticleCount:     s.UniformInt(cfg.Belts.ParticleCount.Min, cfg.Belts.ParticleCount.Max),
			Colors:            rockyBeltColors,
			Seed:              s.Uint64(),
		})
	}

	if len(planets) > 0 && s.Bool(cfg.Belts.KuiperProbability) {
		outermost := planets[len(planets)-1].OrbitalDistance
		inner := outermost * s.UniformFloat(1.5, 2.0)
		outer := inner * s.UniformFloat(1.4, 2.0)

		snap.Belts = append(snap.Belts, BeltField{
			ID:                g.newID("belt:%s:kuiper", sys.root.ID),
			Name:              fmt.Sprintf("%s Outer Belt", sys.name),
			Kind:              BeltKindKuiper,
			HostStarID:        sys.root.ID,
			InnerRadius:       inner,
			OuterRadius:       outer,
			Thickness:         s.UniformFloat(4, 12),
			InclinationSpread: s.UniformFloat(10, 30),
			ParticleCount:     s.UniformInt(cfg.Belts.ParticleCount.Min, cfg.Belts.ParticleCount.Max),
			Colors:            icyBeltColors,
			Seed:              s.Uint64(),
		})
	}
}
