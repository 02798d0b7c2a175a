package universe

import (
	"fmt"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/rng"
)

// generateComets adds comet bodies orbiting the system root. Comets are
// always strongly elliptical (eccentricity at least 0.6) with wide
// inclinations, regardless of the configured orbit style.
func (g *Generator) generateComets(snap *UniverseSnapshot, cfg *GenerationConfig, s *rng.Sampler, sys *systemContext) {
	if !cfg.Comets.Enabled || cfg.Comets.MaxPerSystem == 0 {
		return
	}
	if !s.Bool(cfg.Comets.Probability) {
		return
	}

	reach := cfg.Orbit.BaseDistance * 2
	if n := len(sys.rootPlanets); n > 0 {
		reach = sys.rootPlanets[n-1].OrbitalDistance
	}

	count := s.UniformInt(1, cfg.Comets.MaxPerSystem)
	for i := 0; i < count; i++ {
		cs := s.Fork(fmt.Sprintf("comet:%s:%d", sys.root.ID, i))

		distance := reach * cs.UniformFloat(1.2, 3)
		mass := cs.LogNormal(cfg.Mass.Mu, cfg.Mass.Sigma) * 0.01

		comet := &Body{
			ID:              g.newID("comet:%s:%d", sys.root.ID, i),
			Name:            fmt.Sprintf("%s Comet %d", sys.name, i+1),
			Type:            BodyTypeComet,
			Mass:            mass,
			Radius:          radiusFromMass(cfg, mass),
			Color:           cometColor,
			Icy:             true,
			ParentID:        &sys.root.ID,
			Children:        []string{},
			OrbitalDistance: distance,
			OrbitalSpeed:    orbitalSpeed(cfg, distance),
			OrbitalPhase:    cs.UniformFloat(0, 360),
			Tail: &CometTailDescriptor{
				Length:          cs.UniformFloat(10, 60),
				Width:           cs.UniformFloat(1, 6),
				Color:           cometTailColor,
				Opacity:         cs.UniformFloat(0.3, 0.8),
				ActivityFalloff: reach * cs.UniformFloat(0.5, 1.5),
			},
		}

		comet.Orbit = OrbitExtension{
			SemiMajorAxis: distance,
			Eccentricity:  cs.UniformFloat(0.6, 0.95),
			RotationX:     cs.UniformFloat(-60, 60),
			RotationY:     cs.UniformFloat(-60, 60),
			RotationZ:     cs.UniformFloat(-60, 60),
		}

		snap.addBody(comet)
		sys.bodies = append(sys.bodies, comet)
	}
}
