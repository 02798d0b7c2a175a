package universe

import (
	"fmt"
	"math"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/rng"
)

// generateRogue may emit one unbound rogue planet drifting past the system.
// Rogue planets are root-level bodies; they orbit nothing and carry a linear
// trajectory instead.
func (g *Generator) generateRogue(snap *UniverseSnapshot, cfg *GenerationConfig, s *rng.Sampler, sys *systemContext) {
	if !cfg.RoguePlanets.Enabled {
		return
	}
	if !s.Bool(cfg.RoguePlanets.Probability) {
		return
	}

	mass := s.LogNormal(cfg.Mass.Mu, cfg.Mass.Sigma) * cfg.Mass.PlanetScale
	icy := s.Bool(cfg.Mass.IcyProbability)

	dx, dy, dz := s.Normal(0, 1), s.Normal(0, 1), s.Normal(0, 1)
	norm := math.Sqrt(dx*dx + dy*dy + dz*dz)
	if norm == 0 {
		dx, dy, dz, norm = 1, 0, 0, 1
	}

	reach := cfg.Orbit.BaseDistance * s.UniformFloat(4, 12)

	rogue := &Body{
		ID:       g.newID("rogue:%s", sys.root.ID),
		Name:     fmt.Sprintf("%s Rogue", sys.name),
		Type:     BodyTypeRoguePlanet,
		Mass:     mass,
		Radius:   radiusFromMass(cfg, mass),
		Icy:      icy,
		Children: []string{},
		Rogue: &RogueTrajectory{
			OriginX:    s.UniformFloat(-reach, reach),
			OriginY:    s.UniformFloat(-reach, reach),
			OriginZ:    s.UniformFloat(-reach, reach),
			DirectionX: dx / norm,
			DirectionY: dy / norm,
			DirectionZ: dz / norm,
			Speed:      s.UniformFloat(0.5, 5),
		},
	}
	rogue.Color = planetColor(mass, icy, s.Intn(len(icyColors)))
	rogue.Orbit = circularOrbit(0)

	snap.addBody(rogue)
}
