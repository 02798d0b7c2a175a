package universe

import (
	"fmt"
	"math"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/rng"
)

// generateLagrangePoints marks L1–L5 for every eligible two-body pair of the
// system: each star–planet pair and each planet–moon pair. The collinear
// points use the classical mass-ratio cube-root approximation of the
// circular restricted three-body problem; L4/L5 sit 60 degrees ahead of and
// behind the secondary and are the only stable points. Stable points may
// additionally receive a small trojan population clustered within a few
// degrees of the exact point.
func (g *Generator) generateLagrangePoints(snap *UniverseSnapshot, cfg *GenerationConfig, s *rng.Sampler, sys *systemContext) {
	if !cfg.Lagrange.Enabled {
		return
	}

	for _, planet := range sys.allPlanets {
		primary := snap.Bodies[*planet.ParentID]
		g.buildLagrangeSet(snap, cfg, s.Fork("pair:"+planet.ID), sys, primary, planet)

		for _, childID := range planet.Children {
			moon := snap.Bodies[childID]
			if moon.Type != BodyTypeMoon {
				continue
			}
			g.buildLagrangeSet(snap, cfg, s.Fork("pair:"+moon.ID), sys, planet, moon)
		}
	}
}

func (g *Generator) buildLagrangeSet(snap *UniverseSnapshot, cfg *GenerationConfig, ps *rng.Sampler, sys *systemContext, primary, secondary *Body) {
	if primary == nil || primary.Mass <= 0 {
		return
	}
	// The restricted three-body approximation needs a dominant primary;
	// skip pairs where the mass draw inverted that.
	if secondary.Mass*3 >= primary.Mass {
		return
	}

	d := secondary.OrbitalDistance
	// Hill-sphere-like offset for the collinear points.
	r := d * math.Cbrt(secondary.Mass/(3*primary.Mass))

	points := [5]struct {
		distance float64
		phase    float64
	}{
		{d - r, secondary.OrbitalPhase},   // L1
		{d + r, secondary.OrbitalPhase},   // L2
		{d, secondary.OrbitalPhase + 180}, // L3
		{d, secondary.OrbitalPhase + 60},  // L4
		{d, secondary.OrbitalPhase - 60},  // L5
	}

	for i, p := range points {
		index := i + 1
		stable := index == 4 || index == 5
		phase := normalizeDeg(p.phase)

		point := &Body{
			ID:              g.newID("lagrange:%s:%d", secondary.ID, index),
			Name:            fmt.Sprintf("%s L%d", secondary.Name, index),
			Type:            BodyTypeLagrangePoint,
			Color:           trojanColor,
			ParentID:        &primary.ID,
			Children:        []string{},
			OrbitalDistance: p.distance,
			OrbitalSpeed:    secondary.OrbitalSpeed,
			OrbitalPhase:    phase,
			Lagrange: &LagrangeDescriptor{
				PrimaryID:   primary.ID,
				SecondaryID: secondary.ID,
				PointIndex:  index,
				Stable:      stable,
			},
		}
		point.Orbit = circularOrbit(p.distance)

		snap.addBody(point)
		sys.bodies = append(sys.bodies, point)

		if stable && ps.Bool(cfg.Lagrange.TrojanProbability) {
			g.buildTrojans(snap, cfg, ps, sys, primary, secondary, point)
		}
	}
}

// buildTrojans clusters a small asteroid population around a stable point.
func (g *Generator) buildTrojans(snap *UniverseSnapshot, cfg *GenerationConfig, ps *rng.Sampler, sys *systemContext, primary, secondary, point *Body) {
	count := ps.UniformInt(cfg.Lagrange.TrojanCount.Min, cfg.Lagrange.TrojanCount.Max)
	spread := cfg.Lagrange.TrojanSpreadDeg

	for i := 0; i < count; i++ {
		mass := ps.LogNormal(cfg.Mass.Mu, cfg.Mass.Sigma) * 0.001
		distance := point.OrbitalDistance * ps.UniformFloat(0.98, 1.02)

		trojan := &Body{
			ID:              g.newID("trojan:%s:%d:%d", secondary.ID, point.Lagrange.PointIndex, i),
			Name:            fmt.Sprintf("%s Trojan %d", point.Name, i+1),
			Type:            BodyTypeAsteroid,
			Mass:            mass,
			Radius:          radiusFromMass(cfg, mass),
			Color:           trojanColor,
			ParentID:        &primary.ID,
			Children:        []string{},
			OrbitalDistance: distance,
			OrbitalSpeed:    secondary.OrbitalSpeed,
			OrbitalPhase:    normalizeDeg(point.OrbitalPhase + ps.UniformFloat(-spread, spread)),
		}
		trojan.Orbit = circularOrbit(distance)

		snap.addBody(trojan)
		sys.bodies = append(sys.bodies, trojan)
	}
}

func normalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
