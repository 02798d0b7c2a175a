package universe

import (
	"fmt"
	"math"
	"sort"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/rng"
)

const moonOrbitScale = 0.08

// systemContext carries what the secondary feature generators need to know
// about one built system.
type systemContext struct {
	index       int
	name        string
	root        *Body
	stars       []*Body // root first, companions after
	rootPlanets []*Body // planets of the root star, ascending by distance
	allPlanets  []*Body // planets of every star, creation order
	bodies      []*Body // every body of the system, creation order
}

// buildSystem expands one system's topology and assigns physical properties.
// The heaviest star becomes the tree root; all other stars become its direct
// children on a shared orbital shell with evenly spaced phases. Planets and
// moons attach to their generating star and planet. Children are only ever
// created after their parent exists, so no cycle can be introduced here.
func (g *Generator) buildSystem(snap *UniverseSnapshot, cfg *GenerationConfig, parent *rng.Sampler, index int) *systemContext {
	s := parent.Fork(fmt.Sprintf("system:%d", index))
	plan := expandSystem(cfg, s.Fork("topology"))

	ctx := &systemContext{index: index, name: systemName(index)}

	starSampler := s.Fork("stars")
	masses := make([]float64, len(plan.stars))
	for i := range masses {
		masses[i] = sampleMass(starSampler, cfg, cfg.Mass.StarScale)
	}

	rootIdx := 0
	for i, m := range masses {
		if m > masses[rootIdx] {
			rootIdx = i
		}
	}

	// Root first, remaining stars in their original order.
	order := make([]int, 0, len(masses))
	order = append(order, rootIdx)
	for i := range masses {
		if i != rootIdx {
			order = append(order, i)
		}
	}

	companionShell := cfg.Orbit.CompanionDistance + starSampler.UniformFloat(-cfg.Orbit.Jitter, cfg.Orbit.Jitter)
	if companionShell <= 0 {
		companionShell = cfg.Orbit.CompanionDistance
	}
	basePhase := starSampler.UniformFloat(0, 360)
	companions := len(masses) - 1

	for slot, origIdx := range order {
		star := &Body{
			ID:       g.newID("system:%d:star:%d", index, origIdx),
			Type:     BodyTypeStar,
			Mass:     masses[origIdx],
			Children: []string{},
		}
		star.Radius = radiusFromMass(cfg, star.Mass)
		star.Color = starColor(star.Mass)

		if len(masses) == 1 {
			star.Name = ctx.name
		} else {
			star.Name = starName(ctx.name, slot)
		}

		if slot == 0 {
			ctx.root = star
		} else {
			star.ParentID = &ctx.root.ID
			star.OrbitalDistance = companionShell
			star.OrbitalSpeed = orbitalSpeed(cfg, companionShell)
			star.OrbitalPhase = math.Mod(basePhase+360*float64(slot-1)/float64(companions), 360)
		}
		star.Orbit = circularOrbit(star.OrbitalDistance)

		snap.addBody(star)
		ctx.stars = append(ctx.stars, star)
		ctx.bodies = append(ctx.bodies, star)

		ps := s.Fork(fmt.Sprintf("planets:%d", origIdx))
		for n := range plan.stars[origIdx].planets {
			planet := g.buildPlanet(snap, cfg, ps, ctx, star, index, origIdx, n)
			ctx.allPlanets = append(ctx.allPlanets, planet)
			if slot == 0 {
				ctx.rootPlanets = append(ctx.rootPlanets, planet)
			}

			ms := s.Fork(fmt.Sprintf("moons:%d:%d", origIdx, n))
			for k := range plan.stars[origIdx].planets[n].moons {
				g.buildMoon(snap, cfg, ms, ctx, planet, index, origIdx, n, k)
			}
		}
	}

	sort.SliceStable(ctx.rootPlanets, func(a, b int) bool {
		return ctx.rootPlanets[a].OrbitalDistance < ctx.rootPlanets[b].OrbitalDistance
	})

	applyOrbitStyle(cfg, s.Fork("orbits"), ctx.bodies)

	return ctx
}

func (g *Generator) buildPlanet(snap *UniverseSnapshot, cfg *GenerationConfig, ps *rng.Sampler, ctx *systemContext, star *Body, sysIdx, starIdx, n int) *Body {
	mass := sampleMass(ps, cfg, cfg.Mass.PlanetScale)
	icy := ps.Bool(cfg.Mass.IcyProbability)
	distance := orbitalDistance(ps, cfg, n)

	planet := &Body{
		ID:              g.newID("system:%d:star:%d:planet:%d", sysIdx, starIdx, n),
		Name:            planetName(star.Name, n),
		Type:            BodyTypePlanet,
		Mass:            mass,
		Radius:          radiusFromMass(cfg, mass),
		Icy:             icy,
		ParentID:        &star.ID,
		Children:        []string{},
		OrbitalDistance: distance,
		OrbitalSpeed:    orbitalSpeed(cfg, distance),
		OrbitalPhase:    orbitalPhase(ps),
	}
	planet.Color = planetColor(mass, icy, ps.Intn(len(icyColors)))
	planet.Orbit = circularOrbit(distance)

	snap.addBody(planet)
	ctx.bodies = append(ctx.bodies, planet)
	return planet
}

func (g *Generator) buildMoon(snap *UniverseSnapshot, cfg *GenerationConfig, ms *rng.Sampler, ctx *systemContext, planet *Body, sysIdx, starIdx, n, k int) *Body {
	mass := sampleMass(ms, cfg, cfg.Mass.MoonScale)
	icy := ms.Bool(cfg.Mass.IcyProbability)
	distance := orbitalDistance(ms, cfg, k) * moonOrbitScale

	moon := &Body{
		ID:              g.newID("system:%d:star:%d:planet:%d:moon:%d", sysIdx, starIdx, n, k),
		Name:            moonName(planet.Name, k),
		Type:            BodyTypeMoon,
		Mass:            mass,
		Radius:          radiusFromMass(cfg, mass),
		Icy:             icy,
		ParentID:        &planet.ID,
		Children:        []string{},
		OrbitalDistance: distance,
		OrbitalSpeed:    orbitalSpeed(cfg, distance),
		OrbitalPhase:    orbitalPhase(ms),
	}
	moon.Color = moonColor(icy, ms.Intn(len(moonColors)))
	moon.Orbit = circularOrbit(distance)

	snap.addBody(moon)
	ctx.bodies = append(ctx.bodies, moon)
	return moon
}
