package universe

import (
	"fmt"
	"math"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/rng"
)

// generateNebulae places nebula regions in open space, outside the grouped
// clusters, at a sampled distance and direction. A nebula may be associated
// with one or two existing root groups.
func (g *Generator) generateNebulae(snap *UniverseSnapshot, cfg *GenerationConfig, s *rng.Sampler) {
	if !cfg.Nebulae.Enabled {
		return
	}

	count := s.UniformInt(cfg.Nebulae.Count.Min, cfg.Nebulae.Count.Max)
	for i := 0; i < count; i++ {
		ns := s.Fork(fmt.Sprintf("nebula:%d", i))

		theta := ns.UniformFloat(0, 2*math.Pi)
		z := ns.UniformFloat(-1, 1)
		planar := math.Sqrt(1 - z*z)
		distance := ns.UniformFloat(cfg.Nebulae.Distance.Min, cfg.Nebulae.Distance.Max)

		primary := ns.Choice(len(nebulaColors))
		secondary := ns.Choice(len(nebulaColors))

		nebula := NebulaField{
			ID:                 g.newID("nebula:%d", i),
			Name:               nebulaName(i),
			X:                  math.Cos(theta) * planar * distance,
			Y:                  math.Sin(theta) * planar * distance,
			Z:                  z * distance,
			Radius:             ns.UniformFloat(100, 500),
			Density:            ns.UniformFloat(0.1, 0.9),
			Brightness:         ns.UniformFloat(0.2, 1),
			Colors:             []string{nebulaColors[primary], nebulaColors[secondary]},
			AssociatedGroupIDs: []string{},
			Seed:               ns.Uint64(),
		}

		for _, groupID := range snap.RootGroupIDs {
			if ns.Bool(0.3) {
				nebula.AssociatedGroupIDs = append(nebula.AssociatedGroupIDs, groupID)
			}
			if len(nebula.AssociatedGroupIDs) == 2 {
				break
			}
		}

		snap.Nebulae = append(snap.Nebulae, nebula)
	}
}
