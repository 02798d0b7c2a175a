package universe

import "github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/rng"

// generateDisk may attach a protoplanetary disk field to the system's
// central star. The disk is a visual field only and never enters the body
// hierarchy.
func (g *Generator) generateDisk(snap *UniverseSnapshot, cfg *GenerationConfig, s *rng.Sampler, sys *systemContext) {
	if !cfg.Disks.Enabled {
		return
	}
	if !s.Bool(cfg.Disks.Probability) {
		return
	}

	inner := sys.root.Radius * s.UniformFloat(2, 5)
	outer := cfg.Orbit.BaseDistance * s.UniformFloat(3, 8)
	if outer <= inner {
		outer = inner * 2
	}

	snap.Disks = append(snap.Disks, DiskField{
		ID:            g.newID("disk:%s", sys.root.ID),
		HostStarID:    sys.root.ID,
		InnerRadius:   inner,
		OuterRadius:   outer,
		Thickness:     s.UniformFloat(1, 6),
		Density:       s.UniformFloat(0.2, 1),
		Opacity:       s.UniformFloat(0.3, 0.8),
		Color:         diskColor,
		ParticleCount: s.UniformInt(cfg.Belts.ParticleCount.Min, cfg.Belts.ParticleCount.Max),
		Seed:          s.Uint64(),
	})
}
