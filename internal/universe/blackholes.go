package universe

import "github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/rng"

// Black hole mass ranges per class, in the same scale as star masses.
var blackHoleMassRanges = [3]FloatRange{
	{Min: 300, Max: 5e3}, // stellar
	{Min: 5e3, Max: 1e6}, // intermediate
	{Min: 1e6, Max: 1e9}, // supermassive
}

var blackHoleClasses = [3]BlackHoleClass{
	BlackHoleClassStellar,
	BlackHoleClassIntermediate,
	BlackHoleClassSupermassive,
}

// generateBlackHole may replace the system's central star, or one of its
// companions, with a black hole. The replaced body keeps its id and its place
// in the hierarchy; only its physics and variant payload change.
func (g *Generator) generateBlackHole(cfg *GenerationConfig, s *rng.Sampler, sys *systemContext) {
	if !cfg.BlackHoles.Enabled {
		return
	}
	if !s.Bool(cfg.BlackHoles.Probability) {
		return
	}

	target := sys.root
	if len(sys.stars) > 1 && s.Bool(0.5) {
		target = sys.stars[1+s.Choice(len(sys.stars)-1)]
	}

	classIdx := s.WeightedIndex(cfg.BlackHoles.ClassWeights[:])
	if classIdx < 0 {
		return
	}

	r := blackHoleMassRanges[classIdx]
	mass := s.UniformFloat(r.Min, r.Max)
	shadow := radiusFromMass(cfg, mass) * s.UniformFloat(0.2, 0.5)

	desc := &BlackHoleDescriptor{
		Class:        blackHoleClasses[classIdx],
		ShadowRadius: shadow,
		Spin:         s.UniformFloat(0, 0.98),
	}

	if s.Bool(cfg.BlackHoles.DiskProbability) {
		inner := shadow * s.UniformFloat(1.5, 3)
		desc.Disk = &AccretionDisk{
			InnerRadius: inner,
			OuterRadius: inner * s.UniformFloat(3, 10),
			Thickness:   shadow * s.UniformFloat(0.1, 0.4),
			Temperature: s.UniformFloat(1e4, 1e7),
		}
	}

	if s.Bool(cfg.BlackHoles.JetProbability) {
		desc.Jet = &RelativisticJet{
			Length: shadow * s.UniformFloat(20, 120),
			Width:  shadow * s.UniformFloat(0.5, 2),
		}
	}

	target.Type = BodyTypeBlackHole
	target.Mass = mass
	target.Radius = shadow
	target.Color = blackHoleColor
	target.Icy = false
	target.BlackHole = desc
}
