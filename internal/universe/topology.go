package universe

import "github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/rng"

// Topology expansion establishes the shape of a system — how many stars,
// planets per star, moons per planet — without assigning any physical values.

type moonPlan struct{}

type planetPlan struct {
	moons []moonPlan
}

type starPlan struct {
	planets []planetPlan
}

type systemPlan struct {
	stars []starPlan
}

// expandSystem draws a system shape: star multiplicity from the configured
// 3-way weights (capped at MaxStarsPerSystem), then a geometric planet count
// per star and a geometric moon count per planet.
func expandSystem(cfg *GenerationConfig, s *rng.Sampler) systemPlan {
	weights := make([]float64, cfg.MaxStarsPerSystem)
	copy(weights, cfg.StarProbabilities[:cfg.MaxStarsPerSystem])

	starCount := s.WeightedIndex(weights) + 1
	if starCount < 1 {
		starCount = 1
	}

	plan := systemPlan{stars: make([]starPlan, starCount)}
	for i := range plan.stars {
		planetCount := s.GeometricCount(cfg.Planets.Probability, cfg.Planets.Min, cfg.Planets.Max)
		planets := make([]planetPlan, planetCount)
		for j := range planets {
			moonCount := s.GeometricCount(cfg.Moons.Probability, cfg.Moons.Min, cfg.Moons.Max)
			planets[j] = planetPlan{moons: make([]moonPlan, moonCount)}
		}
		plan.stars[i] = starPlan{planets: planets}
	}
	return plan
}
