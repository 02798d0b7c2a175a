package universe

import (
	"math"
	"testing"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/shared/errors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = "check"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GenerationConfig)
	}{
		{"zero min systems", func(c *GenerationConfig) { c.MinSystems = 0 }},
		{"max below min systems", func(c *GenerationConfig) { c.MinSystems = 3; c.MaxSystems = 2 }},
		{"stars per system too high", func(c *GenerationConfig) { c.MaxStarsPerSystem = 4 }},
		{"negative star weight", func(c *GenerationConfig) { c.StarProbabilities = [3]float64{-0.1, 0.6, 0.5} }},
		{"zero-sum star weights", func(c *GenerationConfig) { c.StarProbabilities = [3]float64{0, 0, 0} }},
		{"planet probability above 1", func(c *GenerationConfig) { c.Planets.Probability = 1.5 }},
		{"moon max below min", func(c *GenerationConfig) { c.Moons.Min = 4; c.Moons.Max = 2 }},
		{"negative sigma", func(c *GenerationConfig) { c.Mass.Sigma = -1 }},
		{"zero planet scale", func(c *GenerationConfig) { c.Mass.PlanetScale = 0 }},
		{"zero radius power", func(c *GenerationConfig) { c.RadiusPower = 0 }},
		{"growth factor at 1", func(c *GenerationConfig) { c.Orbit.GrowthFactor = 1 }},
		{"zero base distance", func(c *GenerationConfig) { c.Orbit.BaseDistance = 0 }},
		{"unknown eccentricity style", func(c *GenerationConfig) { c.Eccentricity.Style = "wobbly" }},
		{"belt probability NaN", func(c *GenerationConfig) { c.Belts.Probability = math.NaN() }},
		{"inverted particle range", func(c *GenerationConfig) { c.Belts.ParticleCount = IntRange{Min: 100, Max: 10} }},
		{"negative comet cap", func(c *GenerationConfig) { c.Comets.MaxPerSystem = -1 }},
		{"black hole weights zero while enabled", func(c *GenerationConfig) {
			c.BlackHoles.Enabled = true
			c.BlackHoles.ClassWeights = [3]float64{0, 0, 0}
		}},
		{"negative trojan spread", func(c *GenerationConfig) { c.Lagrange.TrojanSpreadDeg = -1 }},
		{"inverted nebula distance", func(c *GenerationConfig) { c.Nebulae.Distance = FloatRange{Min: 100, Max: 50} }},
		{"zero groups while enabled", func(c *GenerationConfig) { c.Groups.MinGroups = 0 }},
		{"nest probability above 1", func(c *GenerationConfig) { c.Groups.NestProbability = 2 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Seed = "reject"
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !errors.IsValidation(err) {
				t.Fatalf("error type = %s, want validation", errors.GetType(err))
			}
		})
	}
}

func TestValidateRenormalizesStarWeights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = "weights"
	cfg.StarProbabilities = [3]float64{2, 1, 1}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("renormalizable weights rejected: %v", err)
	}

	sum := 0.0
	for _, w := range cfg.StarProbabilities {
		sum += w
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Fatalf("weights not renormalized, sum %v", sum)
	}
	if math.Abs(cfg.StarProbabilities[0]-0.5) > 1e-9 {
		t.Fatalf("weight ratio not preserved: %v", cfg.StarProbabilities)
	}
}

func TestValidateKeepsExactWeights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = "exact"
	cfg.StarProbabilities = [3]float64{0.5, 0.4, 0.1}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("exact weights rejected: %v", err)
	}
	if cfg.StarProbabilities != [3]float64{0.5, 0.4, 0.1} {
		t.Fatalf("weights within tolerance were altered: %v", cfg.StarProbabilities)
	}
}
