package universe

import (
	"fmt"
	"testing"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/rng"
)

func TestExpandSystemRespectsCaps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxStarsPerSystem = 2
	cfg.Planets = CountConfig{Probability: 0.3, Min: 1, Max: 4}
	cfg.Moons = CountConfig{Probability: 0.5, Min: 0, Max: 2}

	s := rng.NewSampler(rng.NewStream("topology"))
	for i := 0; i < 200; i++ {
		plan := expandSystem(&cfg, s.Fork(fmt.Sprintf("sys:%d", i)))

		if n := len(plan.stars); n < 1 || n > 2 {
			t.Fatalf("star count %d outside [1,2]", n)
		}
		for _, star := range plan.stars {
			if n := len(star.planets); n < 1 || n > 4 {
				t.Fatalf("planet count %d outside [1,4]", n)
			}
			for _, planet := range star.planets {
				if n := len(planet.moons); n > 2 {
					t.Fatalf("moon count %d above cap", n)
				}
			}
		}
	}
}

func TestExpandSystemForcedSingle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxStarsPerSystem = 3
	cfg.StarProbabilities = [3]float64{1, 0, 0}

	s := rng.NewSampler(rng.NewStream("single"))
	for i := 0; i < 50; i++ {
		plan := expandSystem(&cfg, s.Fork(fmt.Sprintf("sys:%d", i)))
		if len(plan.stars) != 1 {
			t.Fatalf("forced single weight produced %d stars", len(plan.stars))
		}
	}
}

func TestExpandSystemDeterministic(t *testing.T) {
	cfg := DefaultConfig()

	a := expandSystem(&cfg, rng.NewSampler(rng.NewStream("plan")))
	b := expandSystem(&cfg, rng.NewSampler(rng.NewStream("plan")))

	if len(a.stars) != len(b.stars) {
		t.Fatal("plans diverged")
	}
	for i := range a.stars {
		if len(a.stars[i].planets) != len(b.stars[i].planets) {
			t.Fatalf("star %d planet counts diverged", i)
		}
	}
}
