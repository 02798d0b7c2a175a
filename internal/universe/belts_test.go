package universe

import "testing"

func TestBeltSitsBetweenPlanets(t *testing.T) {
	cfg := testConfig("belted")
	cfg.MinSystems = 1
	cfg.MaxSystems = 1
	cfg.MaxStarsPerSystem = 1
	cfg.Planets.Min = 3
	cfg.Belts.Probability = 1
	cfg.Belts.MaxPerSystem = 1
	cfg.Belts.KuiperProbability = 0

	snap, _ := generate(t, cfg)

	if len(snap.Belts) != 1 {
		t.Fatalf("expected exactly 1 belt, got %d", len(snap.Belts))
	}
	belt := snap.Belts[0]

	if belt.Kind != BeltKindMain {
		t.Fatalf("belt kind = %s, want main", belt.Kind)
	}
	if belt.InnerRadius >= belt.OuterRadius {
		t.Fatalf("belt radii inverted: inner %v, outer %v", belt.InnerRadius, belt.OuterRadius)
	}
	host, ok := snap.Bodies[belt.HostStarID]
	if !ok {
		t.Fatalf("belt host star %s does not exist", belt.HostStarID)
	}
	if host.ParentID != nil {
		t.Fatal("belt host is not the system root")
	}
	if belt.ParticleCount < cfg.Belts.ParticleCount.Min || belt.ParticleCount > cfg.Belts.ParticleCount.Max {
		t.Fatalf("belt particle count %d outside configured range", belt.ParticleCount)
	}
	if len(belt.Colors) == 0 {
		t.Fatal("belt has no palette")
	}
}

func TestNoPlanetsMeansNoBelts(t *testing.T) {
	cfg := testConfig("empty-system")
	cfg.Planets.Probability = 1
	cfg.Planets.Min = 0
	cfg.Planets.Max = 0
	cfg.Moons.Max = 0
	cfg.Belts.Probability = 1
	cfg.Belts.KuiperProbability = 1
	cfg.Comets.Enabled = false

	snap, _ := generate(t, cfg)

	if len(snap.Belts) != 0 {
		t.Fatalf("planetless systems produced %d belts", len(snap.Belts))
	}
}

func TestKuiperBeltBeyondOutermostPlanet(t *testing.T) {
	cfg := testConfig("kuiper")
	cfg.MinSystems = 1
	cfg.MaxSystems = 1
	cfg.MaxStarsPerSystem = 1
	cfg.Planets.Min = 2
	cfg.Belts.Probability = 0
	cfg.Belts.KuiperProbability = 1

	snap, _ := generate(t, cfg)

	if len(snap.Belts) != 1 {
		t.Fatalf("expected exactly 1 outer belt, got %d", len(snap.Belts))
	}
	belt := snap.Belts[0]
	if belt.Kind != BeltKindKuiper {
		t.Fatalf("belt kind = %s, want kuiper", belt.Kind)
	}

	outermost := 0.0
	for _, b := range snap.Bodies {
		if b.Type == BodyTypePlanet && b.OrbitalDistance > outermost {
			outermost = b.OrbitalDistance
		}
	}
	if belt.InnerRadius <= outermost {
		t.Fatalf("outer belt inner radius %v not beyond outermost planet %v", belt.InnerRadius, outermost)
	}
}

func TestBeltsDisabled(t *testing.T) {
	cfg := testConfig("no-belts")
	cfg.Belts.Enabled = false
	cfg.Belts.Probability = 1
	cfg.Belts.KuiperProbability = 1

	snap, _ := generate(t, cfg)
	if len(snap.Belts) != 0 {
		t.Fatalf("disabled belts still produced %d", len(snap.Belts))
	}
}
