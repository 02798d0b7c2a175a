package universe

import "testing"

func TestCometsAreEccentricAndRootBound(t *testing.T) {
	cfg := testConfig("halley")
	cfg.MinSystems = 1
	cfg.MaxSystems = 1
	cfg.Comets.Probability = 1
	cfg.Comets.MaxPerSystem = 3

	snap, _ := generate(t, cfg)

	comets := 0
	for id, b := range snap.Bodies {
		if b.Type != BodyTypeComet {
			continue
		}
		comets++

		parent := snap.Bodies[*b.ParentID]
		if parent.ParentID != nil {
			t.Fatalf("comet %s is not bound to the system root", id)
		}
		if e := b.Orbit.Eccentricity; e < 0.6 || e > 0.95 {
			t.Fatalf("comet %s eccentricity %v outside [0.6,0.95]", id, e)
		}
		if !b.Icy {
			t.Fatalf("comet %s is not icy", id)
		}
		if b.Tail == nil {
			t.Fatalf("comet %s has no tail", id)
		}
		if b.Orbit.SemiMajorAxis != b.OrbitalDistance {
			t.Fatalf("comet %s semi-major axis not pinned to distance", id)
		}
	}
	if comets < 1 || comets > 3 {
		t.Fatalf("comet count %d outside [1,3] with probability 1", comets)
	}
}

func TestCometsDisabled(t *testing.T) {
	cfg := testConfig("no-comets")
	cfg.Comets.Enabled = false
	cfg.Comets.Probability = 1

	snap, _ := generate(t, cfg)
	for id, b := range snap.Bodies {
		if b.Type == BodyTypeComet {
			t.Fatalf("disabled comets still produced %s", id)
		}
	}
}

func TestCometsZeroMaxIsSilent(t *testing.T) {
	cfg := testConfig("zero-comets")
	cfg.Comets.Probability = 1
	cfg.Comets.MaxPerSystem = 0

	snap, _ := generate(t, cfg)
	for id, b := range snap.Bodies {
		if b.Type == BodyTypeComet {
			t.Fatalf("max_per_system 0 still produced comet %s", id)
		}
	}
}
