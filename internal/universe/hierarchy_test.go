package universe

import (
	"math"
	"testing"
)

func TestHierarchyLinksAreConsistent(t *testing.T) {
	snap, _ := generate(t, testConfig("links"))

	for id, b := range snap.Bodies {
		if b.ParentID != nil {
			parent, ok := snap.Bodies[*b.ParentID]
			if !ok {
				t.Fatalf("body %s references missing parent %s", id, *b.ParentID)
			}
			found := false
			for _, childID := range parent.Children {
				if childID == id {
					found = true
					break
				}
			}
			if !found {
				t.Fatalf("parent %s does not list %s as a child", parent.ID, id)
			}
		}
		for _, childID := range b.Children {
			child, ok := snap.Bodies[childID]
			if !ok {
				t.Fatalf("body %s lists missing child %s", id, childID)
			}
			if child.ParentID == nil || *child.ParentID != id {
				t.Fatalf("child %s does not point back to %s", childID, id)
			}
		}
	}
}

func TestHierarchyIsAcyclic(t *testing.T) {
	snap, _ := generate(t, testConfig("acyclic"))

	for id := range snap.Bodies {
		if snap.bodyDepth(id) < 0 {
			t.Fatalf("body %s sits on a cyclic parent chain", id)
		}
	}
}

func TestMoonsAttachToPlanets(t *testing.T) {
	cfg := testConfig("moons")
	cfg.Planets.Min = 2
	cfg.Moons.Min = 1

	snap, _ := generate(t, cfg)

	moons := 0
	for id, b := range snap.Bodies {
		if b.Type != BodyTypeMoon {
			continue
		}
		moons++
		parent := snap.Bodies[*b.ParentID]
		if parent.Type != BodyTypePlanet {
			t.Fatalf("moon %s is parented to a %s", id, parent.Type)
		}
		if b.OrbitalDistance >= parent.OrbitalDistance {
			t.Fatalf("moon %s orbits farther than its planet", id)
		}
	}
	if moons == 0 {
		t.Fatal("expected at least one moon with moons.min = 1")
	}
}

func TestCompanionStarsShareShell(t *testing.T) {
	cfg := testConfig("trinary")
	cfg.MinSystems = 1
	cfg.MaxSystems = 1
	cfg.StarProbabilities = [3]float64{0, 0, 1}

	snap, _ := generate(t, cfg)

	var companions []*Body
	for _, b := range snap.Bodies {
		if b.Type == BodyTypeStar && b.ParentID != nil {
			companions = append(companions, b)
		}
	}
	if len(companions) != 2 {
		t.Fatalf("expected 2 companion stars, got %d", len(companions))
	}

	if companions[0].OrbitalDistance != companions[1].OrbitalDistance {
		t.Fatal("companions do not share an orbital shell")
	}

	gap := math.Abs(companions[0].OrbitalPhase - companions[1].OrbitalPhase)
	if math.Abs(gap-180) > 1e-9 {
		t.Fatalf("companion phases %v and %v are not evenly spaced",
			companions[0].OrbitalPhase, companions[1].OrbitalPhase)
	}
}

func TestOrbitalSpeedFallsWithDistance(t *testing.T) {
	cfg := testConfig("speeds")
	cfg.Planets.Min = 3

	snap, _ := generate(t, cfg)

	for id, b := range snap.Bodies {
		if b.Type != BodyTypePlanet {
			continue
		}
		want := cfg.Orbit.SpeedConstant / math.Sqrt(b.OrbitalDistance)
		if math.Abs(b.OrbitalSpeed-want) > 1e-9 {
			t.Fatalf("planet %s speed %v, want %v", id, b.OrbitalSpeed, want)
		}
	}
}
