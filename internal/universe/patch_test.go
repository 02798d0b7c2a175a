package universe

import (
	"testing"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/shared/errors"
)

func float64Ptr(f float64) *float64 { return &f }

func TestPatchBodyMergesByField(t *testing.T) {
	snap := tinySnapshot()
	planet := snap.Bodies["planet"]
	planet.Name = "Altair I"
	planet.Mass = 12
	planet.Color = "#aabbcc"
	planet.OrbitalDistance = 40
	planet.Orbit = circularOrbit(40)

	patch := &BodyPatch{
		Mass:         float64Ptr(20),
		Eccentricity: float64Ptr(0.2),
	}
	if err := snap.PatchBody("planet", patch); err != nil {
		t.Fatalf("PatchBody failed: %v", err)
	}

	if planet.Mass != 20 {
		t.Fatalf("mass = %v, want 20", planet.Mass)
	}
	if planet.Orbit.Eccentricity != 0.2 {
		t.Fatalf("eccentricity = %v, want 0.2", planet.Orbit.Eccentricity)
	}
	// Absent fields stay untouched.
	if planet.Name != "Altair I" || planet.Color != "#aabbcc" || planet.OrbitalDistance != 40 {
		t.Fatal("patch overwrote fields it did not carry")
	}
	if planet.Orbit.SemiMajorAxis != 40 {
		t.Fatal("patch reset the semi-major axis")
	}
}

func TestPatchBodyValidation(t *testing.T) {
	tests := []struct {
		name  string
		patch BodyPatch
	}{
		{"negative mass", BodyPatch{Mass: float64Ptr(-1)}},
		{"negative radius", BodyPatch{Radius: float64Ptr(-0.5)}},
		{"negative distance", BodyPatch{OrbitalDistance: float64Ptr(-3)}},
		{"eccentricity above bound", BodyPatch{Eccentricity: float64Ptr(1.2)}},
		{"negative eccentricity", BodyPatch{Eccentricity: float64Ptr(-0.1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := tinySnapshot()
			before := *snap.Bodies["planet"]

			err := snap.PatchBody("planet", &tt.patch)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !errors.IsValidation(err) {
				t.Fatalf("error type = %s, want validation", errors.GetType(err))
			}
			if after := *snap.Bodies["planet"]; after.Mass != before.Mass || after.Radius != before.Radius {
				t.Fatal("rejected patch mutated the body")
			}
		})
	}
}

func TestPatchBodyNotFound(t *testing.T) {
	snap := tinySnapshot()
	err := snap.PatchBody("ghost", &BodyPatch{Mass: float64Ptr(1)})
	if errors.GetType(err) != errors.ErrorTypeNotFound {
		t.Fatalf("error type = %s, want not_found", errors.GetType(err))
	}
}

func TestPatchGroup(t *testing.T) {
	snap := groupFixture()

	name := "Perseus Cluster"
	pos := Position{X: 1, Y: 2, Z: 3}
	if err := snap.PatchGroup("b", &GroupPatch{Name: &name, Position: &pos}); err != nil {
		t.Fatalf("PatchGroup failed: %v", err)
	}

	grp := snap.Groups["b"]
	if grp.Name != name {
		t.Fatalf("name = %q, want %q", grp.Name, name)
	}
	if grp.Position == nil || grp.Position.Z != 3 {
		t.Fatal("position not applied")
	}
	if grp.ParentGroupID == nil || *grp.ParentGroupID != "a" {
		t.Fatal("patch disturbed group links")
	}

	if err := snap.PatchGroup("ghost", &GroupPatch{Name: &name}); errors.GetType(err) != errors.ErrorTypeNotFound {
		t.Fatal("expected not_found for unknown group")
	}
}
