package universe

import (
	"testing"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/shared/errors"
)

// tinySnapshot builds star <- planet <- moon plus a second free planet.
func tinySnapshot() *UniverseSnapshot {
	snap := newSnapshot("fixture")

	star := &Body{ID: "star", Type: BodyTypeStar, Children: []string{}}
	snap.addBody(star)

	planet := &Body{ID: "planet", Type: BodyTypePlanet, ParentID: &star.ID, Children: []string{}}
	snap.addBody(planet)

	moon := &Body{ID: "moon", Type: BodyTypeMoon, ParentID: &planet.ID, Children: []string{}}
	snap.addBody(moon)

	other := &Body{ID: "other", Type: BodyTypePlanet, ParentID: &star.ID, Children: []string{}}
	snap.addBody(other)

	return snap
}

func TestReparentBodyMovesSubtree(t *testing.T) {
	snap := tinySnapshot()

	if err := snap.ReparentBody("moon", "other"); err != nil {
		t.Fatalf("ReparentBody failed: %v", err)
	}

	moon := snap.Bodies["moon"]
	if *moon.ParentID != "other" {
		t.Fatalf("moon parent = %s, want other", *moon.ParentID)
	}
	for _, childID := range snap.Bodies["planet"].Children {
		if childID == "moon" {
			t.Fatal("old parent still lists the moved body")
		}
	}
	if got := snap.Bodies["other"].Children; len(got) != 1 || got[0] != "moon" {
		t.Fatalf("new parent children = %v", got)
	}

	if findings := ValidateSnapshot(snap); len(findings) != 0 {
		t.Fatalf("reparented snapshot has findings: %+v", findings)
	}
}

func TestReparentBodyRejectsCycles(t *testing.T) {
	tests := []struct {
		name     string
		bodyID   string
		parentID string
		wantType errors.ErrorType
	}{
		{"to itself", "planet", "planet", errors.ErrorTypeConflict},
		{"to own child", "planet", "moon", errors.ErrorTypeConflict},
		{"unknown body", "ghost", "star", errors.ErrorTypeNotFound},
		{"unknown parent", "planet", "ghost", errors.ErrorTypeNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := tinySnapshot()
			err := snap.ReparentBody(tt.bodyID, tt.parentID)
			if err == nil {
				t.Fatal("expected an error")
			}
			if got := errors.GetType(err); got != tt.wantType {
				t.Fatalf("error type = %s, want %s", got, tt.wantType)
			}
			if findings := ValidateSnapshot(snap); len(findings) != 0 {
				t.Fatalf("rejected reparent mutated the snapshot: %+v", findings)
			}
		})
	}
}

func TestDetachBodyPromotesToRoot(t *testing.T) {
	snap := tinySnapshot()

	if err := snap.DetachBody("planet"); err != nil {
		t.Fatalf("DetachBody failed: %v", err)
	}

	planet := snap.Bodies["planet"]
	if planet.ParentID != nil {
		t.Fatal("detached body still has a parent")
	}
	found := false
	for _, id := range snap.RootIDs {
		if id == "planet" {
			found = true
		}
	}
	if !found {
		t.Fatal("detached body missing from root list")
	}
	// The moon moves with its planet.
	if *snap.Bodies["moon"].ParentID != "planet" {
		t.Fatal("subtree did not move with the detached body")
	}
	if findings := ValidateSnapshot(snap); len(findings) != 0 {
		t.Fatalf("detached snapshot has findings: %+v", findings)
	}
}

func groupFixture() *UniverseSnapshot {
	snap := newSnapshot("groups")

	a := &Group{ID: "a", Name: "A", Children: []GroupChild{}}
	b := &Group{ID: "b", Name: "B", ParentGroupID: &a.ID, Children: []GroupChild{}}
	c := &Group{ID: "c", Name: "C", ParentGroupID: &b.ID, Children: []GroupChild{}}
	a.Children = append(a.Children, GroupChild{Type: GroupChildGroup, ID: "b"})
	b.Children = append(b.Children, GroupChild{Type: GroupChildGroup, ID: "c"})

	snap.Groups["a"] = a
	snap.Groups["b"] = b
	snap.Groups["c"] = c
	snap.RootGroupIDs = []string{"a"}
	return snap
}

func TestReparentGroup(t *testing.T) {
	snap := groupFixture()

	if err := snap.ReparentGroup("c", strPtr("a")); err != nil {
		t.Fatalf("ReparentGroup failed: %v", err)
	}
	if *snap.Groups["c"].ParentGroupID != "a" {
		t.Fatal("group c did not move under a")
	}
	if findings := ValidateSnapshot(snap); len(findings) != 0 {
		t.Fatalf("reparented group snapshot has findings: %+v", findings)
	}
}

func TestReparentGroupToRoot(t *testing.T) {
	snap := groupFixture()

	if err := snap.ReparentGroup("c", nil); err != nil {
		t.Fatalf("ReparentGroup to root failed: %v", err)
	}
	if snap.Groups["c"].ParentGroupID != nil {
		t.Fatal("group c still has a parent")
	}
	if len(snap.RootGroupIDs) != 2 {
		t.Fatalf("root group list = %v", snap.RootGroupIDs)
	}
}

func TestReparentGroupRejectsCycles(t *testing.T) {
	snap := groupFixture()

	err := snap.ReparentGroup("a", strPtr("c"))
	if err == nil {
		t.Fatal("expected a cycle rejection")
	}
	if got := errors.GetType(err); got != errors.ErrorTypeConflict {
		t.Fatalf("error type = %s, want conflict", got)
	}

	if err := snap.ReparentGroup("a", strPtr("a")); err == nil {
		t.Fatal("expected self-parent rejection")
	}
}

func strPtr(s string) *string { return &s }
