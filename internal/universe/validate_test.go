package universe

import "testing"

func findingCodes(findings []Finding) map[string]int {
	codes := map[string]int{}
	for _, f := range findings {
		codes[f.Code]++
	}
	return codes
}

func TestValidateCleanSnapshot(t *testing.T) {
	snap, _ := generate(t, testConfig("pristine"))
	if findings := ValidateSnapshot(snap); len(findings) != 0 {
		t.Fatalf("clean snapshot produced findings: %+v", findings)
	}
}

func TestValidateDetectsBrokenParentLink(t *testing.T) {
	snap := tinySnapshot()
	ghost := "ghost"
	snap.Bodies["moon"].ParentID = &ghost

	codes := findingCodes(ValidateSnapshot(snap))
	if codes[FindingBodyParentMissing] == 0 {
		t.Fatalf("missing parent not detected: %v", codes)
	}
}

func TestValidateDetectsOneWayLink(t *testing.T) {
	snap := tinySnapshot()
	// Parent forgets the child; the child still points at it.
	snap.Bodies["planet"].Children = []string{}

	codes := findingCodes(ValidateSnapshot(snap))
	if codes[FindingBodyLinkBroken] == 0 {
		t.Fatalf("one-way link not detected: %v", codes)
	}
}

func TestValidateDetectsCycle(t *testing.T) {
	snap := tinySnapshot()
	moonID := "moon"
	snap.Bodies["star"].ParentID = &moonID
	snap.Bodies["moon"].Children = append(snap.Bodies["moon"].Children, "star")
	snap.RootIDs = []string{"other"}
	snap.Bodies["other"].ParentID = nil

	codes := findingCodes(ValidateSnapshot(snap))
	if codes[FindingBodyCycle] == 0 {
		t.Fatalf("cycle not detected: %v", codes)
	}
}

func TestValidateDetectsNumericViolations(t *testing.T) {
	snap := tinySnapshot()
	snap.Bodies["planet"].Mass = -5
	snap.Bodies["moon"].Orbit.Eccentricity = 1.5

	codes := findingCodes(ValidateSnapshot(snap))
	if codes[FindingNumericRange] < 2 {
		t.Fatalf("numeric violations not detected: %v", codes)
	}
}

func TestValidateDetectsDanglingFieldHosts(t *testing.T) {
	snap := tinySnapshot()
	snap.Belts = append(snap.Belts, BeltField{ID: "belt", HostStarID: "ghost", InnerRadius: 10, OuterRadius: 20})
	snap.Disks = append(snap.Disks, DiskField{ID: "disk", HostStarID: "star", InnerRadius: 30, OuterRadius: 20})
	snap.Nebulae = append(snap.Nebulae, NebulaField{ID: "nebula", AssociatedGroupIDs: []string{"ghost-group"}})

	codes := findingCodes(ValidateSnapshot(snap))
	if codes[FindingFieldHostMissing] < 2 {
		t.Fatalf("dangling hosts not detected: %v", codes)
	}
	if codes[FindingFieldRadiusOrder] == 0 {
		t.Fatalf("inverted disk radii not detected: %v", codes)
	}
}

func TestValidateDetectsRootListDrift(t *testing.T) {
	snap := tinySnapshot()
	snap.RootIDs = append(snap.RootIDs, "planet")

	codes := findingCodes(ValidateSnapshot(snap))
	if codes[FindingRootList] == 0 {
		t.Fatalf("parented body in root list not detected: %v", codes)
	}
}

func TestValidateDetectsGroupViolations(t *testing.T) {
	snap := groupFixture()
	ghost := "ghost"
	snap.Groups["c"].ParentGroupID = &ghost
	snap.Groups["a"].Children = append(snap.Groups["a"].Children, GroupChild{Type: GroupChildSystem, ID: "no-such-body"})

	codes := findingCodes(ValidateSnapshot(snap))
	if codes[FindingGroupParentMissing] == 0 {
		t.Fatalf("missing group parent not detected: %v", codes)
	}
	if codes[FindingGroupChildMissing] == 0 {
		t.Fatalf("missing group child not detected: %v", codes)
	}
}

func TestValidateFindingOrderIsDeterministic(t *testing.T) {
	build := func() *UniverseSnapshot {
		snap := tinySnapshot()
		snap.Bodies["planet"].Mass = -1
		snap.Bodies["moon"].Mass = -1
		snap.Bodies["other"].Mass = -1
		return snap
	}

	first := ValidateSnapshot(build())
	for i := 0; i < 10; i++ {
		next := ValidateSnapshot(build())
		if len(next) != len(first) {
			t.Fatal("finding count varies across runs")
		}
		for j := range next {
			if next[j] != first[j] {
				t.Fatalf("finding order varies at %d: %+v vs %+v", j, next[j], first[j])
			}
		}
	}
}
