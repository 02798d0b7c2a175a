package universe

import (
	"fmt"
	"sort"
)

// Finding describes one violated aggregate invariant. Findings are values,
// not errors: a correct generator never produces any, but a caller handing
// in a foreign snapshot (the replace-snapshot command) relies on them.
type Finding struct {
	Code     string `json:"code"`
	EntityID string `json:"entity_id"`
	Message  string `json:"message"`
}

const (
	FindingBodyParentMissing  = "body_parent_missing"
	FindingBodyLinkBroken     = "body_link_broken"
	FindingBodyCycle          = "body_cycle"
	FindingRootList           = "root_list"
	FindingNumericRange       = "numeric_range"
	FindingFieldHostMissing   = "field_host_missing"
	FindingFieldRadiusOrder   = "field_radius_order"
	FindingGroupParentMissing = "group_parent_missing"
	FindingGroupLinkBroken    = "group_link_broken"
	FindingGroupCycle         = "group_cycle"
	FindingGroupChildMissing  = "group_child_missing"
)

// ValidateSnapshot re-checks the aggregate invariants over an assembled
// snapshot: acyclic hierarchies, mutually consistent parent/child links,
// referential integrity of every host reference, and numeric bounds.
// Iteration is over sorted ids so the findings order is deterministic.
func ValidateSnapshot(s *UniverseSnapshot) []Finding {
	var findings []Finding
	add := func(code, entityID, format string, args ...any) {
		findings = append(findings, Finding{
			Code:     code,
			EntityID: entityID,
			Message:  fmt.Sprintf(format, args...),
		})
	}

	bodyIDs := sortedKeys(s.Bodies)
	rootSet := make(map[string]bool, len(s.RootIDs))
	for _, id := range s.RootIDs {
		if rootSet[id] {
			add(FindingRootList, id, "body appears twice in root list")
		}
		rootSet[id] = true
		if _, ok := s.Bodies[id]; !ok {
			add(FindingRootList, id, "root list references unknown body")
		}
	}

	for _, id := range bodyIDs {
		b := s.Bodies[id]

		if b.ParentID == nil {
			if !rootSet[id] {
				add(FindingRootList, id, "parentless body missing from root list")
			}
		} else {
			parent, ok := s.Bodies[*b.ParentID]
			if !ok {
				add(FindingBodyParentMissing, id, "parent %s does not exist", *b.ParentID)
			} else if !containsID(parent.Children, id) {
				add(FindingBodyLinkBroken, id, "parent %s does not list body as child", parent.ID)
			}
			if rootSet[id] {
				add(FindingRootList, id, "parented body present in root list")
			}
		}

		for _, childID := range b.Children {
			child, ok := s.Bodies[childID]
			if !ok {
				add(FindingBodyLinkBroken, id, "child %s does not exist", childID)
				continue
			}
			if child.ParentID == nil || *child.ParentID != id {
				add(FindingBodyLinkBroken, id, "child %s does not point back to body", childID)
			}
		}

		if s.bodyDepth(id) < 0 {
			add(FindingBodyCycle, id, "parent chain does not terminate")
		}

		if b.Mass < 0 {
			add(FindingNumericRange, id, "mass %v is negative", b.Mass)
		}
		if b.Radius < 0 {
			add(FindingNumericRange, id, "radius %v is negative", b.Radius)
		}
		if b.OrbitalDistance < 0 {
			add(FindingNumericRange, id, "orbital distance %v is negative", b.OrbitalDistance)
		}
		if e := b.Orbit.Eccentricity; e < 0 || e > 0.99 {
			add(FindingNumericRange, id, "eccentricity %v outside [0,0.99]", e)
		}
		if b.Ring != nil && b.Ring.InnerRadius >= b.Ring.OuterRadius {
			add(FindingFieldRadiusOrder, id, "ring inner radius %v is not below outer %v", b.Ring.InnerRadius, b.Ring.OuterRadius)
		}
	}

	groupIDs := sortedKeys(s.Groups)
	rootGroupSet := make(map[string]bool, len(s.RootGroupIDs))
	for _, id := range s.RootGroupIDs {
		rootGroupSet[id] = true
		if _, ok := s.Groups[id]; !ok {
			add(FindingRootList, id, "root group list references unknown group")
		}
	}

	for _, id := range groupIDs {
		grp := s.Groups[id]

		if grp.ParentGroupID == nil {
			if !rootGroupSet[id] {
				add(FindingRootList, id, "parentless group missing from root group list")
			}
		} else {
			parent, ok := s.Groups[*grp.ParentGroupID]
			if !ok {
				add(FindingGroupParentMissing, id, "parent group %s does not exist", *grp.ParentGroupID)
			} else if !containsGroupChild(parent.Children, id) {
				add(FindingGroupLinkBroken, id, "parent group %s does not list group as child", parent.ID)
			}
		}

		walkSteps := 0
		cur := grp
		for cur.ParentGroupID != nil {
			walkSteps++
			if walkSteps > len(s.Groups) {
				add(FindingGroupCycle, id, "group parent chain does not terminate")
				break
			}
			next, ok := s.Groups[*cur.ParentGroupID]
			if !ok {
				break
			}
			cur = next
		}

		for _, child := range grp.Children {
			switch child.Type {
			case GroupChildSystem:
				if _, ok := s.Bodies[child.ID]; !ok {
					add(FindingGroupChildMissing, id, "system child %s does not exist", child.ID)
				}
			case GroupChildGroup:
				childGroup, ok := s.Groups[child.ID]
				if !ok {
					add(FindingGroupChildMissing, id, "group child %s does not exist", child.ID)
				} else if childGroup.ParentGroupID == nil || *childGroup.ParentGroupID != id {
					add(FindingGroupLinkBroken, id, "group child %s does not point back to group", child.ID)
				}
			default:
				add(FindingGroupChildMissing, id, "child %s has unknown type %q", child.ID, child.Type)
			}
		}
	}

	for _, belt := range s.Belts {
		if _, ok := s.Bodies[belt.HostStarID]; !ok {
			add(FindingFieldHostMissing, belt.ID, "belt host star %s does not exist", belt.HostStarID)
		}
		if belt.InnerRadius >= belt.OuterRadius {
			add(FindingFieldRadiusOrder, belt.ID, "belt inner radius %v is not below outer %v", belt.InnerRadius, belt.OuterRadius)
		}
	}

	for _, disk := range s.Disks {
		if _, ok := s.Bodies[disk.HostStarID]; !ok {
			add(FindingFieldHostMissing, disk.ID, "disk host star %s does not exist", disk.HostStarID)
		}
		if disk.InnerRadius >= disk.OuterRadius {
			add(FindingFieldRadiusOrder, disk.ID, "disk inner radius %v is not below outer %v", disk.InnerRadius, disk.OuterRadius)
		}
	}

	for _, nebula := range s.Nebulae {
		for _, groupID := range nebula.AssociatedGroupIDs {
			if _, ok := s.Groups[groupID]; !ok {
				add(FindingFieldHostMissing, nebula.ID, "associated group %s does not exist", groupID)
			}
		}
	}

	return findings
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func containsGroupChild(children []GroupChild, id string) bool {
	for _, c := range children {
		if c.Type == GroupChildGroup && c.ID == id {
			return true
		}
	}
	return false
}
