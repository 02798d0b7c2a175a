package universe

import "github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/rng"

// generateGroups partitions root systems into named spatial groups by random
// assignment, then nests some groups under others. A nesting assignment that
// would create a cycle is rejected by walking the proposed parent's ancestor
// chain. Rogue planets are not systems and stay ungrouped.
func (g *Generator) generateGroups(snap *UniverseSnapshot, cfg *GenerationConfig, s *rng.Sampler) {
	if !cfg.Groups.Enabled {
		return
	}

	var systemRoots []string
	for _, id := range snap.RootIDs {
		switch snap.Bodies[id].Type {
		case BodyTypeStar, BodyTypeBlackHole:
			systemRoots = append(systemRoots, id)
		}
	}
	if len(systemRoots) == 0 {
		return
	}

	count := s.UniformInt(cfg.Groups.MinGroups, cfg.Groups.MaxGroups)
	if count > len(systemRoots) {
		count = len(systemRoots)
	}

	groups := make([]*Group, count)
	for i := range groups {
		groups[i] = &Group{
			ID:       g.newID("group:%d", i),
			Name:     groupName(i),
			Children: []GroupChild{},
			Position: &Position{
				X: s.UniformFloat(-1000, 1000),
				Y: s.UniformFloat(-1000, 1000),
				Z: s.UniformFloat(-1000, 1000),
			},
		}
		snap.Groups[groups[i].ID] = groups[i]
	}

	for _, rootID := range systemRoots {
		target := groups[s.Choice(count)]
		target.Children = append(target.Children, GroupChild{Type: GroupChildSystem, ID: rootID})
	}

	// Nest groups; the first group always stays a root so the forest is
	// never empty.
	for i := 1; i < count; i++ {
		if !s.Bool(cfg.Groups.NestProbability) {
			continue
		}
		parent := groups[s.Choice(count)]
		child := groups[i]
		if parent.ID == child.ID {
			continue
		}
		if snap.IsGroupAncestor(child.ID, parent.ID) {
			continue
		}
		child.ParentGroupID = &parent.ID
		parent.Children = append(parent.Children, GroupChild{Type: GroupChildGroup, ID: child.ID})
	}

	for _, grp := range groups {
		if grp.ParentGroupID == nil {
			snap.RootGroupIDs = append(snap.RootGroupIDs, grp.ID)
		}
	}
}
