package universe

// UniverseSnapshot is the complete, immutable output of one generation run.
// Every host/parent reference inside any entity resolves to an id present in
// the same snapshot. The generator never mutates a snapshot after handing it
// off; the command layer works on its own copy.
type UniverseSnapshot struct {
	Seed         string            `json:"seed"`
	Bodies       map[string]*Body  `json:"bodies"`
	RootIDs      []string          `json:"root_ids"`
	Groups       map[string]*Group `json:"groups"`
	RootGroupIDs []string          `json:"root_group_ids"`
	Belts        []BeltField       `json:"belts"`
	Disks        []DiskField       `json:"disks"`
	Nebulae      []NebulaField     `json:"nebulae"`
	Time         float64           `json:"time"`
}

func newSnapshot(seed string) *UniverseSnapshot {
	return &UniverseSnapshot{
		Seed:         seed,
		Bodies:       make(map[string]*Body),
		RootIDs:      []string{},
		Groups:       make(map[string]*Group),
		RootGroupIDs: []string{},
		Belts:        []BeltField{},
		Disks:        []DiskField{},
		Nebulae:      []NebulaField{},
	}
}

// addBody inserts a body and wires it under its parent when one is set.
func (s *UniverseSnapshot) addBody(b *Body) {
	s.Bodies[b.ID] = b
	if b.ParentID == nil {
		s.RootIDs = append(s.RootIDs, b.ID)
		return
	}
	if parent, ok := s.Bodies[*b.ParentID]; ok {
		parent.Children = append(parent.Children, b.ID)
	}
}

// bodyDepth returns the number of parent hops from the body to its root, or
// -1 when the walk does not terminate within len(Bodies) steps.
func (s *UniverseSnapshot) bodyDepth(id string) int {
	depth := 0
	cur := s.Bodies[id]
	for cur != nil && cur.ParentID != nil {
		depth++
		if depth > len(s.Bodies) {
			return -1
		}
		cur = s.Bodies[*cur.ParentID]
	}
	return depth
}

// IsBodyAncestor reports whether ancestorID appears on the parent chain of
// bodyID (bodyID itself excluded). The walk is capped at the body count so a
// corrupted cyclic snapshot cannot loop forever.
func (s *UniverseSnapshot) IsBodyAncestor(ancestorID, bodyID string) bool {
	cur := s.Bodies[bodyID]
	for steps := 0; cur != nil && cur.ParentID != nil && steps <= len(s.Bodies); steps++ {
		if *cur.ParentID == ancestorID {
			return true
		}
		cur = s.Bodies[*cur.ParentID]
	}
	return false
}

// IsGroupAncestor reports whether ancestorID appears on the parent chain of
// groupID (groupID itself excluded).
func (s *UniverseSnapshot) IsGroupAncestor(ancestorID, groupID string) bool {
	cur := s.Groups[groupID]
	for steps := 0; cur != nil && cur.ParentGroupID != nil && steps <= len(s.Groups); steps++ {
		if *cur.ParentGroupID == ancestorID {
			return true
		}
		cur = s.Groups[*cur.ParentGroupID]
	}
	return false
}
