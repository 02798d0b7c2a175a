package universe

import "github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/shared/errors"

// ReparentBody moves a body under a new parent, detaching it from its current
// one. Moving a body under itself or under any of its own descendants is
// rejected because either would break the hierarchy's acyclicity.
func (s *UniverseSnapshot) ReparentBody(bodyID, newParentID string) error {
	body, ok := s.Bodies[bodyID]
	if !ok {
		return errors.NotFoundf("body %s not found", bodyID)
	}
	parent, ok := s.Bodies[newParentID]
	if !ok {
		return errors.NotFoundf("body %s not found", newParentID)
	}
	if bodyID == newParentID {
		return errors.Conflictf("cannot parent body %s to itself", bodyID)
	}
	if s.IsBodyAncestor(bodyID, newParentID) {
		return errors.Conflictf("cannot parent body %s to its descendant %s", bodyID, newParentID)
	}

	s.detachBody(body)
	body.ParentID = &parent.ID
	parent.Children = append(parent.Children, body.ID)
	return nil
}

// DetachBody promotes a body to a root by removing it from its parent.
func (s *UniverseSnapshot) DetachBody(bodyID string) error {
	body, ok := s.Bodies[bodyID]
	if !ok {
		return errors.NotFoundf("body %s not found", bodyID)
	}
	s.detachBody(body)
	body.ParentID = nil
	s.RootIDs = append(s.RootIDs, body.ID)
	return nil
}

func (s *UniverseSnapshot) detachBody(body *Body) {
	if body.ParentID == nil {
		s.RootIDs = removeID(s.RootIDs, body.ID)
		return
	}
	if parent, ok := s.Bodies[*body.ParentID]; ok {
		parent.Children = removeID(parent.Children, body.ID)
	}
}

// ReparentGroup moves a group under a new parent group, or promotes it to a
// root group when newParentID is nil. Cycles are rejected the same way body
// reparenting rejects them.
func (s *UniverseSnapshot) ReparentGroup(groupID string, newParentID *string) error {
	grp, ok := s.Groups[groupID]
	if !ok {
		return errors.NotFoundf("group %s not found", groupID)
	}

	if newParentID == nil {
		s.detachGroup(grp)
		grp.ParentGroupID = nil
		s.RootGroupIDs = append(s.RootGroupIDs, grp.ID)
		return nil
	}

	parent, ok := s.Groups[*newParentID]
	if !ok {
		return errors.NotFoundf("group %s not found", *newParentID)
	}
	if groupID == *newParentID {
		return errors.Conflictf("cannot parent group %s to itself", groupID)
	}
	if s.IsGroupAncestor(groupID, *newParentID) {
		return errors.Conflictf("cannot parent group %s to its descendant %s", groupID, *newParentID)
	}

	s.detachGroup(grp)
	grp.ParentGroupID = &parent.ID
	parent.Children = append(parent.Children, GroupChild{Type: GroupChildGroup, ID: grp.ID})
	return nil
}

func (s *UniverseSnapshot) detachGroup(grp *Group) {
	if grp.ParentGroupID == nil {
		s.RootGroupIDs = removeID(s.RootGroupIDs, grp.ID)
		return
	}
	if parent, ok := s.Groups[*grp.ParentGroupID]; ok {
		children := parent.Children[:0]
		for _, c := range parent.Children {
			if c.Type == GroupChildGroup && c.ID == grp.ID {
				continue
			}
			children = append(children, c)
		}
		parent.Children = children
	}
}

func removeID(ids []string, id string) []string {
	out := ids[:0]
	for _, v := range ids {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}
