package universe

import "github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/shared/errors"

// BodyPatch carries a partial update for a body. Nil fields are left alone,
// so a caller can adjust one attribute without restating the rest.
type BodyPatch struct {
	Name            *string  `json:"name,omitempty"`
	Mass            *float64 `json:"mass,omitempty"`
	Radius          *float64 `json:"radius,omitempty"`
	Color           *string  `json:"color,omitempty"`
	Icy             *bool    `json:"icy,omitempty"`
	OrbitalDistance *float64 `json:"orbital_distance,omitempty"`
	OrbitalSpeed    *float64 `json:"orbital_speed,omitempty"`
	OrbitalPhase    *float64 `json:"orbital_phase,omitempty"`
	SemiMajorAxis   *float64 `json:"semi_major_axis,omitempty"`
	Eccentricity    *float64 `json:"eccentricity,omitempty"`
	RotationX       *float64 `json:"rotation_x,omitempty"`
	RotationY       *float64 `json:"rotation_y,omitempty"`
	RotationZ       *float64 `json:"rotation_z,omitempty"`
	OffsetX         *float64 `json:"offset_x,omitempty"`
	OffsetY         *float64 `json:"offset_y,omitempty"`
	OffsetZ         *float64 `json:"offset_z,omitempty"`
}

func (p *BodyPatch) validate() error {
	if p.Mass != nil && *p.Mass < 0 {
		return errors.Validationf("mass must be non-negative, got %v", *p.Mass)
	}
	if p.Radius != nil && *p.Radius < 0 {
		return errors.Validationf("radius must be non-negative, got %v", *p.Radius)
	}
	if p.OrbitalDistance != nil && *p.OrbitalDistance < 0 {
		return errors.Validationf("orbital distance must be non-negative, got %v", *p.OrbitalDistance)
	}
	if p.Eccentricity != nil && (*p.Eccentricity < 0 || *p.Eccentricity > 0.99) {
		return errors.Validationf("eccentricity must be within [0, 0.99], got %v", *p.Eccentricity)
	}
	return nil
}

func (p *BodyPatch) apply(b *Body) {
	if p.Name != nil {
		b.Name = *p.Name
	}
	if p.Mass != nil {
		b.Mass = *p.Mass
	}
	if p.Radius != nil {
		b.Radius = *p.Radius
	}
	if p.Color != nil {
		b.Color = *p.Color
	}
	if p.Icy != nil {
		b.Icy = *p.Icy
	}
	if p.OrbitalDistance != nil {
		b.OrbitalDistance = *p.OrbitalDistance
	}
	if p.OrbitalSpeed != nil {
		b.OrbitalSpeed = *p.OrbitalSpeed
	}
	if p.OrbitalPhase != nil {
		b.OrbitalPhase = *p.OrbitalPhase
	}
	if p.SemiMajorAxis != nil {
		b.Orbit.SemiMajorAxis = *p.SemiMajorAxis
	}
	if p.Eccentricity != nil {
		b.Orbit.Eccentricity = *p.Eccentricity
	}
	if p.RotationX != nil {
		b.Orbit.RotationX = *p.RotationX
	}
	if p.RotationY != nil {
		b.Orbit.RotationY = *p.RotationY
	}
	if p.RotationZ != nil {
		b.Orbit.RotationZ = *p.RotationZ
	}
	if p.OffsetX != nil {
		b.Orbit.OffsetX = *p.OffsetX
	}
	if p.OffsetY != nil {
		b.Orbit.OffsetY = *p.OffsetY
	}
	if p.OffsetZ != nil {
		b.Orbit.OffsetZ = *p.OffsetZ
	}
}

// PatchBody applies a partial update to a body in place.
func (s *UniverseSnapshot) PatchBody(bodyID string, patch *BodyPatch) error {
	body, ok := s.Bodies[bodyID]
	if !ok {
		return errors.NotFoundf("body %s not found", bodyID)
	}
	if err := patch.validate(); err != nil {
		return err
	}
	patch.apply(body)
	return nil
}

// GroupPatch carries a partial update for a group.
type GroupPatch struct {
	Name     *string   `json:"name,omitempty"`
	Position *Position `json:"position,omitempty"`
}

// PatchGroup applies a partial update to a group in place.
func (s *UniverseSnapshot) PatchGroup(groupID string, patch *GroupPatch) error {
	grp, ok := s.Groups[groupID]
	if !ok {
		return errors.NotFoundf("group %s not found", groupID)
	}
	if patch.Name != nil {
		grp.Name = *patch.Name
	}
	if patch.Position != nil {
		pos := *patch.Position
		grp.Position = &pos
	}
	return nil
}
