package universe

// BodyType discriminates the closed set of body variants.
type BodyType string

const (
	BodyTypeStar          BodyType = "star"
	BodyTypePlanet        BodyType = "planet"
	BodyTypeMoon          BodyType = "moon"
	BodyTypeAsteroid      BodyType = "asteroid"
	BodyTypeComet         BodyType = "comet"
	BodyTypeLagrangePoint BodyType = "lagrange_point"
	BodyTypeBlackHole     BodyType = "black_hole"
	BodyTypeRoguePlanet   BodyType = "rogue_planet"
)

// Body is a node in the celestial hierarchy. Parent/child links are id-based
// and must stay mutually consistent: a child lists its parent in ParentID and
// the parent lists the child in Children.
//
// The circular orbit is the baseline; Orbit layers the elliptical extension
// on top and degenerates exactly to the circular case when left at its
// defaults (semi-major axis equal to OrbitalDistance, everything else zero).
type Body struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     BodyType `json:"type"`
	Mass     float64  `json:"mass"`
	Radius   float64  `json:"radius"`
	Color    string   `json:"color"`
	Icy      bool     `json:"icy,omitempty"`
	ParentID *string  `json:"parent_id"`
	Children []string `json:"children"`

	OrbitalDistance float64 `json:"orbital_distance"`
	OrbitalSpeed    float64 `json:"orbital_speed"`
	OrbitalPhase    float64 `json:"orbital_phase"`

	Orbit OrbitExtension `json:"orbit"`

	// Variant payloads; exactly the ones matching Type are set.
	Ring      *RingDescriptor      `json:"ring,omitempty"`
	Tail      *CometTailDescriptor `json:"tail,omitempty"`
	BlackHole *BlackHoleDescriptor `json:"black_hole,omitempty"`
	Lagrange  *LagrangeDescriptor  `json:"lagrange,omitempty"`
	Rogue     *RogueTrajectory     `json:"rogue,omitempty"`
}

// OrbitExtension carries the elliptical parameters layered on the circular
// baseline.
type OrbitExtension struct {
	SemiMajorAxis float64 `json:"semi_major_axis"`
	Eccentricity  float64 `json:"eccentricity"`
	RotationX     float64 `json:"rotation_x"`
	RotationY     float64 `json:"rotation_y"`
	RotationZ     float64 `json:"rotation_z"`
	OffsetX       float64 `json:"offset_x"`
	OffsetY       float64 `json:"offset_y"`
	OffsetZ       float64 `json:"offset_z"`
}

// circularOrbit returns the extension values equivalent to a pure circular
// orbit at the given distance.
func circularOrbit(distance float64) OrbitExtension {
	return OrbitExtension{SemiMajorAxis: distance}
}

// RingDescriptor describes a planetary ring. Radii are absolute, derived from
// the planet radius at generation time.
type RingDescriptor struct {
	InnerRadius float64 `json:"inner_radius"`
	OuterRadius float64 `json:"outer_radius"`
	Thickness   float64 `json:"thickness"`
	Opacity     float64 `json:"opacity"`
	Density     float64 `json:"density"`
	Color       string  `json:"color"`
}

// CometTailDescriptor describes a comet tail.
type CometTailDescriptor struct {
	Length          float64 `json:"length"`
	Width           float64 `json:"width"`
	Color           string  `json:"color"`
	Opacity         float64 `json:"opacity"`
	ActivityFalloff float64 `json:"activity_falloff"`
}

// BlackHoleClass buckets black holes by mass regime.
type BlackHoleClass string

const (
	BlackHoleClassStellar      BlackHoleClass = "stellar"
	BlackHoleClassIntermediate BlackHoleClass = "intermediate"
	BlackHoleClassSupermassive BlackHoleClass = "supermassive"
)

// BlackHoleDescriptor describes a black hole body.
type BlackHoleDescriptor struct {
	Class        BlackHoleClass   `json:"class"`
	ShadowRadius float64          `json:"shadow_radius"`
	Spin         float64          `json:"spin"`
	Disk         *AccretionDisk   `json:"disk,omitempty"`
	Jet          *RelativisticJet `json:"jet,omitempty"`
}

// AccretionDisk describes the luminous disk around a black hole.
type AccretionDisk struct {
	InnerRadius float64 `json:"inner_radius"`
	OuterRadius float64 `json:"outer_radius"`
	Thickness   float64 `json:"thickness"`
	Temperature float64 `json:"temperature"`
}

// RelativisticJet describes polar jets emitted by an accreting black hole.
type RelativisticJet struct {
	Length float64 `json:"length"`
	Width  float64 `json:"width"`
}

// LagrangeDescriptor identifies which equilibrium point of which two-body
// pair a lagrange_point body marks. PointIndex is 1 through 5; only L4 and
// L5 are stable.
type LagrangeDescriptor struct {
	PrimaryID   string `json:"primary_id"`
	SecondaryID string `json:"secondary_id"`
	PointIndex  int    `json:"point_index"`
	Stable      bool   `json:"stable"`
}

// RogueTrajectory describes the linear drift of an unbound rogue planet.
type RogueTrajectory struct {
	OriginX    float64 `json:"origin_x"`
	OriginY    float64 `json:"origin_y"`
	OriginZ    float64 `json:"origin_z"`
	DirectionX float64 `json:"direction_x"`
	DirectionY float64 `json:"direction_y"`
	DirectionZ float64 `json:"direction_z"`
	Speed      float64 `json:"speed"`
}
