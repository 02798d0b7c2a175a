package universe

// Visual fields are GPU-facing particle-field records. They reference host
// bodies or groups by id and never participate in the body hierarchy.

// BeltKind distinguishes the main belt from the outer (Kuiper-like) belt.
type BeltKind string

const (
	BeltKindMain   BeltKind = "main"
	BeltKindKuiper BeltKind = "kuiper"
)

// BeltField is a belt of small bodies around a star.
type BeltField struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Kind              BeltKind `json:"kind"`
	HostStarID        string   `json:"host_star_id"`
	InnerRadius       float64  `json:"inner_radius"`
	OuterRadius       float64  `json:"outer_radius"`
	Thickness         float64  `json:"thickness"`
	InclinationSpread float64  `json:"inclination_spread"`
	ParticleCount     int      `json:"particle_count"`
	Colors            []string `json:"colors"`
	Seed              uint64   `json:"seed"`
}

// DiskField is a protoplanetary disk around a system's central star.
type DiskField struct {
	ID            string  `json:"id"`
	HostStarID    string  `json:"host_star_id"`
	InnerRadius   float64 `json:"inner_radius"`
	OuterRadius   float64 `json:"outer_radius"`
	Thickness     float64 `json:"thickness"`
	Density       float64 `json:"density"`
	Opacity       float64 `json:"opacity"`
	Color         string  `json:"color"`
	ParticleCount int     `json:"particle_count"`
	Seed          uint64  `json:"seed"`
}

// NebulaField is a nebula region placed in open space, optionally associated
// with spatial groups.
type NebulaField struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	X                  float64  `json:"x"`
	Y                  float64  `json:"y"`
	Z                  float64  `json:"z"`
	Radius             float64  `json:"radius"`
	Density            float64  `json:"density"`
	Brightness         float64  `json:"brightness"`
	Colors             []string `json:"colors"`
	AssociatedGroupIDs []string `json:"associated_group_ids"`
	Seed               uint64   `json:"seed"`
}
