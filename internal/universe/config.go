package universe

import (
	"math"

	"github.com/AdrianMartinezCode/solar-system-constructor-sub001/internal/shared/errors"
)

// IntRange is an inclusive integer range with Min <= Max.
type IntRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// FloatRange is an inclusive float range with Min <= Max.
type FloatRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// CountConfig drives a geometric draw: number of failures before the first
// success at Probability, clamped to [Min,Max].
type CountConfig struct {
	Probability float64 `json:"probability"`
	Min         int     `json:"min"`
	Max         int     `json:"max"`
}

// EccentricityStyle selects the orbit shape regime.
type EccentricityStyle string

const (
	// EccentricityCircular keeps every orbit circular; the elliptical
	// extension stays at its defaults.
	EccentricityCircular EccentricityStyle = "circular"
	// EccentricityMixed samples eccentricities in [0,0.3].
	EccentricityMixed EccentricityStyle = "mixed"
	// EccentricityEccentric samples eccentricities in [0.1,0.7].
	EccentricityEccentric EccentricityStyle = "eccentric"
)

type MassConfig struct {
	Mu             float64 `json:"mu"`
	Sigma          float64 `json:"sigma"`
	StarScale      float64 `json:"star_scale"`
	PlanetScale    float64 `json:"planet_scale"`
	MoonScale      float64 `json:"moon_scale"`
	IcyProbability float64 `json:"icy_probability"`
}

type OrbitConfig struct {
	BaseDistance      float64 `json:"base_distance"`
	GrowthFactor      float64 `json:"growth_factor"`
	Jitter            float64 `json:"jitter"`
	SpeedConstant     float64 `json:"speed_constant"`
	CompanionDistance float64 `json:"companion_distance"`
}

type EccentricityConfig struct {
	Style          EccentricityStyle `json:"style"`
	MaxRotationDeg float64           `json:"max_rotation_deg"`
	MaxOffset      float64           `json:"max_offset"`
}

type BeltConfig struct {
	Enabled           bool     `json:"enabled"`
	MaxPerSystem      int      `json:"max_per_system"`
	Probability       float64  `json:"probability"`
	KuiperProbability float64  `json:"kuiper_probability"`
	ParticleCount     IntRange `json:"particle_count"`
}

type RingConfig struct {
	Enabled     bool    `json:"enabled"`
	Probability float64 `json:"probability"`
}

type CometConfig struct {
	Enabled      bool    `json:"enabled"`
	Probability  float64 `json:"probability"`
	MaxPerSystem int     `json:"max_per_system"`
}

type BlackHoleConfig struct {
	Enabled         bool       `json:"enabled"`
	Probability     float64    `json:"probability"`
	ClassWeights    [3]float64 `json:"class_weights"`
	DiskProbability float64    `json:"disk_probability"`
	JetProbability  float64    `json:"jet_probability"`
}

type LagrangeConfig struct {
	Enabled           bool     `json:"enabled"`
	TrojanProbability float64  `json:"trojan_probability"`
	TrojanCount       IntRange `json:"trojan_count"`
	TrojanSpreadDeg   float64  `json:"trojan_spread_deg"`
}

type DiskConfig struct {
	Enabled     bool    `json:"enabled"`
	Probability float64 `json:"probability"`
}

type NebulaConfig struct {
	Enabled  bool       `json:"enabled"`
	Count    IntRange   `json:"count"`
	Distance FloatRange `json:"distance"`
}

type RogueConfig struct {
	Enabled     bool    `json:"enabled"`
	Probability float64 `json:"probability"`
}

type GroupConfig struct {
	Enabled         bool    `json:"enabled"`
	MinGroups       int     `json:"min_groups"`
	MaxGroups       int     `json:"max_groups"`
	NestProbability float64 `json:"nest_probability"`
}

// GenerationConfig is the full configuration record for one generation run.
// All probabilities must lie in [0,1] and all ranges must satisfy min <= max;
// Validate rejects anything else before sampling begins.
type GenerationConfig struct {
	Seed string `json:"seed"`

	MinSystems        int        `json:"min_systems"`
	MaxSystems        int        `json:"max_systems"`
	MaxStarsPerSystem int        `json:"max_stars_per_system"`
	StarProbabilities [3]float64 `json:"star_probabilities"`

	Planets CountConfig `json:"planets"`
	Moons   CountConfig `json:"moons"`

	Mass        MassConfig  `json:"mass"`
	RadiusPower float64     `json:"radius_power"`
	Orbit       OrbitConfig `json:"orbit"`

	Eccentricity EccentricityConfig `json:"eccentricity"`

	Belts        BeltConfig      `json:"belts"`
	Rings        RingConfig      `json:"rings"`
	Comets       CometConfig     `json:"comets"`
	BlackHoles   BlackHoleConfig `json:"black_holes"`
	Lagrange     LagrangeConfig  `json:"lagrange"`
	Disks        DiskConfig      `json:"disks"`
	Nebulae      NebulaConfig    `json:"nebulae"`
	RoguePlanets RogueConfig     `json:"rogue_planets"`
	Groups       GroupConfig     `json:"groups"`
}

// DefaultConfig returns the configuration used when a request supplies no
// overrides. Star multiplicity weights follow the observed single/binary/
// trinary split.
func DefaultConfig() GenerationConfig {
	return GenerationConfig{
		MinSystems:        1,
		MaxSystems:        3,
		MaxStarsPerSystem: 3,
		StarProbabilities: [3]float64{0.5, 0.4, 0.1},

		Planets: CountConfig{Probability: 0.25, Min: 0, Max: 10},
		Moons:   CountConfig{Probability: 0.45, Min: 0, Max: 5},

		Mass: MassConfig{
			Mu:             0,
			Sigma:          1,
			StarScale:      100,
			PlanetScale:    10,
			MoonScale:      1,
			IcyProbability: 0.25,
		},
		RadiusPower: 0.4,
		Orbit: OrbitConfig{
			BaseDistance:      40,
			GrowthFactor:      1.6,
			Jitter:            4,
			SpeedConstant:     50,
			CompanionDistance: 25,
		},

		Eccentricity: EccentricityConfig{
			Style:          EccentricityCircular,
			MaxRotationDeg: 25,
			MaxOffset:      10,
		},

		Belts: BeltConfig{
			Enabled:           true,
			MaxPerSystem:      1,
			Probability:       0.5,
			KuiperProbability: 0.4,
			ParticleCount:     IntRange{Min: 600, Max: 2400},
		},
		Rings:  RingConfig{Enabled: true, Probability: 0.18},
		Comets: CometConfig{Enabled: true, Probability: 0.5, MaxPerSystem: 3},
		BlackHoles: BlackHoleConfig{
			Enabled:         false,
			Probability:     0.1,
			ClassWeights:    [3]float64{0.85, 0.12, 0.03},
			DiskProbability: 0.7,
			JetProbability:  0.4,
		},
		Lagrange: LagrangeConfig{
			Enabled:           false,
			TrojanProbability: 0.5,
			TrojanCount:       IntRange{Min: 2, Max: 8},
			TrojanSpreadDeg:   4,
		},
		Disks: DiskConfig{Enabled: false, Probability: 0.3},
		Nebulae: NebulaConfig{
			Enabled:  true,
			Count:    IntRange{Min: 0, Max: 2},
			Distance: FloatRange{Min: 800, Max: 2000},
		},
		RoguePlanets: RogueConfig{Enabled: false, Probability: 0.1},
		Groups: GroupConfig{
			Enabled:         true,
			MinGroups:       1,
			MaxGroups:       3,
			NestProbability: 0.3,
		},
	}
}

const starWeightTolerance = 1e-6

// Validate checks every range, probability and weight before any sampling
// occurs. It returns a validation error describing the first violation, so
// generation can abort without producing anything partial.
//
// Star multiplicity weights must be non-negative with a positive sum; a sum
// that deviates from 1 beyond the tolerance is renormalized in place rather
// than rejected.
func (c *GenerationConfig) Validate() error {
	if c.MinSystems < 1 {
		return errors.Validationf("min_systems must be at least 1, got %d", c.MinSystems)
	}
	if c.MaxSystems < c.MinSystems {
		return errors.Validationf("max_systems %d must not be below min_systems %d", c.MaxSystems, c.MinSystems)
	}
	if c.MaxStarsPerSystem < 1 || c.MaxStarsPerSystem > 3 {
		return errors.Validationf("max_stars_per_system must be in [1,3], got %d", c.MaxStarsPerSystem)
	}

	sum := 0.0
	for i, w := range c.StarProbabilities {
		if w < 0 || math.IsNaN(w) {
			return errors.Validationf("star_probabilities[%d] must be non-negative, got %v", i, w)
		}
		sum += w
	}
	if sum <= 0 {
		return errors.Validation("star_probabilities must have a positive sum")
	}
	if math.Abs(sum-1) > starWeightTolerance {
		for i := range c.StarProbabilities {
			c.StarProbabilities[i] /= sum
		}
	}

	if err := validateCount("planets", c.Planets); err != nil {
		return err
	}
	if err := validateCount("moons", c.Moons); err != nil {
		return err
	}

	if c.Mass.Sigma < 0 {
		return errors.Validationf("mass.sigma must be non-negative, got %v", c.Mass.Sigma)
	}
	if c.Mass.StarScale <= 0 || c.Mass.PlanetScale <= 0 || c.Mass.MoonScale <= 0 {
		return errors.Validation("mass type scales must be positive")
	}
	if err := validateProbability("mass.icy_probability", c.Mass.IcyProbability); err != nil {
		return err
	}
	if c.RadiusPower <= 0 {
		return errors.Validationf("radius_power must be positive, got %v", c.RadiusPower)
	}

	if c.Orbit.BaseDistance <= 0 {
		return errors.Validationf("orbit.base_distance must be positive, got %v", c.Orbit.BaseDistance)
	}
	if c.Orbit.GrowthFactor <= 1 {
		return errors.Validationf("orbit.growth_factor must exceed 1, got %v", c.Orbit.GrowthFactor)
	}
	if c.Orbit.Jitter < 0 {
		return errors.Validationf("orbit.jitter must be non-negative, got %v", c.Orbit.Jitter)
	}
	if c.Orbit.SpeedConstant <= 0 {
		return errors.Validationf("orbit.speed_constant must be positive, got %v", c.Orbit.SpeedConstant)
	}
	if c.Orbit.CompanionDistance <= 0 {
		return errors.Validationf("orbit.companion_distance must be positive, got %v", c.Orbit.CompanionDistance)
	}

	switch c.Eccentricity.Style {
	case EccentricityCircular, EccentricityMixed, EccentricityEccentric:
	default:
		return errors.Validationf("eccentricity.style %q is not one of circular, mixed, eccentric", c.Eccentricity.Style)
	}
	if c.Eccentricity.MaxRotationDeg < 0 {
		return errors.Validationf("eccentricity.max_rotation_deg must be non-negative, got %v", c.Eccentricity.MaxRotationDeg)
	}
	if c.Eccentricity.MaxOffset < 0 {
		return errors.Validationf("eccentricity.max_offset must be non-negative, got %v", c.Eccentricity.MaxOffset)
	}

	if c.Belts.MaxPerSystem < 0 {
		return errors.Validationf("belts.max_per_system must be non-negative, got %d", c.Belts.MaxPerSystem)
	}
	if err := validateProbability("belts.probability", c.Belts.Probability); err != nil {
		return err
	}
	if err := validateProbability("belts.kuiper_probability", c.Belts.KuiperProbability); err != nil {
		return err
	}
	if err := validateIntRange("belts.particle_count", c.Belts.ParticleCount); err != nil {
		return err
	}

	if err := validateProbability("rings.probability", c.Rings.Probability); err != nil {
		return err
	}

	if err := validateProbability("comets.probability", c.Comets.Probability); err != nil {
		return err
	}
	if c.Comets.MaxPerSystem < 0 {
		return errors.Validationf("comets.max_per_system must be non-negative, got %d", c.Comets.MaxPerSystem)
	}

	if err := validateProbability("black_holes.probability", c.BlackHoles.Probability); err != nil {
		return err
	}
	bhSum := 0.0
	for i, w := range c.BlackHoles.ClassWeights {
		if w < 0 {
			return errors.Validationf("black_holes.class_weights[%d] must be non-negative, got %v", i, w)
		}
		bhSum += w
	}
	if c.BlackHoles.Enabled && bhSum <= 0 {
		return errors.Validation("black_holes.class_weights must have a positive sum")
	}
	if err := validateProbability("black_holes.disk_probability", c.BlackHoles.DiskProbability); err != nil {
		return err
	}
	if err := validateProbability("black_holes.jet_probability", c.BlackHoles.JetProbability); err != nil {
		return err
	}

	if err := validateProbability("lagrange.trojan_probability", c.Lagrange.TrojanProbability); err != nil {
		return err
	}
	if err := validateIntRange("lagrange.trojan_count", c.Lagrange.TrojanCount); err != nil {
		return err
	}
	if c.Lagrange.TrojanSpreadDeg < 0 {
		return errors.Validationf("lagrange.trojan_spread_deg must be non-negative, got %v", c.Lagrange.TrojanSpreadDeg)
	}

	if err := validateProbability("disks.probability", c.Disks.Probability); err != nil {
		return err
	}

	if err := validateIntRange("nebulae.count", c.Nebulae.Count); err != nil {
		return err
	}
	if err := validateFloatRange("nebulae.distance", c.Nebulae.Distance); err != nil {
		return err
	}

	if err := validateProbability("rogue_planets.probability", c.RoguePlanets.Probability); err != nil {
		return err
	}

	if c.Groups.Enabled {
		if c.Groups.MinGroups < 1 {
			return errors.Validationf("groups.min_groups must be at least 1, got %d", c.Groups.MinGroups)
		}
		if c.Groups.MaxGroups < c.Groups.MinGroups {
			return errors.Validationf("groups.max_groups %d must not be below groups.min_groups %d", c.Groups.MaxGroups, c.Groups.MinGroups)
		}
	}
	if err := validateProbability("groups.nest_probability", c.Groups.NestProbability); err != nil {
		return err
	}

	return nil
}

func validateProbability(name string, p float64) error {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return errors.Validationf("%s must be in [0,1], got %v", name, p)
	}
	return nil
}

func validateCount(name string, c CountConfig) error {
	if err := validateProbability(name+".probability", c.Probability); err != nil {
		return err
	}
	if c.Min < 0 {
		return errors.Validationf("%s.min must be non-negative, got %d", name, c.Min)
	}
	if c.Max < c.Min {
		return errors.Validationf("%s.max %d must not be below %s.min %d", name, c.Max, name, c.Min)
	}
	return nil
}

func validateIntRange(name string, r IntRange) error {
	if r.Min < 0 {
		return errors.Validationf("%s.min must be non-negative, got %d", name, r.Min)
	}
	if r.Max < r.Min {
		return errors.Validationf("%s.max %d must not be below %s.min %d", name, r.Max, name, r.Min)
	}
	return nil
}

func validateFloatRange(name string, r FloatRange) error {
	if r.Max < r.Min {
		return errors.Validationf("%s.max %v must not be below %s.min %v", name, r.Max, name, r.Min)
	}
	return nil
}
