package universe

import "fmt"

// Name and palette tables. Star colors follow the stellar spectral sequence
// from hottest to coolest.

var systemNames = []string{
	"Altair", "Vega", "Sirius", "Arcturus", "Capella", "Rigel", "Procyon",
	"Deneb", "Antares", "Spica", "Pollux", "Fomalhaut", "Regulus", "Castor",
}

var starSuffixes = []string{"A", "B", "C"}

var romanNumerals = []string{"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X"}

var moonSuffixes = []string{"a", "b", "c", "d", "e", "f", "g", "h"}

var groupNames = []string{
	"Alpha", "Beta", "Gamma", "Delta", "Epsilon", "Zeta", "Eta", "Theta",
	"Iota", "Kappa", "Lambda", "Sigma",
}

var nebulaNames = []string{
	"Carina", "Orion", "Eagle", "Lagoon", "Trifid", "Rosette", "Helix", "Veil",
}

// starPalette maps mass bins (after star scaling) to spectral-like colors,
// heaviest first.
var starPalette = []struct {
	minMass float64
	color   string
}{
	{800, "#9bb0ff"}, // O, blue
	{400, "#aabfff"}, // B
	{250, "#cad7ff"}, // A
	{150, "#f8f7ff"}, // F
	{90, "#fff4ea"},  // G
	{40, "#ffd2a1"},  // K
	{0, "#ffcc6f"},   // M, red
}

// planetPalette maps mass bins to planet colors, heaviest first.
var planetPalette = []struct {
	minMass float64
	color   string
}{
	{60, "#d8ca9d"}, // gas giant tan
	{25, "#c3a06b"}, // sub-giant ochre
	{10, "#b0674c"}, // rocky red
	{4, "#8a9a5b"},  // temperate green
	{0, "#9c9c9c"},  // barren grey
}

var moonColors = []string{"#b5b5b5", "#8f8f8f", "#a89f91", "#c9c9c9"}

var icyColors = []string{"#cfe8ef", "#bfe3f2", "#e0f4ff"}

var rockyBeltColors = []string{"#8a7f73", "#6e655b", "#9c9184"}

var icyBeltColors = []string{"#bfe3f2", "#cfe8ef", "#9fd0e8"}

var nebulaColors = []string{"#b86bff", "#5d9cec", "#ec5d8b", "#64e0c8", "#f2a65e"}

const (
	cometColor     = "#d9fbff"
	cometTailColor = "#aeeaff"
	diskColor      = "#caa472"
	blackHoleColor = "#05060a"
	trojanColor    = "#7d7468"
)

func systemName(index int) string {
	base := systemNames[index%len(systemNames)]
	if index < len(systemNames) {
		return base
	}
	return fmt.Sprintf("%s %d", base, index/len(systemNames)+1)
}

func starName(system string, index int) string {
	if index < len(starSuffixes) {
		return system + " " + starSuffixes[index]
	}
	return fmt.Sprintf("%s %d", system, index+1)
}

func planetName(system string, index int) string {
	if index < len(romanNumerals) {
		return system + " " + romanNumerals[index]
	}
	return fmt.Sprintf("%s %d", system, index+1)
}

func moonName(planet string, index int) string {
	if index < len(moonSuffixes) {
		return planet + moonSuffixes[index]
	}
	return fmt.Sprintf("%s-%d", planet, index+1)
}

func groupName(index int) string {
	base := groupNames[index%len(groupNames)]
	if index < len(groupNames) {
		return base + " Cluster"
	}
	return fmt.Sprintf("%s Cluster %d", base, index/len(groupNames)+1)
}

func nebulaName(index int) string {
	base := nebulaNames[index%len(nebulaNames)]
	if index < len(nebulaNames) {
		return base + " Nebula"
	}
	return fmt.Sprintf("%s Nebula %d", base, index/len(nebulaNames)+1)
}

// starColor buckets a star mass into the spectral palette.
func starColor(mass float64) string {
	for _, bin := range starPalette {
		if mass >= bin.minMass {
			return bin.color
		}
	}
	return starPalette[len(starPalette)-1].color
}

// planetColor buckets a planet mass into the planet palette; icy bodies use
// the icy palette instead.
func planetColor(mass float64, icy bool, pick int) string {
	if icy {
		return icyColors[pick%len(icyColors)]
	}
	for _, bin := range planetPalette {
		if mass >= bin.minMass {
			return bin.color
		}
	}
	return planetPalette[len(planetPalette)-1].color
}

func moonColor(icy bool, pick int) string {
	if icy {
		return icyColors[pick%len(icyColors)]
	}
	return moonColors[pick%len(moonColors)]
}
