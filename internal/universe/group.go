package universe

// GroupChildType discriminates the members of a group.
type GroupChildType string

const (
	// GroupChildSystem references a root body (the root star of a system).
	GroupChildSystem GroupChildType = "system"
	// GroupChildGroup references a nested group.
	GroupChildGroup GroupChildType = "group"
)

// GroupChild is one ordered member of a group.
type GroupChild struct {
	Type GroupChildType `json:"type"`
	ID   string         `json:"id"`
}

// Position is a point in universe space.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Group is a named spatial grouping of root systems and nested groups.
// Group parent/child links must form an acyclic forest.
type Group struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	ParentGroupID *string      `json:"parent_group_id"`
	Children      []GroupChild `json:"children"`
	Position      *Position    `json:"position,omitempty"`
}
