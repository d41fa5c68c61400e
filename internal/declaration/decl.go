package declaration

import (
	"github.com/availgen/availgen/internal/availability"
	"github.com/availgen/availgen/internal/target"
)

// Decl is one declaration extracted from an interface description: a
// function, method, property or type carrying optional availability
// records. The same name may appear more than once (overloads, a type and
// its extensions); such declarations contribute to one logical API and are
// merged during resolution.
type Decl struct {
	// Name is the logical API name the declaration contributes to.
	Name string `json:"name" yaml:"name"`

	// Kind is the declaration kind, e.g. "function" or "class".
	// Informational only.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// AlwaysDeprecated marks the declaration deprecated on every platform.
	AlwaysDeprecated bool `json:"always_deprecated,omitempty" yaml:"always_deprecated,omitempty"`

	// AlwaysUnavailable marks the declaration unusable on every platform.
	AlwaysUnavailable bool `json:"always_unavailable,omitempty" yaml:"always_unavailable,omitempty"`

	// Platforms are the per-platform availability records.
	Platforms []availability.Platform `json:"availability,omitempty" yaml:"availability,omitempty"`
}

// Availability resolves the declaration's records against the configured
// deployment targets.
func (d Decl) Availability(targets target.Targets) availability.API {
	return availability.New(d.Platforms, d.AlwaysDeprecated, d.AlwaysUnavailable, targets)
}

// File is a decoded declaration file.
type File struct {
	Decls []Decl `json:"declarations" yaml:"declarations"`
}

// Group collects every declaration sharing one logical name.
type Group struct {
	Name  string
	Decls []Decl
}

// Availability folds the group's declarations into one resolved API,
// starting from the always-available identity. A declaration without
// records adds no constraints.
func (g Group) Availability(targets target.Targets) availability.API {
	api := availability.AlwaysAvailable()
	for _, d := range g.Decls {
		api = api.Merge(d.Availability(targets))
	}
	return api
}

// Groups buckets declarations by name in first-seen order.
func Groups(decls []Decl) []Group {
	index := make(map[string]int, len(decls))
	var groups []Group
	for _, d := range decls {
		i, ok := index[d.Name]
		if !ok {
			i = len(groups)
			index[d.Name] = i
			groups = append(groups, Group{Name: d.Name})
		}
		groups[i].Decls = append(groups[i].Decls, d)
	}
	return groups
}
