// Package target models the configured deployment windows that availability
// is resolved against: the minimum and maximum platform versions a consumer
// compiles for, per platform.
package target

import (
	"sort"

	"github.com/availgen/availgen/internal/version"
)

// Window is the configured deployment range for one platform. Either end
// may be absent: a missing Min means no lower bound was configured, a
// missing Max means no upper bound. A window with both ends absent imposes
// no constraint and behaves exactly like an unconfigured platform.
type Window struct {
	// Min is the lowest platform version deployments target, if configured.
	Min *version.Version `json:"min,omitempty" yaml:"min,omitempty" mapstructure:"min"`

	// Max is the highest platform version deployments target, if configured.
	Max *version.Version `json:"max,omitempty" yaml:"max,omitempty" mapstructure:"max"`
}

// IsUnbounded reports whether the window constrains neither end.
func (w Window) IsUnbounded() bool {
	return w.Min == nil && w.Max == nil
}

// Targets maps each platform the generation run knows about to its
// configured deployment window. A Targets value is supplied once per run
// and read-only for the run's duration.
type Targets map[string]Window

// Platforms returns every known platform name, sorted. This is the full
// platform vocabulary of the run, including platforms whose window imposes
// no constraint.
func (t Targets) Platforms() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Configured returns the sorted names of platforms whose window constrains
// at least one end. Only these platforms participate in resolution.
func (t Targets) Configured() []string {
	names := make([]string, 0, len(t))
	for name, w := range t {
		if w.IsUnbounded() {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Window returns the constraining window for the named platform. ok is
// false when the platform is unknown or its window imposes no constraint.
func (t Targets) Window(name string) (Window, bool) {
	w, ok := t[name]
	if !ok || w.IsUnbounded() {
		return Window{}, false
	}
	return w, true
}

// Known reports whether the platform name is part of the run's vocabulary,
// constrained or not.
func (t Targets) Known(name string) bool {
	_, ok := t[name]
	return ok
}
