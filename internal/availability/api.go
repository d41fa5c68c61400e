package availability

import (
	"sort"

	"github.com/availgen/availgen/internal/target"
)

// API aggregates the merged per-platform availability of one logical API,
// for example a class together with the categories extending it, and the
// verdict resolved against the configured deployment windows. Values are
// built once by New or Merge and never mutated afterwards.
type API struct {
	alwaysDeprecated  bool
	alwaysUnavailable bool
	platforms         map[string]*Platform
	targets           target.Targets
	resolved          Availability
	unconstrained     bool
}

// New builds an API from the availability records extracted for one
// declaration and resolves its verdict against the given deployment
// targets. Multiple records naming the same platform merge with
// MergePlatforms before resolution.
func New(records []Platform, alwaysDeprecated, alwaysUnavailable bool, targets target.Targets) API {
	platforms := make(map[string]*Platform, len(records))
	for i := range records {
		r := records[i]
		platforms[r.Name] = MergePlatforms(platforms[r.Name], &r)
	}

	a := API{
		alwaysDeprecated:  alwaysDeprecated,
		alwaysUnavailable: alwaysUnavailable,
		platforms:         platforms,
		targets:           targets,
	}
	a.resolved = resolve(alwaysDeprecated, alwaysUnavailable, platforms, targets)
	return a
}

// AlwaysAvailable returns the distinguished value meaning "no availability
// constraints were extracted at all". It resolves to All and is the
// identity element for Merge.
func AlwaysAvailable() API {
	return API{resolved: All, unconstrained: true}
}

// IsAlwaysAvailable reports whether the value is the AlwaysAvailable
// sentinel.
func (a API) IsAlwaysAvailable() bool {
	return a.unconstrained
}

// Resolved returns the verdict computed at construction.
func (a API) Resolved() Availability {
	return a.resolved
}

// AlwaysDeprecated reports whether the API is deprecated unconditionally,
// on every platform at every version.
func (a API) AlwaysDeprecated() bool {
	return a.alwaysDeprecated
}

// AlwaysUnavailable reports whether the API is unusable unconditionally.
func (a API) AlwaysUnavailable() bool {
	return a.alwaysUnavailable
}

// Platform returns the merged record for the named platform, if any.
func (a API) Platform(name string) (*Platform, bool) {
	p, ok := a.platforms[name]
	return p, ok
}

// PlatformNames returns the sorted names of the platforms the API carries
// records for.
func (a API) PlatformNames() []string {
	names := make([]string, 0, len(a.platforms))
	for name := range a.platforms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Merge combines two aggregates describing the same logical API. The
// AlwaysAvailable sentinel is the identity: merging with it returns the
// other operand unchanged. Otherwise the unconditional flags are ORed, the
// per-platform records merge with MergePlatforms, and the verdict is
// recomputed against the first operand's targets, falling back to the
// second's when the first carries none.
func (a API) Merge(b API) API {
	if a.unconstrained {
		return b
	}
	if b.unconstrained {
		return a
	}

	platforms := make(map[string]*Platform, len(a.platforms)+len(b.platforms))
	for name, p := range a.platforms {
		platforms[name] = p
	}
	for name, p := range b.platforms {
		platforms[name] = MergePlatforms(platforms[name], p)
	}

	targets := a.targets
	if targets == nil {
		targets = b.targets
	}

	m := API{
		alwaysDeprecated:  a.alwaysDeprecated || b.alwaysDeprecated,
		alwaysUnavailable: a.alwaysUnavailable || b.alwaysUnavailable,
		platforms:         platforms,
		targets:           targets,
	}
	m.resolved = resolve(m.alwaysDeprecated, m.alwaysUnavailable, platforms, targets)
	return m
}

// resolve computes the verdict for merged per-platform records against the
// configured deployment windows.
//
// Unconditional deprecation or unavailability forces None. Otherwise every
// platform with a constraining window contributes a verdict (its record's
// evaluation, or All when the API carries no record for that platform) and
// the contributions fold with Merge. When no window constrains anything the
// fold is empty and the verdict is All: an unconstrained run cannot rule an
// API out.
func resolve(alwaysDeprecated, alwaysUnavailable bool, platforms map[string]*Platform, targets target.Targets) Availability {
	if alwaysDeprecated || alwaysUnavailable {
		return None
	}

	var acc *Availability
	for _, name := range targets.Configured() {
		w, _ := targets.Window(name)

		v := All
		if p, ok := platforms[name]; ok && p != nil {
			v = p.Evaluate(w)
		}

		merged := Merge(acc, v)
		acc = &merged
	}

	if acc == nil {
		return All
	}
	return *acc
}
