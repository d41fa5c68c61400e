// Package version defines the ordered version triple used by availability
// records and deployment windows, together with directional bound types that
// keep the two meanings of an absent version apart in the type system: an
// absent lower bound means "since the beginning of time", an absent upper
// bound means "forever".
package version

import "fmt"

// Version is an ordered (major, minor, patch) triple. The zero value is
// 0.0.0, the lowest version. Versions are immutable values with a total
// lexicographic order by major, then minor, then patch.
type Version struct {
	Major uint64 `json:"major" yaml:"major" mapstructure:"major"`
	Minor uint64 `json:"minor" yaml:"minor" mapstructure:"minor"`
	Patch uint64 `json:"patch,omitempty" yaml:"patch,omitempty" mapstructure:"patch"`
}

// New returns the version with the given components.
func New(major, minor, patch uint64) Version {
	return Version{Major: major, Minor: minor, Patch: patch}
}

// Compare returns -1 when v orders before o, 0 when they are equal and +1
// when v orders after o.
func (v Version) Compare(o Version) int {
	switch {
	case v.Major != o.Major:
		return order(v.Major, o.Major)
	case v.Minor != o.Minor:
		return order(v.Minor, o.Minor)
	case v.Patch != o.Patch:
		return order(v.Patch, o.Patch)
	default:
		return 0
	}
}

// Compare orders a against b. It is the function form of [Version.Compare].
func Compare(a, b Version) int {
	return a.Compare(b)
}

func order(a, b uint64) int {
	if a < b {
		return -1
	}
	return 1
}

// String renders the version as "major.minor", appending ".patch" only when
// the patch component is non-zero. This is the form embedded in generated
// attributes, doc lines and runtime checks.
func (v Version) String() string {
	if v.Patch != 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
