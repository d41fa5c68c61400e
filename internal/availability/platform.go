package availability

import (
	"github.com/availgen/availgen/internal/target"
	"github.com/availgen/availgen/internal/version"
)

// Platform is the availability record extracted for one platform of a
// declaration. Records arrive from the extraction boundary already
// validated; this package treats them as plain values.
//
// When Unavailable is set the milestones are ignored during evaluation:
// the declaration is never usable on the platform regardless of the
// deployment window.
type Platform struct {
	// Name is the platform identifier, e.g. "macos" or "ios".
	Name string `json:"platform" yaml:"platform"`

	// Introduced is the version at which the API became available. Absent
	// means the API existed since the beginning of time.
	Introduced *version.Version `json:"introduced,omitempty" yaml:"introduced,omitempty"`

	// Deprecated is the version at which the API began warning. Absent
	// means it never deprecates.
	Deprecated *version.Version `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`

	// Obsoleted is the version at which the API stopped being available.
	// Absent means it is never removed.
	Obsoleted *version.Version `json:"obsoleted,omitempty" yaml:"obsoleted,omitempty"`

	// Unavailable marks the API as never usable on this platform.
	Unavailable bool `json:"unavailable,omitempty" yaml:"unavailable,omitempty"`
}

// DeprecatedOrObsoleted returns the effective end of the API's validity
// interval on this platform: the earlier of the deprecated and obsoleted
// milestones when both are recorded, whichever is recorded when only one
// is, and nil when neither is.
func (p *Platform) DeprecatedOrObsoleted() *version.Version {
	return earlierOf(p.Deprecated, p.Obsoleted)
}

// HasData reports whether the record carries any availability information:
// a milestone or the unavailable flag. Records without data never appear in
// rendered artifacts.
func (p *Platform) HasData() bool {
	if p == nil {
		return false
	}
	return p.Unavailable || p.Introduced != nil || p.Deprecated != nil || p.Obsoleted != nil
}

// Evaluate resolves the record against one platform's deployment window.
//
// The API's validity interval runs from its introduced version (0.0.0 when
// absent) up to, exclusively, its deprecation or obsoletion (forever when
// absent). The verdict is All when the interval covers the whole window,
// Some when interval and window overlap without the interval covering it,
// and None when they are disjoint or the record is marked unavailable.
func (p *Platform) Evaluate(w target.Window) Availability {
	if p.Unavailable {
		return None
	}

	apiLow := version.LowerFrom(p.Introduced)
	apiHigh := version.UpperFrom(p.DeprecatedOrObsoleted())
	confLow := version.LowerFrom(w.Min)
	confHigh := version.UpperFrom(w.Max)

	switch {
	case apiLow.AtMost(confLow) && apiHigh.Exceeds(confHigh):
		return All
	case confHigh.OnOrAfter(apiLow.Version()) && apiHigh.After(confLow.Version()):
		return Some
	default:
		return None
	}
}

// MergePlatforms combines two records describing the same logical symbol on
// one platform, e.g. a class and a category extending it. Either nil record
// yields the other; both nil yields nil.
//
// The merged validity interval is the intersection of the two intervals and
// the restrictions are unioned: when both records carry an introduced
// version the later one wins, while a record without one imposes no lower
// bound and the merged record carries none either; the earlier deprecation
// and the earlier obsoletion win; the unavailable flags are ORed. The name
// comes from whichever record carries one.
func MergePlatforms(a, b *Platform) *Platform {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}

	m := &Platform{
		Name:        a.Name,
		Deprecated:  earlierOf(a.Deprecated, b.Deprecated),
		Obsoleted:   earlierOf(a.Obsoleted, b.Obsoleted),
		Unavailable: a.Unavailable || b.Unavailable,
	}
	if m.Name == "" {
		m.Name = b.Name
	}
	if a.Introduced != nil && b.Introduced != nil {
		m.Introduced = laterOf(a.Introduced, b.Introduced)
	}
	return m
}

// earlierOf returns a copy of the earlier of two optional versions, the
// present one when only one is present, and nil when neither is.
func earlierOf(a, b *version.Version) *version.Version {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return copyOf(b)
	case b == nil:
		return copyOf(a)
	case b.Compare(*a) < 0:
		return copyOf(b)
	default:
		return copyOf(a)
	}
}

// laterOf returns a copy of the later of two versions. Both must be present.
func laterOf(a, b *version.Version) *version.Version {
	if a.Compare(*b) >= 0 {
		return copyOf(a)
	}
	return copyOf(b)
}

func copyOf(v *version.Version) *version.Version {
	c := *v
	return &c
}
