package version

// LowerBound is the lower end of a validity interval. A bound is either
// anchored at a version or unbounded; an unbounded lower bound means no
// start was recorded and behaves as version 0.0.0. The zero value is
// unbounded.
//
// Lower and upper bounds deliberately do not share a comparison helper:
// an absent lower bound collapses downwards to 0.0.0 while an absent upper
// bound is greater than everything, and a single optional-version compare
// would have to pick one of the two conventions.
type LowerBound struct {
	v       Version
	bounded bool
}

// LowerAt returns a lower bound anchored at v.
func LowerAt(v Version) LowerBound {
	return LowerBound{v: v, bounded: true}
}

// LowerFrom builds a lower bound from an optional version. A nil version
// yields the unbounded bound.
func LowerFrom(v *Version) LowerBound {
	if v == nil {
		return LowerBound{}
	}
	return LowerAt(*v)
}

// Bounded reports whether the bound is anchored at a version.
func (b LowerBound) Bounded() bool {
	return b.bounded
}

// Version materializes the bound: the anchor version, or 0.0.0 when
// unbounded.
func (b LowerBound) Version() Version {
	if !b.bounded {
		return Version{}
	}
	return b.v
}

// AtMost reports whether b starts no later than o.
func (b LowerBound) AtMost(o LowerBound) bool {
	return b.Version().Compare(o.Version()) <= 0
}

// UpperBound is the upper end of a validity interval. An unbounded upper
// bound means the interval never ends and is greater than every version and
// every other upper bound. The zero value is unbounded.
type UpperBound struct {
	v       Version
	bounded bool
}

// UpperAt returns an upper bound anchored at v.
func UpperAt(v Version) UpperBound {
	return UpperBound{v: v, bounded: true}
}

// UpperFrom builds an upper bound from an optional version. A nil version
// yields the unbounded bound.
func UpperFrom(v *Version) UpperBound {
	if v == nil {
		return UpperBound{}
	}
	return UpperAt(*v)
}

// Bounded reports whether the bound is anchored at a version.
func (b UpperBound) Bounded() bool {
	return b.bounded
}

// Bound returns the anchor version and whether the bound is anchored. An
// unbounded upper bound has no version to return: it stands for infinity,
// never for 0.0.0.
func (b UpperBound) Bound() (Version, bool) {
	return b.v, b.bounded
}

// Exceeds reports whether b is strictly greater than o. The receiver is
// tested first: an unbounded receiver exceeds everything, including another
// unbounded bound, while a bounded receiver never exceeds an unbounded o.
func (b UpperBound) Exceeds(o UpperBound) bool {
	if !b.bounded {
		return true
	}
	if !o.bounded {
		return false
	}
	return b.v.Compare(o.v) > 0
}

// After reports whether b is strictly greater than the version v. An
// unbounded bound is after every version.
func (b UpperBound) After(v Version) bool {
	if !b.bounded {
		return true
	}
	return b.v.Compare(v) > 0
}

// OnOrAfter reports whether b is at or above the version v. An unbounded
// bound is on or after every version.
func (b UpperBound) OnOrAfter(v Version) bool {
	if !b.bounded {
		return true
	}
	return v.Compare(b.v) <= 0
}
