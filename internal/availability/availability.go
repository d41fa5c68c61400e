package availability

// Availability is the three-valued verdict for an API resolved against the
// configured deployment windows.
type Availability uint8

const (
	// None means the API is never available within the configured windows.
	None Availability = iota

	// Some means the API is available on part of a window or on only some
	// platforms; uses need a runtime guard.
	Some

	// All means the API is available throughout every constrained window on
	// every constrained platform.
	All
)

// String returns the lowercase name of the verdict.
func (a Availability) String() string {
	switch a {
	case None:
		return "none"
	case Some:
		return "some"
	case All:
		return "all"
	default:
		return "unknown"
	}
}

// Merge combines an accumulated verdict with the next contribution. A nil
// accumulator is the identity and yields y; equal verdicts are preserved;
// differing verdicts collapse to Some. Merge is associative and commutative,
// so folds may visit their inputs in any order.
func Merge(x *Availability, y Availability) Availability {
	if x == nil {
		return y
	}
	if *x == y {
		return y
	}
	return Some
}
