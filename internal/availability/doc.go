// Package availability resolves per-platform API version metadata against
// configured deployment windows and renders the textual artifacts a code
// generator embeds: doc-comment lines, availability attribute annotations
// and runtime-check call expressions.
//
// # Model
//
// A [Platform] record carries the milestones extracted from one declaration
// for one platform: the versions at which the API was introduced, deprecated
// and obsoleted, plus an unconditional unavailable flag. Absent milestones
// are meaningful: a missing introduced version means the API existed since
// the beginning of time, and a missing deprecation means it lives forever.
// Neither is ever collapsed to a finite sentinel. The directional bound
// types in the version package carry that distinction.
//
// An [API] aggregates the records of one logical API across platforms and
// declarations (a class and a category extending it merge into one API) and
// holds the [Availability] verdict resolved once at construction:
//
//   - [None]: never usable within the configured windows
//   - [Some]: usable on part of a window or on only some platforms; callers
//     must emit a runtime guard
//   - [All]: usable throughout every constrained window
//
// # Merging
//
// Records merge pessimistically: the validity interval of a merged record is
// the intersection of its parents' intervals, and restriction flags are
// unioned. Verdicts merge through a three-valued lattice where agreement is
// preserved and disagreement collapses to [Some]. Both operations are
// commutative and associative with an absent operand as identity, so
// declarations and platforms may be folded in any order.
//
// All values in this package are immutable after construction and safe for
// concurrent use.
package availability
