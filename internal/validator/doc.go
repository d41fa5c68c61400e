// Package validator carries the issue model the declaration linter reports
// through.
//
// An [Issue] locates one problem by declaration name and platform and
// classifies it by [Severity]: errors block artifact generation, warnings
// flag records that will not behave as the author expects, and infos are
// advisory notes. A [Result] accumulates issues; [Reporter] renders one as
// colored text sections or JSON.
//
//	var res validator.Result
//	res.AddError("Open", "declaration name is required", nil)
//	if res.HasErrors() {
//		// refuse to generate
//	}
package validator
