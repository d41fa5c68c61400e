package declaration

import (
	"strconv"
	"strings"

	"github.com/availgen/availgen/internal/errors"
	"github.com/availgen/availgen/internal/target"
	"github.com/availgen/availgen/internal/validator"
)

// Check lints a declaration file against the configured deployment targets.
//
// Errors block artifact generation: a missing declaration name, a record
// without a platform name. Warnings flag records that will not behave the
// way the author probably expects: platforms no target window covers, and
// milestone orderings that make the validity interval empty.
func Check(f *File, targets target.Targets) *validator.Result {
	result := &validator.Result{}

	if f == nil || len(f.Decls) == 0 {
		result.Add(validator.Issue{
			Severity: validator.SeverityError,
			Message:  errors.ErrNoDeclarations.Error(),
		})
		return result
	}

	for i, d := range f.Decls {
		if strings.TrimSpace(d.Name) == "" {
			result.Add(validator.Issue{
				Severity: validator.SeverityError,
				Message:  errors.ErrMissingName.Error(),
				Context:  map[string]string{"index": strconv.Itoa(i)},
			})
		}

		seen := make(map[string]bool, len(d.Platforms))
		for _, p := range d.Platforms {
			if strings.TrimSpace(p.Name) == "" {
				result.Add(validator.Issue{
					Severity: validator.SeverityError,
					Decl:     d.Name,
					Message:  "record is missing a platform name",
				})
				continue
			}

			if seen[p.Name] {
				result.Add(validator.Issue{
					Severity: validator.SeverityInfo,
					Decl:     d.Name,
					Platform: p.Name,
					Message:  "duplicate record for this platform; records merge before resolution",
				})
			}
			seen[p.Name] = true

			if !targets.Known(p.Name) {
				result.Add(validator.Issue{
					Severity: validator.SeverityWarning,
					Decl:     d.Name,
					Platform: p.Name,
					Message:  errors.ErrUnknownPlatform.Error() + "; record does not constrain resolution",
				})
			}

			if p.Introduced != nil && p.Deprecated != nil && p.Introduced.Compare(*p.Deprecated) > 0 {
				result.Add(validator.Issue{
					Severity: validator.SeverityWarning,
					Decl:     d.Name,
					Platform: p.Name,
					Message:  "introduced after deprecated; the record can never be satisfied",
					Value:    p.Introduced.String() + " > " + p.Deprecated.String(),
				})
			}

			if p.Introduced != nil && p.Obsoleted != nil && p.Introduced.Compare(*p.Obsoleted) > 0 {
				result.Add(validator.Issue{
					Severity: validator.SeverityWarning,
					Decl:     d.Name,
					Platform: p.Name,
					Message:  "introduced after obsoleted; the record can never be satisfied",
					Value:    p.Introduced.String() + " > " + p.Obsoleted.String(),
				})
			}

			if p.Unavailable && (p.Introduced != nil || p.Deprecated != nil || p.Obsoleted != nil) {
				result.Add(validator.Issue{
					Severity: validator.SeverityInfo,
					Decl:     d.Name,
					Platform: p.Name,
					Message:  "milestones are ignored on an unavailable record",
				})
			}
		}

		if !d.AlwaysDeprecated && !d.AlwaysUnavailable && len(d.Platforms) == 0 {
			result.AddInfo(d.Name, "has no availability data", nil)
		}
	}

	return result
}
