package availability

import (
	"fmt"
	"strings"
)

// Renderers return their artifact together with an ok flag. Absent is
// always explicit: an empty string never stands in for "nothing to emit".

// DocComment renders the per-platform milestone lines embedded in the doc
// comment of a guarded API: one line per platform with recorded data,
// sorted by platform name, each naming the platform and listing either
// "unavailable" or the present milestones comma-joined in introduced,
// deprecated, obsoleted order. ok is false unless the resolved verdict is
// Some.
func (a API) DocComment() (string, bool) {
	if a.resolved != Some {
		return "", false
	}

	var lines []string
	for _, name := range a.PlatformNames() {
		p := a.platforms[name]
		if !p.HasData() {
			continue
		}
		lines = append(lines, docLine(p))
	}
	if len(lines) == 0 {
		return "", false
	}
	return strings.Join(lines, "\n"), true
}

func docLine(p *Platform) string {
	if p.Unavailable {
		return p.Name + ": unavailable"
	}

	var parts []string
	if p.Introduced != nil {
		parts = append(parts, "introduced "+p.Introduced.String())
	}
	if p.Deprecated != nil {
		parts = append(parts, "deprecated "+p.Deprecated.String())
	}
	if p.Obsoleted != nil {
		parts = append(parts, "obsoleted "+p.Obsoleted.String())
	}
	return p.Name + ": " + strings.Join(parts, ", ")
}

// RuntimeCheck renders the guard call expression for the API: the check
// function applied to the API name and one (platform, unavailable,
// introduced) triple per platform with recorded data, sorted by platform
// name. An absent introduced version renders as nil. ok is false when no
// platform carries data.
func (a API) RuntimeCheck(checkFn, apiName string) (string, bool) {
	var args []string
	for _, name := range a.PlatformNames() {
		p := a.platforms[name]
		if !p.HasData() {
			continue
		}

		introduced := "nil"
		if p.Introduced != nil {
			introduced = fmt.Sprintf("%q", p.Introduced.String())
		}
		args = append(args, fmt.Sprintf("(%q, %t, %s)", name, p.Unavailable, introduced))
	}
	if len(args) == 0 {
		return "", false
	}
	return fmt.Sprintf("%s(%q, %s)", checkFn, apiName, strings.Join(args, ", ")), true
}

// AttributeAnnotation renders the availability attribute for the API.
// Unconditional unavailability renders __attribute__((unavailable)) and
// takes precedence over unconditional deprecation, which renders
// __attribute__((deprecated)). Otherwise one availability clause per
// platform with recorded data is emitted, sorted by platform name and
// space-joined. ok is false when no unconditional flag is set and no
// platform carries data.
func (a API) AttributeAnnotation() (string, bool) {
	if a.alwaysUnavailable {
		return "__attribute__((unavailable))", true
	}
	if a.alwaysDeprecated {
		return "__attribute__((deprecated))", true
	}

	var clauses []string
	for _, name := range a.PlatformNames() {
		p := a.platforms[name]
		if !p.HasData() {
			continue
		}
		clauses = append(clauses, attributeClause(p))
	}
	if len(clauses) == 0 {
		return "", false
	}
	return strings.Join(clauses, " "), true
}

func attributeClause(p *Platform) string {
	if p.Unavailable {
		return fmt.Sprintf("__attribute__((availability(%s,unavailable)))", p.Name)
	}

	parts := []string{p.Name}
	if p.Introduced != nil {
		parts = append(parts, "introduced="+p.Introduced.String())
	}
	if p.Deprecated != nil {
		parts = append(parts, "deprecated="+p.Deprecated.String())
	}
	if p.Obsoleted != nil {
		parts = append(parts, "obsoleted="+p.Obsoleted.String())
	}
	return fmt.Sprintf("__attribute__((availability(%s)))", strings.Join(parts, ","))
}
