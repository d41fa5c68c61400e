// Package validator collects and reports issues found in declaration files.
package validator

import (
	"encoding/json"
	"fmt"

	"github.com/availgen/availgen/internal/errors"
)

// Severity grades how much an issue matters.
type Severity int

const (
	// SeverityError blocks generation.
	SeverityError Severity = iota
	// SeverityWarning flags likely mistakes that still resolve.
	SeverityWarning
	// SeverityInfo carries advisory notes.
	SeverityInfo
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return "unknown"
	}
}

// MarshalJSON encodes the severity as its string form.
func (s Severity) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a severity from its string form.
func (s *Severity) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	switch str {
	case "error":
		*s = SeverityError
	case "warning":
		*s = SeverityWarning
	case "info":
		*s = SeverityInfo
	default:
		return errors.Newf("unknown severity %q", str)
	}
	return nil
}

// Issue is one finding from a validation pass.
type Issue struct {
	// Severity grades the finding.
	Severity Severity `json:"severity"`
	// Decl identifies the declaration with the issue (optional).
	Decl string `json:"decl,omitempty"`
	// Platform identifies the availability record with the issue (optional).
	Platform string `json:"platform,omitempty"`
	// Message says what is wrong.
	Message string `json:"message"`
	// Value is the offending value, when one exists (optional).
	Value any `json:"value,omitempty"`
	// Context is additional file or position context.
	Context map[string]string `json:"context,omitempty"`
}

// Error renders the issue as a one-line message, so an Issue can travel
// as an error.
func (i Issue) Error() string {
	msg := i.Severity.String() + ": "
	if i.Decl != "" {
		msg += fmt.Sprintf("decl %q: ", i.Decl)
	}
	if i.Platform != "" {
		msg += fmt.Sprintf("platform %q: ", i.Platform)
	}
	msg += i.Message
	if i.Value != nil {
		msg += fmt.Sprintf(" (got %v)", i.Value)
	}
	return msg
}

// Result is the outcome of a validation pass.
type Result struct {
	Issues []Issue `json:"issues"`
}

// HasErrors reports whether any issue is an error.
func (r *Result) HasErrors() bool {
	return r.contains(SeverityError)
}

// HasWarnings reports whether any issue is a warning.
func (r *Result) HasWarnings() bool {
	return r.contains(SeverityWarning)
}

func (r *Result) contains(s Severity) bool {
	if r == nil {
		return false
	}
	for _, i := range r.Issues {
		if i.Severity == s {
			return true
		}
	}
	return false
}

// Add appends a fully specified issue to the result.
func (r *Result) Add(i Issue) {
	r.Issues = append(r.Issues, i)
}

// AddError adds an error issue scoped to a declaration.
func (r *Result) AddError(decl, message string, value any) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityError,
		Decl:     decl,
		Message:  message,
		Value:    value,
	})
}

// AddWarning adds a warning issue scoped to a declaration.
func (r *Result) AddWarning(decl, message string, value any) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityWarning,
		Decl:     decl,
		Message:  message,
		Value:    value,
	})
}

// AddInfo adds an info issue scoped to a declaration.
func (r *Result) AddInfo(decl, message string, value any) {
	r.Issues = append(r.Issues, Issue{
		Severity: SeverityInfo,
		Decl:     decl,
		Message:  message,
		Value:    value,
	})
}

// Errors returns the issues with SeverityError.
func (r *Result) Errors() []Issue {
	return r.filter(SeverityError)
}

// Warnings returns the issues with SeverityWarning.
func (r *Result) Warnings() []Issue {
	return r.filter(SeverityWarning)
}

// Infos returns the issues with SeverityInfo.
func (r *Result) Infos() []Issue {
	return r.filter(SeverityInfo)
}

func (r *Result) filter(s Severity) []Issue {
	if r == nil {
		return nil
	}
	var out []Issue
	for _, i := range r.Issues {
		if i.Severity == s {
			out = append(out, i)
		}
	}
	return out
}
