package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/availgen/availgen/internal/errors"
	"github.com/fatih/color"
)

// Format selects how a Report is rendered.
type Format string

const (
	// FormatText renders colored sections for a terminal.
	FormatText Format = "text"
	// FormatJSON renders the raw result for tooling.
	FormatJSON Format = "json"
)

// Reporter renders validation results.
type Reporter struct {
	out    io.Writer
	format Format
}

// NewReporter creates a Reporter writing to out in the given format.
func NewReporter(out io.Writer, format Format) *Reporter {
	return &Reporter{out: out, format: format}
}

// Report writes the validation result. Nil results produce no output.
func (r *Reporter) Report(result *Result) error {
	if result == nil {
		return nil
	}
	if r.format == FormatJSON {
		enc := json.NewEncoder(r.out)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(result), "encoding JSON report")
	}
	return r.reportText(result)
}

// reportText prints a summary line followed by one section per severity.
// Info-level issues never fail validation; they render as notes either way.
func (r *Reporter) reportText(result *Result) error {
	errs := result.Errors()
	warns := result.Warnings()
	infos := result.Infos()

	if len(errs) == 0 && len(warns) == 0 {
		fmt.Fprintln(r.out, color.GreenString("✓ Validation passed"))
		r.printSection("Notes:", infos, color.FgCyan)
		return nil
	}

	var summary []string
	if len(errs) > 0 {
		summary = append(summary, color.RedString("%d error(s)", len(errs)))
	}
	if len(warns) > 0 {
		summary = append(summary, color.YellowString("%d warning(s)", len(warns)))
	}
	fmt.Fprintf(r.out, "Validation failed: %s\n\n", strings.Join(summary, ", "))

	r.printSection("Errors:", errs, color.FgRed)
	r.printSection("Warnings:", warns, color.FgYellow)
	r.printSection("Notes:", infos, color.FgCyan)
	return nil
}

func (r *Reporter) printSection(title string, issues []Issue, c color.Attribute) {
	if len(issues) == 0 {
		return
	}
	fmt.Fprintln(r.out, title)
	for _, i := range issues {
		r.printIssue(i, c)
	}
	fmt.Fprintln(r.out)
}

// printIssue renders one bullet: • decl: platform: message (context) [value]
func (r *Reporter) printIssue(i Issue, c color.Attribute) {
	paint := color.New(c).SprintFunc()
	dim := color.New(color.FgHiBlack)

	fmt.Fprint(r.out, "  • ")
	if i.Decl != "" {
		fmt.Fprintf(r.out, "%s: ", paint(i.Decl))
	}
	if i.Platform != "" {
		fmt.Fprintf(r.out, "%s: ", i.Platform)
	}
	fmt.Fprint(r.out, i.Message)

	if len(i.Context) > 0 {
		pairs := make([]string, 0, len(i.Context))
		for k, v := range i.Context {
			pairs = append(pairs, k+"="+v)
		}
		sort.Strings(pairs)
		fmt.Fprintf(r.out, " %s", dim.Sprintf("(%s)", strings.Join(pairs, ", ")))
	}

	if i.Value != nil {
		val := fmt.Sprintf("%v", i.Value)
		if len(val) > 50 {
			val = val[:47] + "..."
		}
		fmt.Fprintf(r.out, " %s", dim.Sprintf("[%s]", val))
	}

	fmt.Fprintln(r.out)
}
