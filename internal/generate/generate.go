package generate

import (
	"context"

	"github.com/availgen/availgen/internal/config"
	"github.com/availgen/availgen/internal/declaration"
	"github.com/availgen/availgen/internal/logging"
	"github.com/availgen/availgen/internal/target"
)

// Artifact is the rendered availability for one logical API.
type Artifact struct {
	// Name is the logical API name.
	Name string `json:"name" yaml:"name" toml:"name"`

	// Kind is the declaration kind, when the declarations carry one.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty" toml:"kind,omitempty"`

	// Availability is the resolved verdict: none, some or all.
	Availability string `json:"availability" yaml:"availability" toml:"availability"`

	// Doc is the doc comment for partially available APIs.
	Doc string `json:"doc,omitempty" yaml:"doc,omitempty" toml:"doc,omitempty"`

	// Attribute is the Clang-style availability annotation.
	Attribute string `json:"attribute,omitempty" yaml:"attribute,omitempty" toml:"attribute,omitempty"`

	// RuntimeCheck is the guard call expression for APIs with records.
	RuntimeCheck string `json:"runtime_check,omitempty" yaml:"runtime_check,omitempty" toml:"runtime_check,omitempty"`
}

// Resolve renders one artifact per logical API, in declaration order.
// Declarations sharing a name are merged before rendering. An empty
// checkFn falls back to the configured default guard.
func Resolve(ctx context.Context, f *declaration.File, targets target.Targets, checkFn string) []Artifact {
	if f == nil {
		return nil
	}
	if checkFn == "" {
		checkFn = config.DefaultCheckFunction
	}

	logger := logging.FromContext(ctx)
	groups := declaration.Groups(f.Decls)
	artifacts := make([]Artifact, 0, len(groups))

	for _, g := range groups {
		api := g.Availability(targets)

		a := Artifact{
			Name:         g.Name,
			Kind:         firstKind(g.Decls),
			Availability: api.Resolved().String(),
		}
		if doc, ok := api.DocComment(); ok {
			a.Doc = doc
		}
		if attr, ok := api.AttributeAnnotation(); ok {
			a.Attribute = attr
		}
		if check, ok := api.RuntimeCheck(checkFn, g.Name); ok {
			a.RuntimeCheck = check
		}

		logger.Log(ctx, logging.LevelTrace, "resolved API",
			"name", a.Name, "availability", a.Availability)
		artifacts = append(artifacts, a)
	}

	logger.Debug("resolved declarations", "apis", len(artifacts))
	return artifacts
}

func firstKind(decls []declaration.Decl) string {
	for _, d := range decls {
		if d.Kind != "" {
			return d.Kind
		}
	}
	return ""
}
