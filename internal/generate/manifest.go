package generate

import (
	"path/filepath"
	"strings"

	"github.com/availgen/availgen/internal/errors"
	"github.com/availgen/availgen/pkg/fileutil"
)

// Manifest is the serialized form of a generation run.
type Manifest struct {
	GeneratedBy string     `json:"generated_by" yaml:"generated_by" toml:"generated_by"`
	Artifacts   []Artifact `json:"artifacts" yaml:"artifacts" toml:"artifacts"`
}

// NewManifest wraps artifacts with the tool marker.
func NewManifest(artifacts []Artifact) Manifest {
	return Manifest{
		GeneratedBy: "availgen",
		Artifacts:   artifacts,
	}
}

// WriteManifest writes the artifacts to path atomically. The format is
// taken from the format argument when non-empty, otherwise from the file
// extension: yaml, yml, json or toml.
func WriteManifest(path, format string, artifacts []Artifact) error {
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}

	m := NewManifest(artifacts)

	switch strings.ToLower(format) {
	case "yaml", "yml":
		return errors.Wrapf(fileutil.AtomicWriteYAML(path, m), "writing manifest %q", path)
	case "json":
		return errors.Wrapf(fileutil.AtomicWriteJSON(path, m), "writing manifest %q", path)
	case "toml":
		return errors.Wrapf(fileutil.AtomicWriteTOML(path, m), "writing manifest %q", path)
	default:
		return errors.Wrapf(errors.ErrUnsupportedFormat, "manifest format %q", format)
	}
}
