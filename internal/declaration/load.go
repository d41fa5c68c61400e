package declaration

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/availgen/availgen/internal/errors"
	"github.com/availgen/availgen/pkg/fileutil"
)

// Load reads and decodes a declaration file. The format is chosen by the
// file extension: .yaml, .yml or .json.
func Load(path string) (*File, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %q", path)
	}

	f, err := Decode(data, filepath.Ext(path))
	if err != nil {
		return nil, errors.Wrapf(err, "loading %q", path)
	}

	if len(f.Decls) == 0 {
		return nil, errors.Wrapf(errors.ErrNoDeclarations, "in %q", path)
	}

	return f, nil
}

// Decode parses declaration data in the format implied by ext. A file
// with no declarations decodes cleanly; callers decide whether that is
// an error.
func Decode(data []byte, ext string) (*File, error) {
	var f File

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(err, "decoding YAML declarations")
		}
	case ".json":
		if err := json.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(err, "decoding JSON declarations")
		}
	default:
		return nil, errors.Wrapf(errors.ErrUnsupportedFormat, "extension %q", ext)
	}

	return &f, nil
}
