// Package fileutil provides atomic file writing and size-limited reading.
package fileutil

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/availgen/availgen/internal/errors"
)

// defaultFilePerm is the mode for files written by the marshaling helpers.
const defaultFilePerm = 0644

// AtomicWriteFile writes data to path through a temp file in the same
// directory followed by a rename, so an interrupted write never leaves a
// partially written file behind. The parent directory must already exist.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".availgen-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating the scratch file")
	}

	tmpName := tmp.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing the scratch file")
	}
	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "applying the target mode")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing the scratch file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "publishing the scratch file")
	}
	committed = true
	return nil
}

// writeMarshaled runs marshal over v and writes the result atomically with a
// trailing newline.
func writeMarshaled(path string, v any, format string, marshal func(any) ([]byte, error)) error {
	data, err := marshal(v)
	if err != nil {
		return errors.Wrapf(err, "marshaling %s", format)
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return AtomicWriteFile(path, data, defaultFilePerm)
}

// AtomicWriteJSON writes v to path as 2-space indented JSON with a trailing
// newline. The file is created with 0644 permissions.
func AtomicWriteJSON(path string, v any) error {
	return writeMarshaled(path, v, "JSON", func(v any) ([]byte, error) {
		return json.MarshalIndent(v, "", "  ")
	})
}

// AtomicWriteYAML writes v to path as YAML with a trailing newline. The file
// is created with 0644 permissions.
func AtomicWriteYAML(path string, v any) error {
	return writeMarshaled(path, v, "YAML", marshalYAML)
}

// marshalYAML converts the panic yaml.Marshal raises on unsupported types
// into an ordinary error.
func marshalYAML(v any) (data []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Newf("%v", r)
		}
	}()
	return yaml.Marshal(v)
}

// AtomicWriteTOML writes v to path as TOML with a trailing newline. The file
// is created with 0644 permissions.
func AtomicWriteTOML(path string, v any) error {
	return writeMarshaled(path, v, "TOML", func(v any) ([]byte, error) {
		return toml.Marshal(v)
	})
}
