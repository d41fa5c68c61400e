package generate

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/availgen/availgen/internal/errors"
	"github.com/availgen/availgen/pkg/fileutil"
)

// MacroName derives the header macro for an API name: AVAILGEN_ATTRS_
// followed by the name upper-cased, with every run of characters outside
// [A-Z0-9] collapsed into a single underscore.
func MacroName(name string) string {
	var b strings.Builder
	prevSep := false
	for _, r := range strings.ToUpper(name) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevSep = false
			continue
		}
		if !prevSep && b.Len() > 0 {
			b.WriteByte('_')
			prevSep = true
		}
	}
	return "AVAILGEN_ATTRS_" + strings.TrimSuffix(b.String(), "_")
}

// WriteHeader renders the artifacts as a C header. Every API gets a macro,
// empty when the API needs no annotation, so call sites can apply it
// unconditionally. An artifact with no name is refused: the macro name
// is derived from it.
func WriteHeader(w io.Writer, artifacts []Artifact) error {
	var b strings.Builder

	b.WriteString("// Code generated by availgen. DO NOT EDIT.\n\n")
	b.WriteString("#ifndef AVAILGEN_ATTRS_H\n")
	b.WriteString("#define AVAILGEN_ATTRS_H\n")

	for i, a := range artifacts {
		if a.Name == "" {
			return errors.Wrapf(errors.ErrMissingName, "artifact %d", i)
		}
		b.WriteString("\n")
		fmt.Fprintf(&b, "/* %s: %s", a.Name, a.Availability)
		for _, line := range docLines(a.Doc) {
			b.WriteString("\n * ")
			b.WriteString(line)
		}
		b.WriteString(" */\n")

		b.WriteString("#define ")
		b.WriteString(MacroName(a.Name))
		if a.Attribute != "" {
			b.WriteString(" ")
			b.WriteString(a.Attribute)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n#endif /* AVAILGEN_ATTRS_H */\n")

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "writing header")
}

// WriteHeaderFile renders the header and writes it atomically.
func WriteHeaderFile(path string, artifacts []Artifact) error {
	var buf bytes.Buffer
	if err := WriteHeader(&buf, artifacts); err != nil {
		return err
	}
	return errors.Wrapf(fileutil.AtomicWriteFile(path, buf.Bytes(), 0644), "writing header %q", path)
}

func docLines(doc string) []string {
	if doc == "" {
		return nil
	}
	return strings.Split(doc, "\n")
}
