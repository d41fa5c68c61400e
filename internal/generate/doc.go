// Package generate renders resolved availability into build artifacts.
//
// [Resolve] merges each logical API's declarations, resolves them against
// the configured deployment targets and renders the three artifact forms:
// a doc comment for partially available APIs, a Clang-style availability
// attribute, and a runtime guard call expression.
//
// The rendered artifacts are written either as a C header of attribute
// macros ([WriteHeader], [WriteHeaderFile]) or as a manifest in YAML, JSON
// or TOML ([WriteManifest]). All file writes are atomic.
package generate
