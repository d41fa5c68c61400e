package declaration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/availgen/availgen/internal/errors"
)

func writeDecls(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_YAML(t *testing.T) {
	path := writeDecls(t, "decls.yaml", `declarations:
  - name: Open
    kind: function
    availability:
      - platform: ios
        introduced: {major: 1, minor: 5}
      - platform: macos
        unavailable: true
  - name: Close
    always_deprecated: true
`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(f.Decls) != 2 {
		t.Fatalf("got %d decls, want 2", len(f.Decls))
	}

	open := f.Decls[0]
	if open.Name != "Open" || open.Kind != "function" {
		t.Errorf("decl[0] = %+v, want Open/function", open)
	}
	if len(open.Platforms) != 2 {
		t.Fatalf("Open has %d records, want 2", len(open.Platforms))
	}

	ios := open.Platforms[0]
	if ios.Name != "ios" || ios.Introduced == nil || ios.Introduced.Major != 1 || ios.Introduced.Minor != 5 {
		t.Errorf("ios record = %+v, want introduced 1.5", ios)
	}
	if !open.Platforms[1].Unavailable {
		t.Error("macos record should be unavailable")
	}

	if !f.Decls[1].AlwaysDeprecated {
		t.Error("Close should be always_deprecated")
	}
}

func TestLoad_JSON(t *testing.T) {
	path := writeDecls(t, "decls.json", `{
  "declarations": [
    {
      "name": "Open",
      "availability": [
        {"platform": "ios", "introduced": {"major": 2}}
      ]
    }
  ]
}`)

	f, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if len(f.Decls) != 1 {
		t.Fatalf("got %d decls, want 1", len(f.Decls))
	}
	intro := f.Decls[0].Platforms[0].Introduced
	if intro == nil || intro.Major != 2 {
		t.Errorf("introduced = %v, want 2.0", intro)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		if err == nil {
			t.Error("Load() of missing file should error")
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeDecls(t, "decls.txt", "declarations:\n")
		_, err := Load(path)
		if !errors.Is(err, errors.ErrUnsupportedFormat) {
			t.Errorf("Load() error = %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("no declarations", func(t *testing.T) {
		path := writeDecls(t, "decls.yaml", "declarations: []\n")
		_, err := Load(path)
		if !errors.Is(err, errors.ErrNoDeclarations) {
			t.Errorf("Load() error = %v, want ErrNoDeclarations", err)
		}
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeDecls(t, "decls.yaml", "declarations: [\n")
		_, err := Load(path)
		if err == nil {
			t.Error("Load() of malformed YAML should error")
		}
	})
}

func TestDecode_ExtensionCase(t *testing.T) {
	f, err := Decode([]byte("declarations:\n  - name: Open\n"), ".YAML")
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if len(f.Decls) != 1 {
		t.Errorf("got %d decls, want 1", len(f.Decls))
	}
}
