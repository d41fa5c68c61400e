package fileutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/availgen/availgen/internal/errors"
)

func TestReadFileWithLimit(t *testing.T) {
	dir := t.TempDir()

	writeSized := func(t *testing.T, name string, size int64) string {
		t.Helper()
		path := filepath.Join(dir, name)
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.Truncate(size); err != nil {
			t.Fatal(err)
		}
		f.Close()
		return path
	}

	t.Run("reads small files", func(t *testing.T) {
		path := writeSized(t, "small", 100)
		data, err := ReadFileWithLimit(path)
		if err != nil {
			t.Fatalf("ReadFileWithLimit() error = %v", err)
		}
		if len(data) != 100 {
			t.Errorf("read %d bytes, want 100", len(data))
		}
	})

	t.Run("accepts the exact limit", func(t *testing.T) {
		path := writeSized(t, "exact", MaxFileSize)
		if _, err := ReadFileWithLimit(path); err != nil {
			t.Errorf("ReadFileWithLimit() error = %v", err)
		}
	})

	t.Run("rejects oversized files", func(t *testing.T) {
		path := writeSized(t, "big", MaxFileSize+1)
		_, err := ReadFileWithLimit(path)
		if !errors.Is(err, ErrFileTooLarge) {
			t.Errorf("ReadFileWithLimit() error = %v, want ErrFileTooLarge", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFileWithLimit(filepath.Join(dir, "absent"))
		if err == nil {
			t.Error("ReadFileWithLimit() expected error for missing file")
		}
	})
}
