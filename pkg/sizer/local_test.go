package sizer

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path string, size int) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, make([]byte, size), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestInstallPath(t *testing.T) {
	tests := []struct {
		name string
		pkg  string
		want string
	}{
		{"plain", "left-pad", filepath.Join("proj", "node_modules", "left-pad")},
		{"scoped", "@types/node", filepath.Join("proj", "node_modules", "@types", "node")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InstallPath("proj", DefaultModulesDir, tt.pkg); got != tt.want {
				t.Errorf("InstallPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPathSize_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "single.js")
	writeFile(t, path, 300)

	size, err := PathSize(path)
	if err != nil {
		t.Fatalf("PathSize() error: %v", err)
	}
	if size != 300 {
		t.Errorf("PathSize() = %d, want 300", size)
	}
}

func TestPathSize_Directory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "index.js"), 1000)
	writeFile(t, filepath.Join(dir, "lib", "util.js"), 1000)
	writeFile(t, filepath.Join(dir, "lib", "deep", "more.js"), 48)

	size, err := PathSize(dir)
	if err != nil {
		t.Fatalf("PathSize() error: %v", err)
	}
	if size != 2048 {
		t.Errorf("PathSize() = %d, want 2048", size)
	}
}

func TestPathSize_Missing(t *testing.T) {
	if _, err := PathSize(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("PathSize() on missing path succeeded, want error")
	}
}
