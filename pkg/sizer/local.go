package sizer

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultModulesDir is the conventional installed-packages folder beneath
// the manifest's own directory.
const DefaultModulesDir = "node_modules"

// InstallPath returns the expected installation path of a package below
// the manifest's directory. Scoped names ("@types/node") expand into two
// path segments.
func InstallPath(manifestDir, modulesDir, name string) string {
	parts := append([]string{manifestDir, modulesDir}, strings.Split(name, "/")...)
	return filepath.Join(parts...)
}

// PathSize measures the installed size at path: a regular file reports its
// own size, a directory reports the recursive sum of all files transitively
// contained within it. Symlink semantics follow the filesystem's own
// traversal. Any stat or read failure fails the whole measurement; partial
// totals are never reported.
func PathSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if info.Mode().IsRegular() {
		return info.Size(), nil
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("unsupported file type at %s", path)
	}

	var total int64
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.Type().IsRegular() {
			fi, err := d.Info()
			if err != nil {
				return err
			}
			total += fi.Size()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}
