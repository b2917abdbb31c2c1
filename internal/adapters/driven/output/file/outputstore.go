// Package file writes chart output to the local filesystem.
package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/custodia-labs/natal-cli/internal/core/ports/driven"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// Ensure OutputStore implements the interface.
var _ driven.OutputStore = (*OutputStore)(nil)

// OutputStore writes artifacts and reports under an output directory.
type OutputStore struct{}

// NewOutputStore creates a filesystem output store.
func NewOutputStore() *OutputStore {
	return &OutputStore{}
}

// EnsureDir creates dir and any missing parents.
func (s *OutputStore) EnsureDir(dir string) error {
	return os.MkdirAll(dir, dirPerm)
}

// WriteArtifact writes <dir>/<name>_chart.<ext>.
func (s *OutputStore) WriteArtifact(dir, name, ext string, data []byte) (string, error) {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = "dat"
	}
	return s.write(filepath.Join(dir, FileName(name, "chart", ext)), data)
}

// WriteReport writes <dir>/<name>_report.txt.
func (s *OutputStore) WriteReport(dir, name, report string) (string, error) {
	return s.write(filepath.Join(dir, FileName(name, "report", "txt")), []byte(report))
}

func (s *OutputStore) write(path string, data []byte) (string, error) {
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// FileName builds "<name>_<kind>.<ext>" with path separators in name
// replaced so the file stays inside its directory.
func FileName(name, kind, ext string) string {
	name = strings.NewReplacer("/", "_", `\`, "_").Replace(name)
	if name == "" || name == "." || name == ".." {
		name = "chart"
	}
	return name + "_" + kind + "." + ext
}
