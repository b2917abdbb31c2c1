package memory

import (
	"fmt"
	"path"
	"sync"

	"github.com/custodia-labs/natal-cli/internal/core/ports/driven"
)

// Ensure OutputStore implements the interface.
var _ driven.OutputStore = (*OutputStore)(nil)

// OutputStore keeps chart output in memory, keyed by path.
type OutputStore struct {
	mu    sync.RWMutex
	dirs  map[string]struct{}
	files map[string][]byte

	// Err, when set, is returned by every write.
	Err error
}

// NewOutputStore creates an empty in-memory output store.
func NewOutputStore() *OutputStore {
	return &OutputStore{
		dirs:  make(map[string]struct{}),
		files: make(map[string][]byte),
	}
}

// EnsureDir records the directory.
func (s *OutputStore) EnsureDir(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.dirs[dir] = struct{}{}
	return nil
}

// WriteArtifact stores the artifact under <dir>/<name>_chart.<ext>.
func (s *OutputStore) WriteArtifact(dir, name, ext string, data []byte) (string, error) {
	return s.write(dir, fmt.Sprintf("%s_chart.%s", name, ext), data)
}

// WriteReport stores the report under <dir>/<name>_report.txt.
func (s *OutputStore) WriteReport(dir, name, report string) (string, error) {
	return s.write(dir, name+"_report.txt", []byte(report))
}

func (s *OutputStore) write(dir, file string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return "", s.Err
	}
	if _, ok := s.dirs[dir]; !ok {
		return "", fmt.Errorf("directory %q does not exist", dir)
	}
	p := path.Join(dir, file)
	s.files[p] = append([]byte(nil), data...)
	return p, nil
}

// HasDir reports whether EnsureDir was called for dir.
func (s *OutputStore) HasDir(dir string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.dirs[dir]
	return ok
}

// File returns the contents stored at p.
func (s *OutputStore) File(p string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.files[p]
	return data, ok
}

// Count returns the number of stored files.
func (s *OutputStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.files)
}
