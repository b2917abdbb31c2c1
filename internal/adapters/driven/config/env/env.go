// Package env overlays environment variables on another config store.
//
// A key such as "output.dir" is looked up as NATAL_OUTPUT_DIR before
// falling back to the wrapped store. Variables may come from the process
// environment or a .env file loaded with LoadDotEnv.
package env

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/natal-cli/internal/core/ports/driven"
)

// Prefix is prepended to every variable name.
const Prefix = "NATAL_"

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// LoadDotEnv loads variables from the given files (".env" when none are
// given) without overriding variables already set. Missing files are
// ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// VarName returns the environment variable consulted for key.
func VarName(key string) string {
	r := strings.NewReplacer(".", "_", "-", "_")
	return Prefix + strings.ToUpper(r.Replace(key))
}

// ConfigStore reads NATAL_* variables first and the wrapped store second.
type ConfigStore struct {
	base   driven.ConfigStore
	lookup func(string) (string, bool)
}

// NewConfigStore wraps base. base may be nil.
func NewConfigStore(base driven.ConfigStore) *ConfigStore {
	return &ConfigStore{base: base, lookup: os.LookupEnv}
}

// Get retrieves a value. Environment values are returned as strings.
func (s *ConfigStore) Get(key string) (any, bool) {
	if v, ok := s.lookup(VarName(key)); ok {
		return v, true
	}
	if s.base == nil {
		return nil, false
	}
	return s.base.Get(key)
}

// GetString retrieves a string value.
func (s *ConfigStore) GetString(key string) string {
	if v, ok := s.lookup(VarName(key)); ok {
		return v
	}
	if s.base == nil {
		return ""
	}
	return s.base.GetString(key)
}

// GetBool retrieves a boolean value. Environment values are parsed with
// strconv.ParseBool; unparsable values read as false.
func (s *ConfigStore) GetBool(key string) bool {
	if v, ok := s.lookup(VarName(key)); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		return err == nil && b
	}
	if s.base == nil {
		return false
	}
	return s.base.GetBool(key)
}

// Load reloads the wrapped store.
func (s *ConfigStore) Load() error {
	if s.base == nil {
		return nil
	}
	return s.base.Load()
}

// Path describes both sources.
func (s *ConfigStore) Path() string {
	if s.base == nil {
		return "environment"
	}
	return s.base.Path() + " (+ environment)"
}
