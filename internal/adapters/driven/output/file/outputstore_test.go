package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputStore_EnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "natal_output", "nested")
	store := NewOutputStore()

	require.NoError(t, store.EnsureDir(dir))
	require.NoError(t, store.EnsureDir(dir))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestOutputStore_WriteArtifact(t *testing.T) {
	dir := t.TempDir()
	store := NewOutputStore()

	path, err := store.WriteArtifact(dir, "Alex", "toml", []byte("engine = \"summary\"\n"))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Alex_chart.toml"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "engine = \"summary\"\n", string(data))
}

func TestOutputStore_WriteArtifact_ExtensionWithDot(t *testing.T) {
	dir := t.TempDir()

	path, err := NewOutputStore().WriteArtifact(dir, "Alex", ".svg", []byte("<svg/>"))

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Alex_chart.svg"), path)
}

func TestOutputStore_WriteReport(t *testing.T) {
	dir := t.TempDir()
	store := NewOutputStore()

	path, err := store.WriteReport(dir, "Alex", "Natal Chart Report\n")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Alex_report.txt"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Natal Chart Report\n", string(data))
}

func TestOutputStore_WriteReport_Overwrites(t *testing.T) {
	dir := t.TempDir()
	store := NewOutputStore()

	_, err := store.WriteReport(dir, "Alex", "first")
	require.NoError(t, err)
	path, err := store.WriteReport(dir, "Alex", "second")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestOutputStore_WriteMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")

	_, err := NewOutputStore().WriteReport(dir, "Alex", "text")

	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFileName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		kind     string
		ext      string
		expected string
	}{
		{name: "plain", input: "Alex", kind: "chart", ext: "toml", expected: "Alex_chart.toml"},
		{name: "spaces kept", input: "Mary Jane", kind: "report", ext: "txt", expected: "Mary Jane_report.txt"},
		{name: "slash", input: "A/B", kind: "chart", ext: "svg", expected: "A_B_chart.svg"},
		{name: "backslash", input: `A\B`, kind: "chart", ext: "svg", expected: "A_B_chart.svg"},
		{name: "traversal", input: "../x", kind: "report", ext: "txt", expected: ".._x_report.txt"},
		{name: "dot dot", input: "..", kind: "report", ext: "txt", expected: "chart_report.txt"},
		{name: "empty", input: "", kind: "chart", ext: "toml", expected: "chart_chart.toml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FileName(tt.input, tt.kind, tt.ext))
		})
	}
}
