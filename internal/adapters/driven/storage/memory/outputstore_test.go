package memory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputStore_WriteRequiresDir(t *testing.T) {
	store := NewOutputStore()

	_, err := store.WriteReport("out", "Sam", "report")

	assert.Error(t, err)
	assert.Equal(t, 0, store.Count())
}

func TestOutputStore_WriteArtifactAndReport(t *testing.T) {
	store := NewOutputStore()
	require.NoError(t, store.EnsureDir("out"))

	artifact, err := store.WriteArtifact("out", "Sam", "toml", []byte("a = 1"))
	require.NoError(t, err)
	report, err := store.WriteReport("out", "Sam", "hello")
	require.NoError(t, err)

	assert.Equal(t, "out/Sam_chart.toml", artifact)
	assert.Equal(t, "out/Sam_report.txt", report)
	assert.True(t, store.HasDir("out"))
	assert.Equal(t, 2, store.Count())

	data, ok := store.File(report)
	require.True(t, ok)
	assert.Equal(t, "hello", string(data))
}

func TestOutputStore_Err(t *testing.T) {
	store := NewOutputStore()
	store.Err = errors.New("disk full")

	assert.EqualError(t, store.EnsureDir("out"), "disk full")
}
