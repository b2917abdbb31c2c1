package keymap

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_Bindings(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		binding key.Binding
		keys    []string
	}{
		{name: "submit", binding: km.Submit, keys: []string{"enter"}},
		{name: "cancel", binding: km.Cancel, keys: []string{"esc"}},
		{name: "interrupt", binding: km.Interrupt, keys: []string{"ctrl+c"}},
		{name: "complete", binding: km.Complete, keys: []string{"tab"}},
		{name: "up", binding: km.Up, keys: []string{"up"}},
		{name: "down", binding: km.Down, keys: []string{"down"}},
		{name: "yes", binding: km.Yes, keys: []string{"y", "Y"}},
		{name: "no", binding: km.No, keys: []string{"n", "N", "enter"}},
		{name: "quit", binding: km.Quit, keys: []string{"q", "esc", "enter"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keys, tt.binding.Keys())
			assert.NotEmpty(t, tt.binding.Help().Desc)
		})
	}
}

func TestKeyMap_HelpSets(t *testing.T) {
	km := DefaultKeyMap()

	assert.Len(t, km.ShortHelp(), 3)
	assert.Len(t, km.ZoneHelp(), 4)
	assert.Len(t, km.ConfirmHelp(), 2)
	assert.Len(t, km.DoneHelp(), 1)
	assert.Len(t, km.FullHelp(), 3)
}

func TestMatches(t *testing.T) {
	km := DefaultKeyMap()

	assert.True(t, Matches("ctrl+c", km.Interrupt))
	assert.True(t, Matches("Y", km.Yes))
	assert.False(t, Matches("q", km.Interrupt))
	assert.False(t, Matches("", km.Submit))
}
