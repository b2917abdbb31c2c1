package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/natal-cli/internal/core/domain"
)

func TestNewFieldInput(t *testing.T) {
	input := NewFieldInput(styles.DefaultStyles(), domain.FieldName)

	require.NotNil(t, input)
	assert.Equal(t, "", input.Value())
	assert.True(t, input.Focused())
	assert.Equal(t, domain.FieldName, input.Field())
}

func TestNewFieldInput_NilStyles(t *testing.T) {
	input := NewFieldInput(nil, domain.FieldCity)

	require.NotNil(t, input)
	assert.NotNil(t, input.styles)
}

func TestFieldInput_Init(t *testing.T) {
	input := NewFieldInput(nil, domain.FieldName)

	assert.NotNil(t, input.Init())
}

func TestFieldInput_Update(t *testing.T) {
	input := NewFieldInput(nil, domain.FieldName)

	updated, _ := input.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Sam")})

	assert.Equal(t, input, updated)
	assert.Equal(t, "Sam", input.Value())
}

func TestFieldInput_View(t *testing.T) {
	input := NewFieldInput(nil, domain.FieldBirthDate)

	view := input.View()

	assert.Contains(t, view, "Birth date")
	assert.Contains(t, view, "990-05-10")
}

func TestFieldInput_SetField(t *testing.T) {
	input := NewFieldInput(nil, domain.FieldName)
	input.SetValue("Sam")

	input.SetField(domain.FieldTimezone)

	assert.Equal(t, domain.FieldTimezone, input.Field())
	assert.Equal(t, "", input.Value())
	assert.Contains(t, input.View(), "Timezone")
}

func TestFieldInput_SetValue(t *testing.T) {
	input := NewFieldInput(nil, domain.FieldTimezone)

	input.SetValue("Australia/Melbourne")

	assert.Equal(t, "Australia/Melbourne", input.Value())
}

func TestFieldInput_FocusBlur(t *testing.T) {
	input := NewFieldInput(nil, domain.FieldName)

	input.Blur()
	assert.False(t, input.Focused())

	input.Focus()
	assert.True(t, input.Focused())
}

func TestFieldInput_SetWidth(t *testing.T) {
	input := NewFieldInput(nil, domain.FieldName)

	input.SetWidth(100)
	assert.Equal(t, 100, input.Width())
	assert.Equal(t, 92, input.textinput.Width)

	input.SetWidth(10)
	assert.Equal(t, 20, input.textinput.Width)
}

func TestFieldInput_Reset(t *testing.T) {
	input := NewFieldInput(nil, domain.FieldName)
	input.SetValue("Sam")

	input.Reset()

	assert.Equal(t, "", input.Value())
}
