// Package input provides text input components for the TUI.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/natal-cli/internal/core/domain"
)

// FieldInput wraps a bubbles textinput labelled with the field it collects.
type FieldInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	field     domain.Field
	width     int
}

// NewFieldInput creates an input for field.
func NewFieldInput(s *styles.Styles, field domain.Field) *FieldInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 128
	ti.Width = 40

	f := &FieldInput{
		textinput: ti,
		styles:    s,
		width:     40,
	}
	f.SetField(field)
	return f
}

// Init initialises the input.
func (f *FieldInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (f *FieldInput) Update(msg tea.Msg) (*FieldInput, tea.Cmd) {
	var cmd tea.Cmd
	f.textinput, cmd = f.textinput.Update(msg)
	return f, cmd
}

// View renders the label above the boxed input.
func (f *FieldInput) View() string {
	label := f.styles.Label.Render(f.field.Label())
	box := f.styles.InputField.Render(f.textinput.View())
	return lipgloss.JoinVertical(lipgloss.Left, label, box)
}

// SetField switches the input to a new field and clears it.
func (f *FieldInput) SetField(field domain.Field) {
	f.field = field
	f.textinput.Placeholder = field.Placeholder()
	f.textinput.Reset()
}

// Field returns the field being collected.
func (f *FieldInput) Field() domain.Field {
	return f.field
}

// Value returns the current input value.
func (f *FieldInput) Value() string {
	return f.textinput.Value()
}

// SetValue sets the input value.
func (f *FieldInput) SetValue(value string) {
	f.textinput.SetValue(value)
	f.textinput.CursorEnd()
}

// Focus sets focus on the input.
func (f *FieldInput) Focus() tea.Cmd {
	return f.textinput.Focus()
}

// Blur removes focus from the input.
func (f *FieldInput) Blur() {
	f.textinput.Blur()
}

// Focused returns whether the input is focused.
func (f *FieldInput) Focused() bool {
	return f.textinput.Focused()
}

// SetWidth sets the width of the input.
func (f *FieldInput) SetWidth(width int) {
	f.width = width
	inputWidth := width - 8
	if inputWidth < 20 {
		inputWidth = 20
	}
	f.textinput.Width = inputWidth
}

// Width returns the current width.
func (f *FieldInput) Width() int {
	return f.width
}

// Reset clears the input.
func (f *FieldInput) Reset() {
	f.textinput.Reset()
}
