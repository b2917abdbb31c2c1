// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/styles"
)

// ZoneList displays timezone names or regions in a navigable list.
type ZoneList struct {
	title    string
	items    []string
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewZoneList creates an empty zone list.
func NewZoneList(s *styles.Styles) *ZoneList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ZoneList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// Init initialises the list.
func (z *ZoneList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (z *ZoneList) Update(msg tea.Msg) (*ZoneList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // handling only relevant key types
		switch msg.Type {
		case tea.KeyUp:
			z.MoveUp()
		case tea.KeyDown:
			z.MoveDown()
		default:
		}
	}
	return z, nil
}

// View renders the visible window of the list.
func (z *ZoneList) View() string {
	if len(z.items) == 0 {
		return ""
	}

	lines := make([]string, 0, z.height+2)
	lines = append(lines, z.styles.Subtitle.Render(fmt.Sprintf("%s (%d)", z.title, len(z.items))))

	visible := z.height - 1
	if visible < 1 {
		visible = 1
	}

	start := 0
	if z.selected >= visible {
		start = z.selected - visible + 1
	}
	end := start + visible
	if end > len(z.items) {
		end = len(z.items)
	}

	for i := start; i < end; i++ {
		if i == z.selected {
			lines = append(lines, z.styles.Selected.Render("> "+z.items[i]))
			continue
		}
		lines = append(lines, z.styles.Normal.Render("  "+z.items[i]))
	}

	if end < len(z.items) {
		lines = append(lines, z.styles.Muted.Render(fmt.Sprintf("  … %d more", len(z.items)-end)))
	}

	return strings.Join(lines, "\n")
}

// SetItems replaces the list contents and resets the selection.
func (z *ZoneList) SetItems(title string, items []string) {
	z.title = title
	z.items = items
	z.selected = 0
}

// Items returns the current items.
func (z *ZoneList) Items() []string {
	return z.items
}

// Title returns the list heading.
func (z *ZoneList) Title() string {
	return z.title
}

// Clear empties the list.
func (z *ZoneList) Clear() {
	z.SetItems("", nil)
}

// Selected returns the index of the selected item.
func (z *ZoneList) Selected() int {
	return z.selected
}

// SelectedItem returns the highlighted item, or "" if the list is empty.
func (z *ZoneList) SelectedItem() string {
	if z.selected < 0 || z.selected >= len(z.items) {
		return ""
	}
	return z.items[z.selected]
}

// MoveUp moves selection up.
func (z *ZoneList) MoveUp() {
	if z.selected > 0 {
		z.selected--
	}
}

// MoveDown moves selection down.
func (z *ZoneList) MoveDown() {
	if z.selected < len(z.items)-1 {
		z.selected++
	}
}

// SetDimensions sets the component dimensions.
func (z *ZoneList) SetDimensions(width, height int) {
	z.width = width
	z.height = height
}

// Count returns the number of items.
func (z *ZoneList) Count() int {
	return len(z.items)
}

// IsEmpty returns whether the list is empty.
func (z *ZoneList) IsEmpty() bool {
	return len(z.items) == 0
}
