// Package form provides the birth data form for the TUI.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/natal-cli/internal/core/domain"
	"github.com/custodia-labs/natal-cli/internal/core/ports/driving"
)

// InterruptNotice is shown when ctrl+c clears the current field.
const InterruptNotice = "App interrupted. Enter again."

// QuitHint is shown under the title.
const QuitHint = "Type 'quit' at anytime to exit"

// View walks an intake session one field at a time.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.FieldInput
	zones     *list.ZoneList
	statusbar *status.Bar

	session   driving.IntakeSession
	timezones driving.TimezoneService

	accepted []string
	err      string
	notice   string

	width  int
	height int
}

// NewView creates a form view for session.
// timezones may be nil, in which case 'list' is treated as ordinary input.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	session driving.IntakeSession,
	timezones driving.TimezoneService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:    s,
		keymap:    km,
		input:     input.NewFieldInput(s, session.Current()),
		zones:     list.NewZoneList(s),
		statusbar: status.NewBar(s, km),
		session:   session,
		timezones: timezones,
		width:     80,
		height:    24,
	}
	v.syncProgress()
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update handles messages for the form.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Interrupt):
		v.input.Reset()
		v.err = ""
		v.notice = InterruptNotice
		return v, nil

	case key.Matches(msg, v.keymap.Cancel):
		return v.submit(domain.QuitKeyword)

	case key.Matches(msg, v.keymap.Submit):
		return v.submit(v.input.Value())

	case !v.zones.IsEmpty() && key.Matches(msg, v.keymap.Up, v.keymap.Down):
		v.zones, _ = v.zones.Update(msg)
		return v, nil

	case !v.zones.IsEmpty() && key.Matches(msg, v.keymap.Complete):
		v.input.SetValue(v.zones.SelectedItem())
		return v, nil
	}

	v.notice = ""
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) submit(value string) (*View, tea.Cmd) {
	v.notice = ""
	field := v.session.Current()

	if field == domain.FieldTimezone && v.timezones != nil {
		if prefix, ok := domain.ParseList(value); ok {
			v.browse(prefix)
			return v, nil
		}
	}

	accepted, err := v.session.Submit(value)
	switch {
	case errors.Is(err, domain.ErrCancelled):
		return v, func() tea.Msg { return messages.Cancelled{} }

	case err != nil:
		v.err = err.Error()
		var verr *domain.ValidationError
		if errors.As(err, &verr) && verr.Suggestion != "" {
			v.input.SetValue(verr.Suggestion)
		}
		return v, nil
	}

	v.accepted = append(v.accepted, fmt.Sprintf("%s: %s", field.Label(), accepted))
	v.err = ""
	v.zones.Clear()
	v.syncProgress()

	if v.session.State() == driving.IntakeComplete {
		profile, perr := v.session.Profile()
		if perr != nil {
			return v, func() tea.Msg { return messages.ErrorOccurred{Err: perr} }
		}
		v.input.Blur()
		return v, func() tea.Msg { return messages.ProfileCompleted{Profile: profile} }
	}

	v.input.SetField(v.session.Current())
	return v, func() tea.Msg { return messages.FieldAccepted{Field: field, Value: accepted} }
}

// browse fills the zone list with regions, or with zones under prefix.
func (v *View) browse(prefix string) {
	v.input.Reset()
	if prefix == "" {
		v.zones.SetItems("Regions", v.timezones.Regions())
		v.err = ""
		v.statusbar.SetState(status.StateBrowsing)
		return
	}

	zones, err := v.timezones.List(prefix)
	if err != nil {
		v.zones.Clear()
		v.err = err.Error()
		v.statusbar.SetState(status.StateEditing)
		return
	}
	v.zones.SetItems(prefix, zones)
	v.err = ""
	v.statusbar.SetState(status.StateBrowsing)
}

func (v *View) syncProgress() {
	accepted, total := v.session.Progress()
	v.statusbar.SetProgress(accepted, total)
	v.statusbar.SetState(status.StateEditing)
}

// View renders the form.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Natal Chart"))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(QuitHint))
	b.WriteString("\n\n")

	for _, line := range v.accepted {
		b.WriteString(v.styles.Success.Render("✓ ") + v.styles.Normal.Render(line))
		b.WriteString("\n")
	}
	if len(v.accepted) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(v.input.View())
	b.WriteString("\n")

	if v.err != "" {
		b.WriteString(v.styles.Error.Render(v.err))
		b.WriteString("\n")
	}
	if v.notice != "" {
		b.WriteString(v.styles.Warning.Render(v.notice))
		b.WriteString("\n")
	}
	if !v.zones.IsEmpty() {
		b.WriteString("\n")
		b.WriteString(v.zones.View())
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width - 4)
	v.statusbar.SetWidth(width - 4)
	zoneHeight := height - 18
	if zoneHeight < 3 {
		zoneHeight = 3
	}
	v.zones.SetDimensions(width-4, zoneHeight)
}

// Field returns the field awaiting input.
func (v *View) Field() domain.Field {
	return v.session.Current()
}

// Value returns the text currently typed.
func (v *View) Value() string {
	return v.input.Value()
}

// Err returns the last validation message.
func (v *View) Err() string {
	return v.err
}

// Notice returns the current notice, such as the interrupt message.
func (v *View) Notice() string {
	return v.notice
}

// Zones returns the items in the open timezone list.
func (v *View) Zones() []string {
	return v.zones.Items()
}

// Accepted returns the accepted fields as "Label: value" lines.
func (v *View) Accepted() []string {
	return v.accepted
}
