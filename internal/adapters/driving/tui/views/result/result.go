// Package result shows the completed profile and the generated chart.
package result

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/natal-cli/internal/core/domain"
)

// ReportQuestion asks whether to write the text report.
const ReportQuestion = "Save a text report? [y/N]"

// View displays the profile summary and the outcome of chart generation.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	statusbar *status.Bar

	profile *domain.UserProfile
	asking  bool
	result  *domain.ChartResult
	err     error

	width  int
	height int
}

// NewView creates an empty result view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles:    s,
		keymap:    km,
		statusbar: status.NewBar(s, km),
		width:     80,
		height:    24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetProfile shows profile. When ask is true the report question is
// shown; otherwise generation is assumed to be under way.
func (v *View) SetProfile(profile *domain.UserProfile, ask bool) {
	v.profile = profile
	v.asking = ask
	v.result = nil
	v.err = nil
	if ask {
		v.statusbar.SetState(status.StateConfirm)
		return
	}
	v.statusbar.SetState(status.StateGenerating)
}

// Update handles messages for the result view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.ChartGenerated:
		v.result = msg.Result
		v.err = msg.Err
		if msg.Err != nil {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
		} else {
			v.statusbar.SetState(status.StateDone)
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}
	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.asking {
		switch {
		case key.Matches(msg, v.keymap.Yes):
			return v.answer(true)
		case key.Matches(msg, v.keymap.No, v.keymap.Cancel):
			return v.answer(false)
		}
		return v, nil
	}

	if v.Done() && key.Matches(msg, v.keymap.Quit) {
		return v, func() tea.Msg { return messages.Quit{} }
	}
	return v, nil
}

func (v *View) answer(write bool) (*View, tea.Cmd) {
	v.asking = false
	v.statusbar.SetState(status.StateGenerating)
	return v, func() tea.Msg { return messages.ReportChosen{Write: write} }
}

// View renders the summary and outcome.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Natal Chart"))
	b.WriteString("\n\n")

	if v.profile != nil {
		summary := strings.Join(v.profile.Summary(), "\n")
		b.WriteString(v.styles.Border.Render(v.styles.Normal.Render(summary)))
		b.WriteString("\n\n")
	}

	switch {
	case v.asking:
		b.WriteString(v.styles.Label.Render(ReportQuestion))
		b.WriteString("\n")
	case v.err != nil:
		b.WriteString(v.styles.Error.Render("Chart generation failed: " + v.err.Error()))
		b.WriteString("\n")
	case v.result != nil:
		if v.result.ArtifactPath != "" {
			b.WriteString(v.styles.Success.Render("Chart saved to " + v.result.ArtifactPath))
			b.WriteString("\n")
		}
		if v.result.ReportPath != "" {
			b.WriteString(v.styles.Success.Render("Report saved to " + v.result.ReportPath))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(v.statusbar.View())

	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.statusbar.SetWidth(width - 4)
}

// Asking reports whether the report question is open.
func (v *View) Asking() bool {
	return v.asking
}

// Done reports whether generation has finished, successfully or not.
func (v *View) Done() bool {
	return v.result != nil || v.err != nil
}

// Result returns the chart result, if generation succeeded.
func (v *View) Result() *domain.ChartResult {
	return v.result
}

// Err returns the generation error, if any.
func (v *View) Err() error {
	return v.err
}
