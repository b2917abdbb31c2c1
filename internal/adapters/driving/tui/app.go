package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/views/result"
	"github.com/custodia-labs/natal-cli/internal/core/domain"
	"github.com/custodia-labs/natal-cli/internal/logger"
)

// Options override settings for a single run.
type Options struct {
	// OutputDir overrides the configured output directory.
	OutputDir string

	// ReportMode overrides the configured report mode when valid.
	ReportMode domain.ReportMode
}

// App is the TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports *Ports
	ctx   context.Context
	opts  Options

	styles *styles.Styles
	keymap *keymap.KeyMap

	formView   *form.View
	resultView *result.View

	currentView messages.ViewType

	profile   *domain.UserProfile
	result    *domain.ChartResult
	err       error
	cancelled bool

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:       ports,
		ctx:         context.Background(),
		styles:      s,
		keymap:      km,
		formView:    form.NewView(s, km, ports.Profile.NewSession(), ports.Timezone),
		resultView:  result.NewView(s, km),
		currentView: messages.ViewForm,
	}, nil
}

// WithContext sets the context used for chart generation.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// WithOptions sets per-run overrides.
func (a *App) WithOptions(opts Options) *App {
	a.opts = opts
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("natal"),
		a.formView.Init(),
	)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		switch a.currentView {
		case messages.ViewForm:
			a.formView, cmd = a.formView.Update(msg)
		case messages.ViewResult:
			a.resultView, cmd = a.resultView.Update(msg)
		}
		return a, cmd

	case messages.FieldAccepted:
		logger.Debug("tui accepted %s", msg.Field)
		return a, nil

	case messages.ProfileCompleted:
		a.profile = msg.Profile
		a.currentView = messages.ViewResult
		switch a.reportMode() {
		case domain.ReportModeAlways:
			a.resultView.SetProfile(msg.Profile, false)
			return a, a.generate(true)
		case domain.ReportModeNever:
			a.resultView.SetProfile(msg.Profile, false)
			return a, a.generate(false)
		default:
			a.resultView.SetProfile(msg.Profile, true)
			return a, nil
		}

	case messages.ReportChosen:
		return a, a.generate(msg.Write)

	case messages.ChartGenerated:
		a.result = msg.Result
		a.err = msg.Err
		a.resultView, cmd = a.resultView.Update(msg)
		return a, cmd

	case messages.ViewChanged:
		a.currentView = msg.View
		return a, nil

	case messages.Cancelled:
		a.cancelled = true
		return a, tea.Quit

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, tea.Quit

	case messages.Quit:
		return a, tea.Quit
	}

	if a.currentView == messages.ViewForm {
		a.formView, cmd = a.formView.Update(msg)
	}
	return a, cmd
}

// generate returns a command that renders and stores the chart.
func (a *App) generate(writeReport bool) tea.Cmd {
	profile := a.profile
	opts := domain.ChartOptions{
		OutputDir:   a.opts.OutputDir,
		WriteReport: writeReport,
	}
	return func() tea.Msg {
		res, err := a.ports.Chart.Generate(a.ctx, profile, opts)
		return messages.ChartGenerated{Result: res, Err: err}
	}
}

// reportMode resolves the report mode from options, then settings.
func (a *App) reportMode() domain.ReportMode {
	if a.opts.ReportMode.IsValid() {
		return a.opts.ReportMode
	}
	if a.ports.Settings != nil {
		if s, err := a.ports.Settings.Get(); err == nil {
			return s.Output.Report
		}
	}
	return domain.ReportModeAsk
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	if a.currentView == messages.ViewResult {
		return a.resultView.View()
	}
	return a.formView.View()
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Profile returns the completed profile, if any.
func (a *App) Profile() *domain.UserProfile {
	return a.profile
}

// Result returns the chart result, if generation succeeded.
func (a *App) Result() *domain.ChartResult {
	return a.result
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Cancelled reports whether the user quit before completing the form.
func (a *App) Cancelled() bool {
	return a.cancelled
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.formView.SetDimensions(width, height)
	a.resultView.SetDimensions(width, height)
}
