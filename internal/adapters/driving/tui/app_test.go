package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/natal-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/natal-cli/internal/core/domain"
	"github.com/custodia-labs/natal-cli/internal/core/services"
)

func newTestPorts(report string) (*Ports, *MockChartService) {
	chart := &MockChartService{}
	store := memory.NewConfigStore(map[string]any{"output.report": report})
	return &Ports{
		Profile:  services.NewProfileService(),
		Chart:    chart,
		Timezone: services.NewTimezoneService(),
		Settings: services.NewSettingsService(store),
	}, chart
}

// drive feeds msg to the app and follows the returned commands until
// none remain or tea.Quit is produced. It returns true on quit.
func drive(app *App, msg tea.Msg) bool {
	for msg != nil {
		_, cmd := app.Update(msg)
		if cmd == nil {
			return false
		}
		msg = cmd()
		if _, ok := msg.(tea.QuitMsg); ok {
			return true
		}
	}
	return false
}

func submit(app *App, value string) bool {
	if value != "" {
		app.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(value)})
	}
	return drive(app, tea.KeyMsg{Type: tea.KeyEnter})
}

func fillForm(t *testing.T, app *App) {
	t.Helper()
	for _, value := range []string{"alex", "2000-01-01", "14:15", "Melbourne", "-37.8136", "144.9631", "Australia/Melbourne"} {
		require.False(t, submit(app, value), value)
	}
}

func TestNewApp_Success(t *testing.T) {
	ports, _ := newTestPorts("ask")

	app, err := NewApp(ports)

	require.NoError(t, err)
	require.NotNil(t, app)
	assert.Equal(t, messages.ViewForm, app.CurrentView())
	assert.NotNil(t, app.Init())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	app, err := NewApp(&Ports{Chart: &MockChartService{}})

	assert.ErrorIs(t, err, ErrMissingProfileService)
	assert.Nil(t, app)
}

func TestApp_WithContext(t *testing.T) {
	ports, _ := newTestPorts("ask")
	app, _ := NewApp(ports)
	type contextKey string
	ctx := context.WithValue(context.Background(), contextKey("key"), "value")

	result := app.WithContext(ctx)

	assert.Equal(t, app, result)
	assert.Equal(t, ctx, app.ctx)
}

func TestApp_View_NotReady(t *testing.T) {
	ports, _ := newTestPorts("ask")
	app, _ := NewApp(ports)

	assert.Equal(t, "Initialising...", app.View())
	assert.False(t, app.Ready())
}

func TestApp_WindowSize(t *testing.T) {
	ports, _ := newTestPorts("ask")
	app, _ := NewApp(ports)

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	assert.True(t, app.Ready())
	assert.Contains(t, app.View(), "Natal Chart")
	assert.Contains(t, app.View(), "Type 'quit' at anytime to exit")
}

func TestApp_AskReport_Yes(t *testing.T) {
	ports, chart := newTestPorts("ask")
	app, _ := NewApp(ports)
	app.SetDimensions(100, 40)

	fillForm(t, app)

	require.Equal(t, messages.ViewResult, app.CurrentView())
	require.NotNil(t, app.Profile())
	assert.Contains(t, app.View(), "Save a text report? [y/N]")
	assert.Empty(t, chart.Calls)

	drive(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

	require.Len(t, chart.Calls, 1)
	assert.True(t, chart.Calls[0].WriteReport)
	require.NotNil(t, app.Result())
	assert.Equal(t, "out/Alex_report.txt", app.Result().ReportPath)
	assert.Contains(t, app.View(), "Report saved to out/Alex_report.txt")

	assert.True(t, drive(app, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")}))
	assert.False(t, app.Cancelled())
}

func TestApp_AskReport_DefaultNo(t *testing.T) {
	ports, chart := newTestPorts("ask")
	app, _ := NewApp(ports)
	app.SetDimensions(100, 40)
	fillForm(t, app)

	drive(app, tea.KeyMsg{Type: tea.KeyEnter})

	require.Len(t, chart.Calls, 1)
	assert.False(t, chart.Calls[0].WriteReport)
	assert.Equal(t, "", app.Result().ReportPath)
}

func TestApp_ReportModeFromSettings(t *testing.T) {
	tests := []struct {
		mode        string
		writeReport bool
	}{
		{mode: "always", writeReport: true},
		{mode: "never", writeReport: false},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			ports, chart := newTestPorts(tt.mode)
			app, _ := NewApp(ports)
			app.SetDimensions(100, 40)

			fillForm(t, app)

			require.Len(t, chart.Calls, 1)
			assert.Equal(t, tt.writeReport, chart.Calls[0].WriteReport)
			assert.NotNil(t, app.Result())
		})
	}
}

func TestApp_OptionsOverrideSettings(t *testing.T) {
	ports, chart := newTestPorts("ask")
	app, _ := NewApp(ports)
	app.WithOptions(Options{OutputDir: "charts", ReportMode: domain.ReportModeAlways})
	app.SetDimensions(100, 40)

	fillForm(t, app)

	require.Len(t, chart.Calls, 1)
	assert.Equal(t, domain.ChartOptions{OutputDir: "charts", WriteReport: true}, chart.Calls[0])
}

func TestApp_GenerationError(t *testing.T) {
	ports, chart := newTestPorts("never")
	chart.GenerateFunc = func(context.Context, *domain.UserProfile, domain.ChartOptions) (*domain.ChartResult, error) {
		return nil, errors.New("disk full")
	}
	app, _ := NewApp(ports)
	app.SetDimensions(100, 40)

	fillForm(t, app)

	assert.EqualError(t, app.Err(), "disk full")
	assert.Contains(t, app.View(), "Chart generation failed: disk full")
}

func TestApp_EscCancels(t *testing.T) {
	ports, chart := newTestPorts("ask")
	app, _ := NewApp(ports)
	app.SetDimensions(100, 40)
	require.False(t, submit(app, "Sam"))

	quit := drive(app, tea.KeyMsg{Type: tea.KeyEsc})

	assert.True(t, quit)
	assert.True(t, app.Cancelled())
	assert.Nil(t, app.Profile())
	assert.Empty(t, chart.Calls)
}

func TestApp_QuitKeywordCancels(t *testing.T) {
	ports, _ := newTestPorts("ask")
	app, _ := NewApp(ports)

	assert.True(t, submit(app, "quit"))
	assert.True(t, app.Cancelled())
}

func TestApp_CtrlCDoesNotQuit(t *testing.T) {
	ports, _ := newTestPorts("ask")
	app, _ := NewApp(ports)
	app.SetDimensions(100, 40)

	quit := drive(app, tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.False(t, quit)
	assert.False(t, app.Cancelled())
	assert.Contains(t, app.View(), "App interrupted. Enter again.")
}

func TestApp_ViewChanged(t *testing.T) {
	ports, _ := newTestPorts("ask")
	app, _ := NewApp(ports)

	app.Update(messages.ViewChanged{View: messages.ViewResult})

	assert.Equal(t, messages.ViewResult, app.CurrentView())
}

func TestApp_ErrorOccurredQuits(t *testing.T) {
	ports, _ := newTestPorts("ask")
	app, _ := NewApp(ports)

	_, cmd := app.Update(messages.ErrorOccurred{Err: errors.New("boom")})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.EqualError(t, app.Err(), "boom")
}
