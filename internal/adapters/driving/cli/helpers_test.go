package cli

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/custodia-labs/natal-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/natal-cli/internal/core/domain"
	"github.com/custodia-labs/natal-cli/internal/core/services"
)

// MockChartService implements driving.ChartService and records every call.
type MockChartService struct {
	Profiles []*domain.UserProfile
	Options  []domain.ChartOptions
	Err      error

	// OnGenerate, when set, runs at the start of every Generate call.
	OnGenerate func()
}

func (m *MockChartService) Generate(
	_ context.Context, profile *domain.UserProfile, opts domain.ChartOptions,
) (*domain.ChartResult, error) {
	if m.OnGenerate != nil {
		m.OnGenerate()
	}
	m.Profiles = append(m.Profiles, profile)
	m.Options = append(m.Options, opts)
	if m.Err != nil {
		return nil, m.Err
	}

	result := &domain.ChartResult{
		ID:           "test-id",
		ArtifactPath: filepath.Join(opts.OutputDir, profile.Name()+"_chart.toml"),
		Report:       "report",
	}
	if opts.WriteReport {
		result.ReportPath = filepath.Join(opts.OutputDir, profile.Name()+"_report.txt")
	}
	return result, nil
}

// quietConfig skips the banner and consent prompt.
func quietConfig() map[string]any {
	return map[string]any{
		"ui.banner":       false,
		"session.consent": false,
	}
}

func resetFlags() {
	verbose = false
	configPath = ""
	outputDir = ""
	reportFlag = ""
	noColor = false
}

// setupCLI wires real core services with a mock chart service and
// captures command output.
func setupCLI(t *testing.T, config map[string]any) (*MockChartService, *bytes.Buffer) {
	t.Helper()

	chart := &MockChartService{}
	SetServiceFactory(nil)
	SetServices(&Services{
		Profile:  services.NewProfileService(),
		Chart:    chart,
		Timezone: services.NewTimezoneService(),
		Settings: services.NewSettingsService(memory.NewConfigStore(config)),
	})
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)

	t.Cleanup(func() {
		SetServices(nil)
		SetServiceFactory(nil)
		resetFlags()
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	return chart, buf
}

// runCLI executes the root command with args and the given input lines.
func runCLI(args []string, lines ...string) error {
	input := ""
	if len(lines) > 0 {
		input = strings.Join(lines, "\n") + "\n"
	}
	if args == nil {
		// nil makes cobra fall back to os.Args.
		args = []string{}
	}
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// validAnswers answers every intake field in order.
func validAnswers() []string {
	return []string{
		"sam",
		"1990-05-10",
		"12:30",
		"Ballarat",
		"-37.562200",
		"143.850300",
		"Australia/Melbourne",
	}
}
