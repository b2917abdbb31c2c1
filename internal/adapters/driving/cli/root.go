// Package cli provides the cobra command tree for natal.
//
// Running natal without a subcommand starts the line-mode intake session.
// Services are injected by the entry point through SetServiceFactory, or
// directly with SetServices in tests.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/natal-cli/internal/core/domain"
	"github.com/custodia-labs/natal-cli/internal/core/ports/driving"
	"github.com/custodia-labs/natal-cli/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// Persistent flags.
var (
	verbose    bool
	configPath string
	outputDir  string
	reportFlag string
	noColor    bool
)

// Services used by the commands.
var (
	profileService  driving.ProfileService
	chartService    driving.ChartService
	timezoneService driving.TimezoneService
	settingsService driving.SettingsService
)

// Services bundles the driving ports the commands depend on.
type Services struct {
	Profile  driving.ProfileService
	Chart    driving.ChartService
	Timezone driving.TimezoneService
	Settings driving.SettingsService
}

// ServiceFactory builds services once flags are parsed.
// configPath is the value of --config, empty for the default location.
type ServiceFactory func(configPath string) (*Services, error)

var serviceFactory ServiceFactory

var rootCmd = &cobra.Command{
	Use:   "natal",
	Short: "Collect birth data and generate a natal chart",
	Long: `Natal walks you through entering your birth details, validates each
answer as you go, and writes chart data for the completed profile.

Type 'quit' at any prompt to leave. At the timezone prompt, type 'list'
or 'list <Region>' to browse canonical timezone names.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runChart,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")
	flags.StringVar(&configPath, "config", "", "config file (default ~/.natal/config.toml)")
	flags.StringVar(&outputDir, "output-dir", "", "directory charts and reports are written to")
	flags.StringVar(&reportFlag, "report", "", "text report mode: ask, always or never")
	flags.BoolVar(&noColor, "no-color", false, "disable coloured output")
}

// SetServiceFactory sets the factory used to build services before a command runs.
func SetServiceFactory(factory ServiceFactory) {
	serviceFactory = factory
}

// SetServices sets the services directly.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	profileService = s.Profile
	chartService = s.Chart
	timezoneService = s.Timezone
	settingsService = s.Settings
}

// SetVersion sets the version reported by `natal version`.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if reportFlag != "" && !domain.ReportMode(reportFlag).IsValid() {
		return fmt.Errorf("invalid --report value %q: must be ask, always or never", reportFlag)
	}

	if serviceFactory != nil {
		s, err := serviceFactory(configPath)
		if err != nil {
			return fmt.Errorf("failed to initialise: %w", err)
		}
		SetServices(s)
	}

	settings := effectiveSettings()
	styles.Setup(settings.UI.Color)
	logger.Debug("settings loaded from %s", settingsSource())

	return nil
}

// effectiveSettings layers flags over configured settings over defaults.
func effectiveSettings() domain.AppSettings {
	settings := domain.DefaultAppSettings()
	if settingsService != nil {
		got, err := settingsService.Get()
		switch {
		case err != nil:
			logger.Warn("falling back to default settings: %v", err)
		case got != nil:
			settings = *got
		}
	}

	if outputDir != "" {
		settings.Output.Dir = outputDir
	}
	if reportFlag != "" {
		settings.Output.Report = domain.ReportMode(reportFlag)
	}
	if noColor {
		settings.UI.Color = false
	}

	return settings
}

func settingsSource() string {
	if settingsService == nil {
		return "defaults"
	}
	return settingsService.Source()
}

var errNotConfigured = errors.New("not configured")

func requireService(name string, ok bool) error {
	if ok {
		return nil
	}
	return fmt.Errorf("%s service %w", name, errNotConfigured)
}
