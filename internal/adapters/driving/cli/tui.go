package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/natal-cli/internal/core/domain"
)

// tuiRunner runs the TUI application. Replaced in tests.
var tuiRunner = func(app *tui.App) error {
	return app.Run()
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Enter birth details in the interactive terminal UI",
	Long: `Launch the interactive terminal form. It asks the same questions as the
line-mode session and validates each answer before moving on.

Controls:
  Enter  - Submit the current field
  Tab    - Use the highlighted timezone
  ↑/↓    - Move through a timezone list
  Ctrl+C - Clear the current field
  Esc    - Quit

Type 'list' or 'list <Region>' at the timezone field to browse names.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	ports := tui.NewPorts(profileService, chartService)
	ports.Timezone = timezoneService
	ports.Settings = settingsService

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	app.WithContext(cmd.Context()).WithOptions(tui.Options{
		OutputDir:  outputDir,
		ReportMode: domain.ReportMode(reportFlag),
	})

	if err := tuiRunner(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	switch {
	case app.Cancelled():
		cmd.Println(farewell)
	case app.Err() != nil:
		return fmt.Errorf("failed to generate chart: %w", app.Err())
	case app.Result() != nil:
		if path := app.Result().ArtifactPath; path != "" {
			cmd.Println("Chart saved to " + path)
		}
		if path := app.Result().ReportPath; path != "" {
			cmd.Println("Report saved to " + path)
		}
	}

	return nil
}
