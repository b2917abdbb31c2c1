package cli

import (
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show application settings",
	Long: `Show the effective settings: defaults, overlaid by the config file,
then NATAL_* environment variables, then command-line flags.

Settings are read-only here; edit the config file to change them.`,
	Args: cobra.NoArgs,
	RunE: runSettingsShow,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	settings := effectiveSettings()

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Printf("Source: %s\n", settingsSource())
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Directory: %s\n", settings.Output.Dir)
	cmd.Printf("  Report: %s (%s)\n", settings.Output.Report, settings.Output.Report.Description())
	cmd.Println()

	cmd.Println("[UI]")
	cmd.Printf("  Color: %s\n", yesNo(settings.UI.Color))
	cmd.Printf("  Banner: %s\n", yesNo(settings.UI.Banner))
	cmd.Println()

	cmd.Println("[Session]")
	cmd.Printf("  Consent prompt: %s\n", yesNo(settings.Session.Consent))

	return nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
