package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/natal-cli/internal/core/domain"
)

var timezonesCmd = &cobra.Command{
	Use:     "timezones [region]",
	Aliases: []string{"tz"},
	Short:   "List canonical timezone names",
	Long: `Without arguments, list the top-level timezone regions.
With a region prefix, list every canonical name under it.

Examples:
  natal timezones
  natal timezones Australia
  natal timezones America/Argentina`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTimezones,
}

func init() {
	rootCmd.AddCommand(timezonesCmd)
}

func runTimezones(cmd *cobra.Command, args []string) error {
	if err := requireService("timezone", timezoneService != nil); err != nil {
		return err
	}

	if len(args) == 0 {
		for _, region := range timezoneService.Regions() {
			cmd.Println(region)
		}
		return nil
	}

	zones, err := timezoneService.List(args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no timezones found under %q", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to list timezones: %w", err)
	}

	for _, zone := range zones {
		cmd.Println(zone)
	}
	return nil
}
