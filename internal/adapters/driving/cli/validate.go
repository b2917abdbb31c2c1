package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/natal-cli/internal/core/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate <field> <value>",
	Short: "Validate a single birth data value",
	Long: `Run one field validator without starting a session.

Fields: name, birth_date, birth_time, city, latitude, longitude, timezone.
On success the normalised value is printed; on failure the validator's
message is returned and natal exits non-zero.

Examples:
  natal validate birth_date 1990-05-10
  natal validate latitude -37.813629
  natal validate timezone Australia/Melbourne`,
	Args: cobra.MinimumNArgs(2),
	RunE: runValidate,
}

func init() {
	// Negative coordinates must not be read as flags.
	validateCmd.Flags().SetInterspersed(false)
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if err := requireService("profile", profileService != nil); err != nil {
		return err
	}

	field, err := parseField(args[0])
	if err != nil {
		return err
	}
	value := strings.Join(args[1:], " ")

	normalised, err := profileService.ValidateField(field, value)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			return errors.New(verr.Message)
		}
		return err
	}

	cmd.Printf("%s: %s\n", field.Label(), normalised)
	return nil
}

// parseField accepts field names with dashes or underscores.
func parseField(name string) (domain.Field, error) {
	field := domain.Field(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_"))
	if !field.IsValid() {
		names := make([]string, 0, len(domain.AllFields()))
		for _, f := range domain.AllFields() {
			names = append(names, f.String())
		}
		return "", fmt.Errorf("unknown field %q: must be one of %s", name, strings.Join(names, ", "))
	}
	return field, nil
}
