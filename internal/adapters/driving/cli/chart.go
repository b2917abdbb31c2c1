package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/natal-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/natal-cli/internal/core/domain"
	"github.com/custodia-labs/natal-cli/internal/core/ports/driving"
	"github.com/custodia-labs/natal-cli/internal/logger"
)

const (
	consentQuestion = "Continue? [y/N]"
	reportQuestion  = "Save a text report? [y/N]"
	regionQuestion  = "Enter a region to list (blank for all regions): "
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Enter birth details and generate a chart",
	Long: `Start the interactive intake session. Each answer is validated before
moving on; a rejected answer is asked again with an explanation.

This is also what runs when natal is invoked without a subcommand.`,
	Args: cobra.NoArgs,
	RunE: runChart,
}

func init() {
	rootCmd.AddCommand(chartCmd)
}

func runChart(cmd *cobra.Command, _ []string) error {
	if err := requireService("profile", profileService != nil); err != nil {
		return err
	}
	if err := requireService("chart", chartService != nil); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	settings := effectiveSettings()
	st := styles.DefaultStyles()
	out := cmd.OutOrStdout()

	p := openPrompter(cmd.InOrStdin(), out, st)
	defer p.Close()

	if settings.UI.Banner {
		printBanner(out, st)
	}
	printWarning(out, st)

	if settings.Session.Consent {
		ok, err := p.Confirm(ctx, consentQuestion)
		if err != nil && !errors.Is(err, domain.ErrCancelled) {
			return err
		}
		if !ok {
			p.Println(farewell)
			return nil
		}
	}

	profile, err := collectProfile(ctx, p)
	if errors.Is(err, domain.ErrCancelled) {
		logger.Debug("session cancelled")
		p.Println(farewell)
		return nil
	}
	if err != nil {
		return err
	}

	p.Println()
	for _, line := range profile.Summary() {
		p.Println(st.Normal.Render(line))
	}
	p.Println()

	writeReport, err := resolveReport(ctx, p, settings.Output.Report)
	if errors.Is(err, domain.ErrCancelled) {
		p.Println(farewell)
		return nil
	}
	if err != nil {
		return err
	}

	// No prompts remain; ctrl+c during generation gets the default handler.
	p.Close()

	result, err := chartService.Generate(ctx, profile, domain.ChartOptions{
		OutputDir:   settings.Output.Dir,
		WriteReport: writeReport,
	})
	if err != nil {
		return fmt.Errorf("failed to generate chart: %w", err)
	}

	if result.ArtifactPath != "" {
		p.Println(st.Success.Render("Chart saved to " + result.ArtifactPath))
	}
	if result.ReportPath != "" {
		p.Println(st.Success.Render("Report saved to " + result.ReportPath))
	}

	return nil
}

// collectProfile runs an intake session until every field is accepted.
func collectProfile(ctx context.Context, p *prompter) (*domain.UserProfile, error) {
	session := profileService.NewSession()

	for session.State() == driving.IntakeAwaitingField {
		field := session.Current()
		prompt := p.styles.Muted.Render(quitHint) + "\n" + p.styles.Label.Render(field.Prompt())

		input, err := p.Ask(ctx, prompt)
		if err != nil {
			return nil, err
		}

		if field == domain.FieldTimezone {
			if prefix, ok := domain.ParseList(input); ok {
				if err := browseTimezones(ctx, p, prefix); err != nil {
					return nil, err
				}
				continue
			}
		}

		value, err := session.Submit(input)
		switch {
		case errors.Is(err, domain.ErrCancelled):
			return nil, err
		case err != nil:
			logger.Debug("%s rejected: %v", field, err)
			p.Println(p.styles.Error.Render(err.Error()))
		default:
			accepted, total := session.Progress()
			logger.Debug("%s accepted as %q (%d/%d)", field, value, accepted, total)
		}
	}

	return session.Profile()
}

// browseTimezones prints canonical names under prefix.
// An empty prefix asks for one first; a blank answer lists regions.
func browseTimezones(ctx context.Context, p *prompter, prefix string) error {
	if timezoneService == nil {
		p.Println(p.styles.Error.Render("Timezone listing is unavailable."))
		return nil
	}

	if prefix == "" {
		answer, err := p.Ask(ctx, p.styles.Label.Render(regionQuestion))
		if err != nil {
			return err
		}
		if domain.IsQuit(answer) {
			return domain.ErrCancelled
		}
		prefix = strings.TrimSpace(answer)
	}

	if prefix == "" {
		p.Println(p.styles.Subtitle.Render("Regions:"))
		printNames(p, timezoneService.Regions())
		return nil
	}

	zones, err := timezoneService.List(prefix)
	if err != nil {
		p.Println(p.styles.Error.Render(fmt.Sprintf("No timezones found under %q.", prefix)))
		return nil
	}
	p.Println(p.styles.Subtitle.Render(fmt.Sprintf("Timezones under %s (%d):", prefix, len(zones))))
	printNames(p, zones)
	return nil
}

func printNames(p *prompter, names []string) {
	for _, name := range names {
		p.Println("  " + name)
	}
}

// resolveReport decides whether the text report is written.
func resolveReport(ctx context.Context, p *prompter, mode domain.ReportMode) (bool, error) {
	switch mode {
	case domain.ReportModeAlways:
		return true, nil
	case domain.ReportModeNever:
		return false, nil
	default:
		return p.Confirm(ctx, reportQuestion)
	}
}
