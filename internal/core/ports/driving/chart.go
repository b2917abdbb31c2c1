package driving

import (
	"context"

	"github.com/custodia-labs/natal-cli/internal/core/domain"
)

// ChartService generates chart output for validated profiles.
type ChartService interface {
	// Generate renders the chart, writes the artifact and, when requested,
	// the report.
	Generate(ctx context.Context, profile *domain.UserProfile, opts domain.ChartOptions) (*domain.ChartResult, error)
}

// TimezoneService browses the canonical timezone set.
type TimezoneService interface {
	// Regions returns the top-level timezone regions.
	Regions() []string

	// List returns canonical names under a region prefix.
	// Returns domain.ErrNotFound when nothing matches.
	List(prefix string) ([]string, error)
}
