package driven

import (
	"context"

	"github.com/custodia-labs/natal-cli/internal/core/domain"
)

// ChartEngine renders charts for validated profiles.
// It stands at the boundary to the astrology library; the core never
// inspects what it produces.
type ChartEngine interface {
	// Name identifies the engine in logs and reports.
	Name() string

	// Render produces the chart artifact and report for the profile.
	Render(ctx context.Context, profile *domain.UserProfile) (*domain.Chart, error)
}

// OutputStore persists chart output.
type OutputStore interface {
	// EnsureDir creates the output directory if it does not exist.
	EnsureDir(dir string) error

	// WriteArtifact writes the chart artifact as <dir>/<name>_chart.<ext>
	// and returns the path written.
	WriteArtifact(dir, name, ext string, data []byte) (string, error)

	// WriteReport writes the report as <dir>/<name>_report.txt
	// and returns the path written.
	WriteReport(dir, name, report string) (string, error)
}
