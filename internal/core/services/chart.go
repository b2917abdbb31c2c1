package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/custodia-labs/natal-cli/internal/core/domain"
	"github.com/custodia-labs/natal-cli/internal/core/ports/driven"
	"github.com/custodia-labs/natal-cli/internal/core/ports/driving"
	"github.com/custodia-labs/natal-cli/internal/logger"
)

// Ensure ChartService implements the interface.
var _ driving.ChartService = (*ChartService)(nil)

// ChartService hands validated profiles to the chart engine and stores
// what it produces.
type ChartService struct {
	engine   driven.ChartEngine
	output   driven.OutputStore
	settings driving.SettingsService
}

// NewChartService creates a new chart service.
// settings may be nil, in which case defaults apply.
func NewChartService(
	engine driven.ChartEngine,
	output driven.OutputStore,
	settings driving.SettingsService,
) *ChartService {
	return &ChartService{
		engine:   engine,
		output:   output,
		settings: settings,
	}
}

// Generate renders the chart, writes the artifact and, when requested,
// the report.
func (s *ChartService) Generate(
	ctx context.Context,
	profile *domain.UserProfile,
	opts domain.ChartOptions,
) (*domain.ChartResult, error) {
	if profile == nil {
		return nil, domain.ErrIncomplete
	}
	if s.engine == nil {
		return nil, errors.New("chart engine not configured")
	}
	if s.output == nil {
		return nil, errors.New("output store not configured")
	}

	dir, err := s.outputDir(opts)
	if err != nil {
		return nil, err
	}

	id := uuid.NewString()
	logger.Section("Chart")
	logger.Debug("generation %s for %q using %s", id, profile.Name(), s.engine.Name())

	if err := s.output.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	done := logger.Timed("render")
	chart, err := s.engine.Render(ctx, profile)
	done()
	if err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}

	result := &domain.ChartResult{
		ID:     id,
		Report: chart.Report,
	}

	if len(chart.Artifact) > 0 {
		result.ArtifactPath, err = s.output.WriteArtifact(dir, profile.Name(), chart.ArtifactExt, chart.Artifact)
		if err != nil {
			return nil, fmt.Errorf("write chart: %w", err)
		}
		logger.Debug("chart written to %s", result.ArtifactPath)
	}

	if opts.WriteReport {
		result.ReportPath, err = s.output.WriteReport(dir, profile.Name(), chart.Report)
		if err != nil {
			return nil, fmt.Errorf("write report: %w", err)
		}
		logger.Debug("report written to %s", result.ReportPath)
	}

	return result, nil
}

func (s *ChartService) outputDir(opts domain.ChartOptions) (string, error) {
	if opts.OutputDir != "" {
		return opts.OutputDir, nil
	}
	if s.settings == nil {
		return domain.DefaultOutputDir, nil
	}
	settings, err := s.settings.Get()
	if err != nil {
		return "", fmt.Errorf("load settings: %w", err)
	}
	return settings.Output.Dir, nil
}
