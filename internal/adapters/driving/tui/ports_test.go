package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/natal-cli/internal/core/domain"
	"github.com/custodia-labs/natal-cli/internal/core/services"
)

// MockChartService implements driving.ChartService for testing.
type MockChartService struct {
	GenerateFunc func(ctx context.Context, profile *domain.UserProfile, opts domain.ChartOptions) (*domain.ChartResult, error)
	Calls        []domain.ChartOptions
}

func (m *MockChartService) Generate(
	ctx context.Context, profile *domain.UserProfile, opts domain.ChartOptions,
) (*domain.ChartResult, error) {
	m.Calls = append(m.Calls, opts)
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx, profile, opts)
	}
	res := &domain.ChartResult{ID: "test", ArtifactPath: "out/" + profile.Name() + "_chart.toml"}
	if opts.WriteReport {
		res.ReportPath = "out/" + profile.Name() + "_report.txt"
	}
	return res, nil
}

func TestNewPorts(t *testing.T) {
	profile := services.NewProfileService()
	chart := &MockChartService{}

	ports := NewPorts(profile, chart)

	require.NotNil(t, ports)
	assert.Equal(t, profile, ports.Profile)
	assert.Equal(t, chart, ports.Chart)
	assert.Nil(t, ports.Timezone)
	assert.Nil(t, ports.Settings)
}

func TestPorts_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ports   *Ports
		wantErr error
	}{
		{name: "nil", ports: nil, wantErr: ErrInvalidPorts},
		{name: "missing profile", ports: &Ports{Chart: &MockChartService{}}, wantErr: ErrMissingProfileService},
		{name: "missing chart", ports: &Ports{Profile: services.NewProfileService()}, wantErr: ErrMissingChartService},
		{name: "valid", ports: NewPorts(services.NewProfileService(), &MockChartService{})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ports.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
