// Package tui provides an interactive terminal form for natal.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/natal-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
type Ports struct {
	// Profile starts intake sessions.
	Profile driving.ProfileService

	// Chart generates chart output for the completed profile.
	Chart driving.ChartService

	// Timezone backs 'list' on the timezone field. Optional.
	Timezone driving.TimezoneService

	// Settings supplies the report mode. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(profile driving.ProfileService, chart driving.ChartService) *Ports {
	return &Ports{
		Profile: profile,
		Chart:   chart,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Profile == nil {
		return ErrMissingProfileService
	}
	if p.Chart == nil {
		return ErrMissingChartService
	}
	return nil
}
