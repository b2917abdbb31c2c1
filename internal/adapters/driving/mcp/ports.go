package mcp

import (
	"github.com/custodia-labs/natal-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports used by the MCP server.
type Ports struct {
	// Profile validates birth data.
	Profile driving.ProfileService

	// Timezone browses canonical timezone names. Optional.
	Timezone driving.TimezoneService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Profile == nil {
		return ErrMissingProfileService
	}
	return nil
}
