package services

import (
	"fmt"

	"github.com/custodia-labs/natal-cli/internal/core/domain"
	"github.com/custodia-labs/natal-cli/internal/core/ports/driving"
	"github.com/custodia-labs/natal-cli/internal/tzdb"
)

// Ensure TimezoneService implements the interface.
var _ driving.TimezoneService = (*TimezoneService)(nil)

// TimezoneService browses the embedded canonical timezone set.
type TimezoneService struct{}

// NewTimezoneService creates a new timezone service.
func NewTimezoneService() *TimezoneService {
	return &TimezoneService{}
}

// Regions returns the top-level timezone regions.
func (s *TimezoneService) Regions() []string {
	return tzdb.Regions()
}

// List returns canonical names under a region prefix.
func (s *TimezoneService) List(prefix string) ([]string, error) {
	zones := tzdb.InRegion(prefix)
	if len(zones) == 0 {
		return nil, fmt.Errorf("no timezones under %q: %w", prefix, domain.ErrNotFound)
	}
	return zones, nil
}
