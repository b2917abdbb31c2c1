package mcp

import (
	"errors"

	"github.com/custodia-labs/natal-cli/internal/core/domain"
	"github.com/custodia-labs/natal-cli/internal/core/ports/driving"
)

// mockProfileService is a mock implementation of driving.ProfileService.
type mockProfileService struct {
	profile *domain.UserProfile
	err     error
	value   string
}

func (m *mockProfileService) NewSession() driving.IntakeSession {
	return nil
}

func (m *mockProfileService) Build(_ domain.BirthInput) (*domain.UserProfile, error) {
	return m.profile, m.err
}

func (m *mockProfileService) ValidateField(_ domain.Field, _ string) (string, error) {
	return m.value, m.err
}

// mockTimezoneService is a mock implementation of driving.TimezoneService.
type mockTimezoneService struct {
	regions []string
	zones   map[string][]string
	err     error
}

func (m *mockTimezoneService) Regions() []string {
	return m.regions
}

func (m *mockTimezoneService) List(prefix string) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	zones, ok := m.zones[prefix]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return zones, nil
}

func newTestTimezones() *mockTimezoneService {
	return &mockTimezoneService{
		regions: []string{"Africa", "Australia", "Europe"},
		zones: map[string][]string{
			"Australia": {"Australia/Melbourne", "Australia/Sydney"},
		},
	}
}

func testProfile() *domain.UserProfile {
	return domain.NewUserProfile(
		"Sam",
		domain.BirthDate{Year: 1990, Month: 5, Day: 10},
		domain.BirthTime{Hour: 12, Minute: 30},
		"Ballarat",
		domain.Latitude(-37.5622),
		domain.Longitude(143.8503),
		domain.TimezoneName("Australia/Melbourne"),
	)
}

func validationErrors() error {
	date := domain.NewValidationError(domain.FieldBirthDate, domain.ErrFormat, "Birth date must be YYYY-MM-DD.")
	zone := domain.NewValidationError(domain.FieldTimezone, domain.ErrSuggestion, "Did you mean: Australia/Melbourne?")
	zone.Suggestion = "Australia/Melbourne"
	return errors.Join(date, zone)
}
