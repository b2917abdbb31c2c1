package driving

import "github.com/custodia-labs/natal-cli/internal/core/domain"

// SettingsService exposes application settings.
type SettingsService interface {
	// Get retrieves current application settings, falling back to defaults
	// for missing or invalid values.
	Get() (*domain.AppSettings, error)

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings

	// Source describes where settings were loaded from.
	Source() string
}
