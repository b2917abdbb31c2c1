package services

import (
	"github.com/custodia-labs/natal-cli/internal/core/domain"
	"github.com/custodia-labs/natal-cli/internal/core/ports/driven"
	"github.com/custodia-labs/natal-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyOutputDir      = "output.dir"
	KeyOutputReport   = "output.report"
	KeyUIColor        = "ui.color"
	KeyUIBanner       = "ui.banner"
	KeySessionConsent = "session.consent"
)

// SettingsKeys lists every recognised configuration key.
func SettingsKeys() []string {
	return []string{KeyOutputDir, KeyOutputReport, KeyUIColor, KeyUIBanner, KeySessionConsent}
}

// SettingsService assembles application settings from configuration.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Output: domain.OutputSettings{
			Dir:    s.getString(KeyOutputDir, defaults.Output.Dir),
			Report: s.getReportMode(defaults.Output.Report),
		},
		UI: domain.UISettings{
			Color:  s.getBool(KeyUIColor, defaults.UI.Color),
			Banner: s.getBool(KeyUIBanner, defaults.UI.Banner),
		},
		Session: domain.SessionSettings{
			Consent: s.getBool(KeySessionConsent, defaults.Session.Consent),
		},
	}

	return settings, nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Source describes where settings were loaded from.
func (s *SettingsService) Source() string {
	if s.configStore == nil {
		return "defaults"
	}
	return s.configStore.Path()
}

func (s *SettingsService) getString(key, defaultVal string) string {
	if s.configStore == nil {
		return defaultVal
	}
	if val := s.configStore.GetString(key); val != "" {
		return val
	}
	return defaultVal
}

// getBool distinguishes "unset" from "false" so defaults of true survive.
func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if s.configStore == nil {
		return defaultVal
	}
	if _, ok := s.configStore.Get(key); !ok {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getReportMode(defaultVal domain.ReportMode) domain.ReportMode {
	mode := domain.ReportMode(s.getString(KeyOutputReport, ""))
	if mode.IsValid() {
		return mode
	}
	return defaultVal
}
