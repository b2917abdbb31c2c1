package domain

const unknownDescription = "Unknown"

// ReportMode controls whether the text report is written to disk.
type ReportMode string

// Available report modes.
const (
	// ReportModeAsk asks the user once the profile is complete.
	ReportModeAsk ReportMode = "ask"

	// ReportModeAlways writes the report without asking.
	ReportModeAlways ReportMode = "always"

	// ReportModeNever never writes the report.
	ReportModeNever ReportMode = "never"
)

// IsValid returns true if the report mode is recognised.
func (m ReportMode) IsValid() bool {
	switch m {
	case ReportModeAsk, ReportModeAlways, ReportModeNever:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m ReportMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m ReportMode) Description() string {
	switch m {
	case ReportModeAsk:
		return "Ask after each session"
	case ReportModeAlways:
		return "Always write the report"
	case ReportModeNever:
		return "Never write the report"
	default:
		return unknownDescription
	}
}

// AllReportModes returns all available report modes.
func AllReportModes() []ReportMode {
	return []ReportMode{ReportModeAsk, ReportModeAlways, ReportModeNever}
}

// OutputSettings configures where chart output goes.
type OutputSettings struct {
	// Dir is the directory charts and reports are written to.
	// It is created on demand.
	Dir string

	// Report controls the optional text report.
	Report ReportMode
}

// UISettings configures console presentation.
type UISettings struct {
	// Color enables coloured output when the terminal supports it.
	Color bool

	// Banner prints the ASCII banner at session start.
	Banner bool
}

// SessionSettings configures the intake session.
type SessionSettings struct {
	// Consent asks the user to confirm before collecting sensitive data.
	Consent bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	Output  OutputSettings
	UI      UISettings
	Session SessionSettings
}

// DefaultOutputDir is used when no output directory is configured.
const DefaultOutputDir = "natal_output"

// DefaultAppSettings returns settings with sensible defaults.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Output: OutputSettings{
			Dir:    DefaultOutputDir,
			Report: ReportModeAsk,
		},
		UI: UISettings{
			Color:  true,
			Banner: true,
		},
		Session: SessionSettings{
			Consent: true,
		},
	}
}
