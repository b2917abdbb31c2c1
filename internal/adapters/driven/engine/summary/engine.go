// Package summary provides a chart engine that records the birth moment
// and location without performing any astrology.
//
// The artifact is a TOML document describing the profile, its local and
// UTC birth moment and the Julian day. The report is plain text.
package summary

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/natal-cli/internal/core/domain"
	"github.com/custodia-labs/natal-cli/internal/core/ports/driven"
)

// Name identifies the engine.
const Name = "summary"

// unixEpochJD is the Julian day of 1970-01-01T00:00:00Z.
const unixEpochJD = 2440587.5

// Ensure Engine implements the interface.
var _ driven.ChartEngine = (*Engine)(nil)

// Engine renders summary charts.
type Engine struct{}

// New creates a summary engine.
func New() *Engine {
	return &Engine{}
}

// Name returns the engine name.
func (e *Engine) Name() string {
	return Name
}

type document struct {
	Engine   string   `toml:"engine"`
	Subject  subject  `toml:"subject"`
	Birth    birth    `toml:"birth"`
	Location location `toml:"location"`
}

type subject struct {
	Name string `toml:"name"`
}

type birth struct {
	Date      string  `toml:"date"`
	Time      string  `toml:"time"`
	Local     string  `toml:"local"`
	UTC       string  `toml:"utc"`
	Offset    string  `toml:"utc_offset"`
	JulianDay float64 `toml:"julian_day"`
}

type location struct {
	City      string  `toml:"city"`
	Country   string  `toml:"country"`
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
	Timezone  string  `toml:"timezone"`
}

// Render produces the TOML artifact and text report for profile.
func (e *Engine) Render(ctx context.Context, profile *domain.UserProfile) (*domain.Chart, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrIncomplete
	}

	local, err := Moment(profile)
	if err != nil {
		return nil, err
	}
	utc := local.UTC()

	doc := document{
		Engine:  Name,
		Subject: subject{Name: profile.Name()},
		Birth: birth{
			Date:      profile.BirthDate().String(),
			Time:      profile.BirthTime().String(),
			Local:     local.Format(time.RFC3339),
			UTC:       utc.Format(time.RFC3339),
			Offset:    local.Format("-07:00"),
			JulianDay: JulianDay(local),
		},
		Location: location{
			City:      profile.City(),
			Country:   profile.Country(),
			Latitude:  float64(profile.Latitude()),
			Longitude: float64(profile.Longitude()),
			Timezone:  profile.Timezone().String(),
		},
	}

	artifact, err := toml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode chart: %w", err)
	}

	return &domain.Chart{
		Artifact:    artifact,
		ArtifactExt: "toml",
		Report:      report(profile, doc.Birth),
	}, nil
}

// Moment returns the birth moment in the profile's timezone.
// Wall times skipped by a daylight saving change are normalised forward.
func Moment(profile *domain.UserProfile) (time.Time, error) {
	loc, err := profile.Timezone().Location()
	if err != nil {
		return time.Time{}, fmt.Errorf("load timezone %s: %w", profile.Timezone(), err)
	}
	d := profile.BirthDate()
	c := profile.BirthTime()
	return time.Date(d.Year, time.Month(d.Month), d.Day, c.Hour, c.Minute, 0, 0, loc), nil
}

// JulianDay returns the Julian day number of t.
func JulianDay(t time.Time) float64 {
	return float64(t.Unix())/86400 + unixEpochJD
}

func report(profile *domain.UserProfile, b birth) string {
	const title = "Natal Chart Report"

	var sb strings.Builder
	sb.WriteString(title + "\n")
	sb.WriteString(strings.Repeat("=", len(title)) + "\n\n")
	for _, line := range profile.Summary() {
		sb.WriteString(line + "\n")
	}
	fmt.Fprintf(&sb, "Country: %s\n", profile.Country())
	fmt.Fprintf(&sb, "UTC Offset: %s\n", b.Offset)
	fmt.Fprintf(&sb, "UTC Moment: %s\n", b.UTC)
	fmt.Fprintf(&sb, "Julian Day: %.6f\n", b.JulianDay)
	return sb.String()
}
