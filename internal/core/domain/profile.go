package domain

import "fmt"

// UserProfile is the validated birth data handed to the chart engine.
// It is immutable once constructed.
type UserProfile struct {
	name      string
	date      BirthDate
	clock     BirthTime
	city      string
	latitude  Latitude
	longitude Longitude
	timezone  TimezoneName
}

// NewUserProfile assembles a profile from already-validated values.
// Callers outside the services layer should go through the intake
// session rather than calling this directly.
func NewUserProfile(
	name string,
	date BirthDate,
	clock BirthTime,
	city string,
	latitude Latitude,
	longitude Longitude,
	timezone TimezoneName,
) *UserProfile {
	return &UserProfile{
		name:      name,
		date:      date,
		clock:     clock,
		city:      city,
		latitude:  latitude,
		longitude: longitude,
		timezone:  timezone,
	}
}

// Name returns the user's name or alias.
func (p *UserProfile) Name() string { return p.name }

// BirthDate returns the birth date.
func (p *UserProfile) BirthDate() BirthDate { return p.date }

// BirthTime returns the local birth time.
func (p *UserProfile) BirthTime() BirthTime { return p.clock }

// City returns the birth town.
func (p *UserProfile) City() string { return p.city }

// Latitude returns the birth latitude.
func (p *UserProfile) Latitude() Latitude { return p.latitude }

// Longitude returns the birth longitude.
func (p *UserProfile) Longitude() Longitude { return p.longitude }

// Timezone returns the birth timezone.
func (p *UserProfile) Timezone() TimezoneName { return p.timezone }

// Country returns the country derived from the timezone.
func (p *UserProfile) Country() string { return p.timezone.Country() }

// Summary returns the profile formatted for display, one line per entry.
func (p *UserProfile) Summary() []string {
	return []string{
		"Name: " + p.name,
		fmt.Sprintf("Birth Date & Time: %s %s", p.date, p.clock),
		fmt.Sprintf("Birth Location: %s (%s, %s)", p.city, p.latitude, p.longitude),
		"Timezone: " + p.timezone.String(),
	}
}
