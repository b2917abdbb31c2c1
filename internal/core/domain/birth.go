package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // Location works without a system zoneinfo database.
)

// BirthDate is a calendar-valid Gregorian date.
type BirthDate struct {
	Year  int
	Month int
	Day   int
}

// String formats the date as YYYY-MM-DD.
func (d BirthDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// BirthTime is a 24-hour wall clock time.
type BirthTime struct {
	Hour   int
	Minute int
}

// String formats the time as HH:MM.
func (t BirthTime) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// Latitude in decimal degrees, within [-90, 90].
type Latitude float64

// String formats the latitude with the shortest exact representation.
func (l Latitude) String() string {
	return strconv.FormatFloat(float64(l), 'f', -1, 64)
}

// Longitude in decimal degrees, within [-180, 180].
type Longitude float64

// String formats the longitude with the shortest exact representation.
func (l Longitude) String() string {
	return strconv.FormatFloat(float64(l), 'f', -1, 64)
}

// TimezoneName is a canonical timezone identifier such as "Australia/Melbourne".
type TimezoneName string

// String returns the string representation.
func (z TimezoneName) String() string {
	return string(z)
}

// Region returns the segment before the first "/" (the whole name if there is none).
func (z TimezoneName) Region() string {
	region, _, _ := strings.Cut(string(z), "/")
	return region
}

// Country returns the country used in chart output.
// It is derived from the timezone region, e.g. "Australia" for "Australia/Melbourne".
func (z TimezoneName) Country() string {
	return z.Region()
}

// Location loads the timezone rules for the name.
func (z TimezoneName) Location() (*time.Location, error) {
	return time.LoadLocation(string(z))
}

// BirthInput carries raw, unvalidated text for every intake field.
type BirthInput struct {
	Name      string `json:"name"`
	BirthDate string `json:"birth_date"`
	BirthTime string `json:"birth_time"`
	City      string `json:"city"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Timezone  string `json:"timezone"`
}

// Value returns the raw text for a field.
func (in BirthInput) Value(f Field) string {
	switch f {
	case FieldName:
		return in.Name
	case FieldBirthDate:
		return in.BirthDate
	case FieldBirthTime:
		return in.BirthTime
	case FieldCity:
		return in.City
	case FieldLatitude:
		return in.Latitude
	case FieldLongitude:
		return in.Longitude
	case FieldTimezone:
		return in.Timezone
	default:
		return ""
	}
}
