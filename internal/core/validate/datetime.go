package validate

import (
	"time"

	"github.com/custodia-labs/natal-cli/internal/core/domain"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	msgDateFormat = "Invalid date format! Please use YYYY-MM-DD."
	msgTimeFormat = "Invalid time format! Please use HH:MM (24-hour)."
)

// Date parses a YYYY-MM-DD birth date.
// Impossible dates such as 2000-30-05 or 2001-02-29 are rejected by the
// calendar-aware parser.
func Date(s string) (domain.BirthDate, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil || t.Year() < 1 {
		return domain.BirthDate{}, domain.NewValidationError(domain.FieldBirthDate, domain.ErrFormat, msgDateFormat)
	}
	return domain.BirthDate{Year: t.Year(), Month: int(t.Month()), Day: t.Day()}, nil
}

// Time parses a 24-hour HH:MM birth time.
func Time(s string) (domain.BirthTime, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return domain.BirthTime{}, domain.NewValidationError(domain.FieldBirthTime, domain.ErrFormat, msgTimeFormat)
	}
	return domain.BirthTime{Hour: t.Hour(), Minute: t.Minute()}, nil
}
