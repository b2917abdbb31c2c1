package validate

import (
	"errors"
	"strconv"
	"strings"

	"github.com/custodia-labs/natal-cli/internal/core/domain"
)

// axis describes one coordinate and its user-facing messages.
type axis struct {
	field   domain.Field
	label   string
	example string
	limit   float64
	empty   string
}

var (
	latitudeAxis = axis{
		field:   domain.FieldLatitude,
		label:   "Latitude",
		example: "-37.813629",
		limit:   90,
		empty:   "Latitude input must not be empty.",
	}
	longitudeAxis = axis{
		field:   domain.FieldLongitude,
		label:   "Longitude",
		example: "144.9631",
		limit:   180,
		empty:   "Longitude input must not be empty.",
	}
)

// Latitude parses decimal degrees in [-90, 90]. The input must contain a
// decimal point; whole numbers such as "37" are rejected. Surrounding
// whitespace is ignored, but only plain decimal notation is accepted:
// digit separators ("1_0.5") and hex floats are rejected even though
// strconv would parse them.
func Latitude(s string) (domain.Latitude, error) {
	v, err := latitudeAxis.parse(s)
	return domain.Latitude(v), err
}

// Longitude parses decimal degrees in [-180, 180]. Input rules match
// Latitude: a decimal point is required, surrounding whitespace is ignored,
// and digit separators or hex floats are rejected.
func Longitude(s string) (domain.Longitude, error) {
	v, err := longitudeAxis.parse(s)
	return domain.Longitude(v), err
}

func (a axis) parse(s string) (float64, error) {
	if s == "" {
		return 0, domain.NewValidationError(a.field, domain.ErrEmptyInput, a.empty)
	}
	if !strings.Contains(s, ".") {
		return 0, domain.NewValidationError(a.field, domain.ErrMissingDecimal,
			a.label+" must include a decimal (e.g. "+a.example+")")
	}

	// ParseFloat also understands hex floats and "0x" prefixes; only
	// plain decimal notation is accepted here.
	num := strings.TrimSpace(s)
	if strings.ContainsAny(num, "xX_") {
		return 0, a.formatError()
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, a.formatError()
	}

	// Overflowing input parses to ±Inf and NaN compares false, so both
	// land here.
	if !(v >= -a.limit && v <= a.limit) {
		return 0, domain.NewValidationError(a.field, domain.ErrRange,
			a.label+" must be between "+strconv.FormatFloat(-a.limit, 'f', -1, 64)+
				" and "+strconv.FormatFloat(a.limit, 'f', -1, 64))
	}
	return v, nil
}

func (a axis) formatError() error {
	return domain.NewValidationError(a.field, domain.ErrFormat,
		a.label+" must be a valid number with a decimal (e.g. "+a.example+")")
}
