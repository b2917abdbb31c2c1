package domain

// Field identifies one piece of birth data collected during intake.
type Field string

// Intake fields in the order they are collected.
const (
	FieldName      Field = "name"
	FieldBirthDate Field = "birth_date"
	FieldBirthTime Field = "birth_time"
	FieldCity      Field = "city"
	FieldLatitude  Field = "latitude"
	FieldLongitude Field = "longitude"
	FieldTimezone  Field = "timezone"
)

// AllFields returns every intake field in collection order.
func AllFields() []Field {
	return []Field{
		FieldName,
		FieldBirthDate,
		FieldBirthTime,
		FieldCity,
		FieldLatitude,
		FieldLongitude,
		FieldTimezone,
	}
}

// IsValid returns true if the field is recognised.
func (f Field) IsValid() bool {
	for _, known := range AllFields() {
		if f == known {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (f Field) String() string {
	return string(f)
}

// Label returns a short human-readable name for the field.
func (f Field) Label() string {
	switch f {
	case FieldName:
		return "Name"
	case FieldBirthDate:
		return "Birth date"
	case FieldBirthTime:
		return "Birth time"
	case FieldCity:
		return "Birth town"
	case FieldLatitude:
		return "Latitude"
	case FieldLongitude:
		return "Longitude"
	case FieldTimezone:
		return "Timezone"
	default:
		return "Unknown"
	}
}

// Prompt returns the question asked for the field.
func (f Field) Prompt() string {
	switch f {
	case FieldName:
		return "Enter your name or alias: "
	case FieldBirthDate:
		return "Enter your birthdate (Format: YYYY-MM-DD): "
	case FieldBirthTime:
		return "Enter your birthtime (Format: HH:MM, 24-hour): "
	case FieldCity:
		return "Enter the town that you were born in (Format: Ballarat): "
	case FieldLatitude:
		return "Enter the latitude of the town that you were born in\n" +
			"(Format: the first coordinate from a map, to 6 decimal places, e.g. -37.813629): "
	case FieldLongitude:
		return "Enter the longitude of the town that you were born in\n" +
			"(Format: the second coordinate from a map, to 6 decimal places, e.g. 144.963058): "
	case FieldTimezone:
		return "Enter the timezone that you were born in (Format: Australia/Melbourne, 'list' to browse): "
	default:
		return "> "
	}
}

// Placeholder returns example input for form-style prompts.
func (f Field) Placeholder() string {
	switch f {
	case FieldName:
		return "Sam"
	case FieldBirthDate:
		return "1990-05-10"
	case FieldBirthTime:
		return "12:30"
	case FieldCity:
		return "Ballarat"
	case FieldLatitude:
		return "-37.813629"
	case FieldLongitude:
		return "144.963058"
	case FieldTimezone:
		return "Australia/Melbourne"
	default:
		return ""
	}
}
